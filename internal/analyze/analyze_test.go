package analyze

import (
	"fmt"
	"testing"

	"github.com/alfellati/ink-wrapper/internal/diag"
	"github.com/alfellati/ink-wrapper/internal/metadata"
	"github.com/alfellati/ink-wrapper/internal/registry"
)

// Published selectors from well-known contracts pin the hashing scheme.
func TestComputeSelectorKnownAnswers(t *testing.T) {
	cases := []struct {
		label string
		hex   string
	}{
		{"flip", "0x633aa551"},
		{"get", "0x2f865bd9"},
		{"new", "0x9bae9d5e"},
		{"PSP22::transfer", "0xdb20f9f5"},
		{"PSP22::total_supply", "0x162df8c2"},
		{"PSP22::balance_of", "0x6568382f"},
	}
	for _, tc := range cases {
		if got := ComputeSelector(tc.label).Hex(); got != tc.hex {
			t.Errorf("ComputeSelector(%q) = %s, want %s", tc.label, got, tc.hex)
		}
	}
}

func TestSplitLabel(t *testing.T) {
	cases := []struct {
		label string
		want  MethodName
		fails bool
	}{
		{label: "transfer", want: MethodName{Name: "transfer"}},
		{label: "PSP22::transfer", want: MethodName{Group: "PSP22", Name: "transfer"}},
		{label: "A::B::c", want: MethodName{Group: "A", Name: "B::c"}},
		{label: "::transfer", fails: true},
		{label: "PSP22::", fails: true},
	}
	for _, tc := range cases {
		got, err := SplitLabel(tc.label)
		if tc.fails {
			if err == nil {
				t.Errorf("SplitLabel(%q) succeeded, want error", tc.label)
			}
			continue
		}
		if err != nil {
			t.Errorf("SplitLabel(%q) error: %v", tc.label, err)
			continue
		}
		if got != tc.want {
			t.Errorf("SplitLabel(%q) = %+v, want %+v", tc.label, got, tc.want)
		}
	}
}

func analyzeDoc(t *testing.T, doc *metadata.Document) (*Unit, error) {
	t.Helper()
	set, err := registry.Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	return Analyze(doc, set)
}

func baseDoc() *metadata.Document {
	u128 := "u128"
	boolean := "bool"
	doc := &metadata.Document{}
	doc.Contract.Name = "token"
	doc.Contract.Version = "0.1.0"
	doc.Source.Language = "ink! 4.2.0"
	doc.Source.Hash = "0x13c691935548026cdb21a40f503cdc7ec667fe2a8325d9e2e5d84a838e477a23"
	doc.Types = []metadata.TypeEntry{
		{ID: 0, Type: metadata.Type{Def: metadata.Def{Primitive: &u128}}},
		{ID: 1, Type: metadata.Type{Def: metadata.Def{Primitive: &boolean}}},
	}
	return doc
}

func TestAnalyzeClassifiesSurfaces(t *testing.T) {
	doc := baseDoc()
	doc.Spec.Constructors = []metadata.Constructor{
		{Label: "new", Selector: "0x9bae9d5e", Args: []metadata.Arg{
			{Label: "total_supply", Type: metadata.TypeRef{ID: 0}},
		}},
	}
	doc.Spec.Messages = []metadata.Message{
		{Label: "transfer", Mutates: true, Args: []metadata.Arg{
			{Label: "value", Type: metadata.TypeRef{ID: 0}},
		}},
		{Label: "PSP22::transfer", Mutates: true, Payable: true},
		{Label: "Ownable::owner"},
	}
	doc.Spec.Events = []metadata.Event{
		{Label: "Transfer", Args: []metadata.EventArg{
			{Label: "value", Type: metadata.TypeRef{ID: 0}, Indexed: false},
		}},
		{Label: "Approval"},
	}

	u, err := analyzeDoc(t, doc)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if len(u.Constructors) != 1 || u.Constructors[0].GoName != "New" || !u.Constructors[0].Mutates {
		t.Fatalf("constructors = %+v", u.Constructors)
	}
	if got := u.Constructors[0].Selector.Hex(); got != "0x9bae9d5e" {
		t.Errorf("explicit selector ignored: %s", got)
	}

	if len(u.Ungrouped) != 1 || u.Ungrouped[0].GoName != "Transfer" {
		t.Fatalf("ungrouped = %+v", u.Ungrouped)
	}
	if len(u.Groups) != 2 {
		t.Fatalf("groups = %+v", u.Groups)
	}
	// sorted by label, not declaration order
	if u.Groups[0].Name != "Ownable" || u.Groups[1].Name != "PSP22" {
		t.Fatalf("group order = [%s %s]", u.Groups[0].Name, u.Groups[1].Name)
	}
	psp := u.Groups[1]
	if psp.TypeName != "PSP22Calls" || psp.GoName != "PSP22" {
		t.Fatalf("group naming = %+v", psp)
	}
	if len(psp.Methods) != 1 || psp.Methods[0].GoName != "Transfer" || !psp.Methods[0].Payable {
		t.Fatalf("group methods = %+v", psp.Methods)
	}
	// grouped and ungrouped "transfer" hash differently, so both survive
	if psp.Methods[0].Selector == u.Ungrouped[0].Selector {
		t.Fatal("grouped and ungrouped selector collided")
	}

	if len(u.Events) != 2 {
		t.Fatalf("events = %+v", u.Events)
	}
	if u.Events[0].GoName != "TransferEvent" || u.Events[0].Discriminant != 0 {
		t.Fatalf("event 0 = %+v", u.Events[0])
	}
	if u.Events[1].Discriminant != 1 {
		t.Fatalf("event 1 = %+v", u.Events[1])
	}
	if !u.HasHash || u.Hash[0] != 0x13 {
		t.Fatalf("hash = %x (has=%v)", u.Hash, u.HasHash)
	}
}

func TestAnalyzeSelectorCollision(t *testing.T) {
	doc := baseDoc()
	doc.Spec.Messages = []metadata.Message{
		{Label: "first", Selector: "0x01020304"},
		{Label: "second", Selector: "0x01020304"},
	}
	_, err := analyzeDoc(t, doc)
	if err == nil {
		t.Fatal("Analyze() succeeded, want selector collision")
	}
	if code := diag.CodeOf(err); code != diag.SelCollision {
		t.Fatalf("code = %s (%v), want SEL3001", code.ID(), err)
	}
}

func TestAnalyzeCollisionSpansConstructorsAndMessages(t *testing.T) {
	doc := baseDoc()
	doc.Spec.Constructors = []metadata.Constructor{{Label: "make", Selector: "0x0a0b0c0d"}}
	doc.Spec.Messages = []metadata.Message{{Label: "call", Selector: "0x0a0b0c0d"}}
	_, err := analyzeDoc(t, doc)
	if code := diag.CodeOf(err); code != diag.SelCollision {
		t.Fatalf("code = %s (%v), want SEL3001", code.ID(), err)
	}
}

func TestAnalyzeArgAvoidsReservedParams(t *testing.T) {
	doc := baseDoc()
	doc.Spec.Messages = []metadata.Message{
		{Label: "ping", Args: []metadata.Arg{
			{Label: "conn", Type: metadata.TypeRef{ID: 1}},
			{Label: "ctx", Type: metadata.TypeRef{ID: 1}},
		}},
	}
	u, err := analyzeDoc(t, doc)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	args := u.Ungrouped[0].Args
	if args[0].Go != "conn2" || args[1].Go != "ctx2" {
		t.Fatalf("args = %+v, want reserved names avoided", args)
	}
}

func TestAnalyzeTooManyEvents(t *testing.T) {
	doc := baseDoc()
	for i := 0; i < 257; i++ {
		doc.Spec.Events = append(doc.Spec.Events, metadata.Event{Label: fmt.Sprintf("E%d", i)})
	}
	_, err := analyzeDoc(t, doc)
	if code := diag.CodeOf(err); code != diag.RegVariantIndexRange {
		t.Fatalf("code = %s (%v), want REG2005", code.ID(), err)
	}
}
