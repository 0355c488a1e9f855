// Package analyze turns a parsed document plus its resolved type arena into
// the compilation unit the emitter consumes: selectors computed and checked
// for collisions, labels classified into grouped and ungrouped surfaces,
// event discriminants assigned, every Go name fixed.
package analyze

import (
	"sort"
	"strings"

	"fortio.org/safecast"

	"github.com/alfellati/ink-wrapper/internal/diag"
	"github.com/alfellati/ink-wrapper/internal/metadata"
	"github.com/alfellati/ink-wrapper/internal/naming"
	"github.com/alfellati/ink-wrapper/internal/registry"
)

// MethodName is the typed classification of a declared label. Splitting
// happens exactly once, here; downstream code never re-parses labels.
type MethodName struct {
	Group string
	Name  string
}

// Grouped reports whether the label carried a "Group::" prefix.
func (n MethodName) Grouped() bool { return n.Group != "" }

// SplitLabel classifies a label, cutting on the first "::".
func SplitLabel(label string) (MethodName, error) {
	head, tail, found := strings.Cut(label, "::")
	if !found {
		return MethodName{Name: label}, nil
	}
	if head == "" || tail == "" {
		return MethodName{}, diag.Newf(diag.SelBadLabel, "label %q has an empty group or method name", label)
	}
	return MethodName{Group: head, Name: tail}, nil
}

// Arg is one analyzed argument with its assigned parameter identifier.
type Arg struct {
	Label string
	Go    string
	Type  registry.TypeID
}

// Method is one analyzed constructor or message.
type Method struct {
	Label     string
	Name      MethodName
	GoName    string
	Selector  Selector
	Args      []Arg
	Returns   registry.TypeID
	HasReturn bool
	Mutates   bool
	Payable   bool
	Docs      []string
}

// Group is one trait-qualified surface: its declared label, the reserved
// view type name, and the methods placed under it.
type Group struct {
	Name     string
	GoName   string
	TypeName string
	Methods  []Method
}

// EventField is one analyzed event field.
type EventField struct {
	Label   string
	Go      string
	Type    registry.TypeID
	Indexed bool
}

// Event is one analyzed event with its positional discriminant.
type Event struct {
	Label        string
	GoName       string
	Discriminant uint8
	Fields       []EventField
	Docs         []string
}

// Contract is the document identity block.
type Contract struct {
	Name     string
	Version  string
	Language string
	Authors  []string
}

// Bytecode describes the artifact the upload routine guards against. The
// driver fills it in after reading the blob; the compiler itself never
// looks past length and hash.
type Bytecode struct {
	Length int
	Hash   [32]byte
}

// Unit is the fully analyzed compilation unit.
type Unit struct {
	Contract     Contract
	Types        *registry.Set
	Constructors []Method
	Ungrouped    []Method
	Groups       []Group
	Events       []Event
	Hash         [32]byte
	HasHash      bool
	Code         *Bytecode
}

// Analyze builds the compilation unit. Selector uniqueness spans
// constructors and messages together; group order is sorted by label so the
// result does not depend on declaration order.
func Analyze(doc *metadata.Document, set *registry.Set) (*Unit, error) {
	u := &Unit{
		Contract: Contract{
			Name:     doc.Contract.Name,
			Version:  doc.Contract.Version,
			Language: doc.Source.Language,
			Authors:  doc.Contract.Authors,
		},
		Types: set,
	}
	if doc.Source.Hash != "" {
		hash, err := metadata.ParseHash(doc.Source.Hash)
		if err != nil {
			return nil, err
		}
		u.Hash = hash
		u.HasHash = true
	}

	selectors := make(map[Selector]string, len(doc.Spec.Constructors)+len(doc.Spec.Messages))

	for _, ctor := range doc.Spec.Constructors {
		// ConstructorResult returns are dropped: deployment yields the
		// account id from the node, not a decoded value
		m, err := buildMethod(ctor.Label, ctor.Selector, ctor.Args, nil, selectors,
			"ctx", "conn", "salt", "value")
		if err != nil {
			return nil, err
		}
		m.Mutates = true
		m.Payable = ctor.Payable
		m.Docs = ctor.Docs
		// constructors are package-level functions, so their names go
		// through the shared table
		m.GoName = set.ReserveName(naming.ExportedIdent(ctor.Label))
		u.Constructors = append(u.Constructors, m)
	}

	instanceScope := map[string]bool{"AccountID": true, "FilterEvents": true}
	grouped := make(map[string]*Group)
	var groupOrder []string
	for _, msg := range doc.Spec.Messages {
		// i and v are the receiver identifiers emitted method bodies use
		m, err := buildMethod(msg.Label, msg.Selector, msg.Args, msg.ReturnType, selectors,
			"ctx", "conn", "value", "i", "v")
		if err != nil {
			return nil, err
		}
		m.Mutates = msg.Mutates
		m.Payable = msg.Payable
		m.Docs = msg.Docs
		if m.Name.Grouped() {
			g, ok := grouped[m.Name.Group]
			if !ok {
				g = &Group{Name: m.Name.Group}
				grouped[m.Name.Group] = g
				groupOrder = append(groupOrder, m.Name.Group)
			}
			g.Methods = append(g.Methods, m)
		} else {
			m.GoName = naming.Dedupe(naming.ExportedIdent(m.Name.Name), instanceScope)
			u.Ungrouped = append(u.Ungrouped, m)
		}
	}

	sort.Strings(groupOrder)
	for _, name := range groupOrder {
		g := grouped[name]
		g.GoName = naming.Dedupe(naming.ExportedIdent(g.Name), instanceScope)
		g.TypeName = set.ReserveName(naming.ExportedIdent(g.Name) + "Calls")
		methodScope := make(map[string]bool, len(g.Methods))
		for i := range g.Methods {
			g.Methods[i].GoName = naming.Dedupe(naming.ExportedIdent(g.Methods[i].Name.Name), methodScope)
		}
		u.Groups = append(u.Groups, *g)
	}

	for i, ev := range doc.Spec.Events {
		disc, err := safecast.Conv[uint8](i)
		if err != nil {
			return nil, diag.Newf(diag.RegVariantIndexRange, "event %q at position %d does not fit a one-byte discriminant", ev.Label, i)
		}
		fieldScope := make(map[string]bool, len(ev.Args))
		fields := make([]EventField, 0, len(ev.Args))
		for _, arg := range ev.Args {
			fields = append(fields, EventField{
				Label:   arg.Label,
				Go:      naming.Dedupe(naming.ExportedIdent(arg.Label), fieldScope),
				Type:    arg.Type.ID,
				Indexed: arg.Indexed,
			})
		}
		u.Events = append(u.Events, Event{
			Label:        ev.Label,
			GoName:       set.ReserveName(naming.ExportedIdent(ev.Label) + "Event"),
			Discriminant: disc,
			Fields:       fields,
			Docs:         ev.Docs,
		})
	}

	return u, nil
}

// buildMethod computes the selector, checks it against every selector seen
// so far, and assigns collision-free parameter names around the reserved
// ones the emitter inserts.
func buildMethod(label, selHex string, args []metadata.Arg, ret *metadata.TypeRef, selectors map[Selector]string, reserved ...string) (Method, error) {
	name, err := SplitLabel(label)
	if err != nil {
		return Method{}, err
	}

	var sel Selector
	if selHex != "" {
		raw, err := metadata.ParseSelector(selHex)
		if err != nil {
			return Method{}, err
		}
		sel = Selector(raw)
	} else {
		sel = ComputeSelector(label)
	}
	if prev, clash := selectors[sel]; clash {
		return Method{}, diag.Newf(diag.SelCollision, "%q and %q both dispatch on selector %s", prev, label, sel.Hex())
	}
	selectors[sel] = label

	paramScope := make(map[string]bool, len(args)+len(reserved))
	for _, r := range reserved {
		paramScope[r] = true
	}
	as := make([]Arg, 0, len(args))
	for _, a := range args {
		as = append(as, Arg{
			Label: a.Label,
			Go:    naming.Dedupe(naming.ParamIdent(a.Label), paramScope),
			Type:  a.Type.ID,
		})
	}

	m := Method{Label: label, Name: name, Selector: sel, Args: as}
	if ret != nil {
		m.Returns = ret.ID
		m.HasReturn = true
	}
	return m, nil
}
