package diag

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := Newf(RegUnresolvedReference, "type %d is not declared", 42)
	want := "[REG2001]: type 42 is not declared"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestCodeOfUnwraps(t *testing.T) {
	err := fmt.Errorf("while resolving: %w", New(SelCollision, "boom"))
	if got := CodeOf(err); got != SelCollision {
		t.Fatalf("CodeOf() = %v, want SelCollision", got)
	}
	if got := CodeOf(errors.New("plain")); got != UnknownCode {
		t.Fatalf("CodeOf(plain) = %v, want UnknownCode", got)
	}
}

func TestCodeIDRanges(t *testing.T) {
	cases := []struct {
		code Code
		id   string
	}{
		{MetaUnsupportedVersion, "MET1002"},
		{RegRecursiveType, "REG2002"},
		{SelCollision, "SEL3001"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.id {
			t.Errorf("ID(%d) = %q, want %q", tc.code, got, tc.id)
		}
	}
}

func TestTitleFallsBackToUnknown(t *testing.T) {
	if got := Code(1999).Title(); got != codeDescription[UnknownCode] {
		t.Fatalf("Title() = %q, want unknown fallback", got)
	}
}
