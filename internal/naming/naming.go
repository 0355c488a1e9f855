// Package naming converts declared metadata labels into Go identifiers.
// Conversion is pure and deterministic: the same label always yields the
// same identifier.
package naming

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.Und, cases.NoLower)

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// ExportedIdent converts a label (snake_case, camelCase or `Group::name`)
// into an exported Go identifier. Existing upper case is preserved, so
// "PSP22" stays "PSP22" while "total_supply" becomes "TotalSupply".
func ExportedIdent(label string) string {
	parts := splitWords(label)
	if len(parts) == 0 {
		return "X"
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(exportPart(p))
	}
	out := b.String()
	if startsWithDigit(out) {
		out = "X" + out
	}
	return out
}

// exportPart capitalizes a word only when it starts lower case, so acronym
// labels like PSP22 keep their declared spelling.
func exportPart(p string) string {
	r, _ := utf8.DecodeRuneInString(p)
	if !unicode.IsLower(r) {
		return p
	}
	return titler.String(p)
}

// ParamIdent converts a label into an unexported identifier usable as a
// parameter or local. Go keywords get a trailing underscore.
func ParamIdent(label string) string {
	parts := splitWords(label)
	if len(parts) == 0 {
		return "x"
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(parts[0][:1]) + parts[0][1:])
	for _, p := range parts[1:] {
		b.WriteString(exportPart(p))
	}
	out := b.String()
	if startsWithDigit(out) {
		out = "x" + out
	}
	if goKeywords[out] {
		out += "_"
	}
	return out
}

// PackageIdent converts a contract name into a Go package name: lower case
// letters and digits only, "contract" when nothing usable remains.
func PackageIdent(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLower(r) || (unicode.IsDigit(r) && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "contract"
	}
	return b.String()
}

// Dedupe returns base, or base with the smallest numeric suffix that is not
// yet in seen, and records the result. Callers use one seen set per scope.
func Dedupe(base string, seen map[string]bool) string {
	name := base
	for n := 2; seen[name]; n++ {
		name = base + strconv.Itoa(n)
	}
	seen[name] = true
	return name
}

// splitWords breaks a label on every rune Go identifiers cannot carry.
func splitWords(label string) []string {
	return strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func startsWithDigit(s string) bool {
	if s == "" {
		return false
	}
	return s[0] >= '0' && s[0] <= '9'
}
