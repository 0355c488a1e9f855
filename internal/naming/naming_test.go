package naming

import "testing"

func TestExportedIdent(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"total_supply", "TotalSupply"},
		{"new", "New"},
		{"PSP22", "PSP22"},
		{"PSP22Error", "PSP22Error"},
		{"token_name", "TokenName"},
		{"Transfer", "Transfer"},
		{"increase_allowance", "IncreaseAllowance"},
		{"1bad", "X1bad"},
		{"", "X"},
		{"Foo::bar", "FooBar"},
	}
	for _, tc := range cases {
		if got := ExportedIdent(tc.in); got != tc.want {
			t.Errorf("ExportedIdent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParamIdent(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"total_supply", "totalSupply"},
		{"to", "to"},
		{"type", "type_"},
		{"Value", "value"},
		{"", "x"},
		{"2fast", "x2fast"},
	}
	for _, tc := range cases {
		if got := ParamIdent(tc.in); got != tc.want {
			t.Errorf("ParamIdent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
