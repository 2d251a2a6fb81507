package grammar

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		tok      string
		wantKind Kind
		wantOK   bool
	}{
		{"-X", KindMethod, true},
		{"--request", KindMethod, true},
		{"-H", KindHeader, true},
		{"--header", KindHeader, true},
		{"-d", KindBody, true},
		{"--data", KindBody, true},
		{"--data-raw", KindBody, true},
		{"-u", KindAuth, true},
		{"-L", KindLocation, true},
		{"-k", KindInsecure, true},
		{"--insecure", KindInsecure, true},
		{"-Z", 0, false},
		{"--verbose", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		flag, ok := Lookup(tt.tok)
		if ok != tt.wantOK {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.tok, ok, tt.wantOK)
			continue
		}
		if ok && flag.Kind != tt.wantKind {
			t.Errorf("Lookup(%q) kind = %v, want %v", tt.tok, flag.Kind, tt.wantKind)
		}
	}
}

func TestNamesCoverEverySpelling(t *testing.T) {
	names := Names()

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" {
			t.Fatal("Names() contains an empty spelling")
		}
		if seen[n] {
			t.Fatalf("Names() contains duplicate spelling %q", n)
		}
		seen[n] = true
	}

	for _, want := range []string{"-X", "--request", "--data-raw", "-k"} {
		if !seen[want] {
			t.Errorf("Names() is missing %q", want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindMethod, "method"},
		{KindHeader, "header"},
		{KindBody, "body"},
		{KindAuth, "auth"},
		{KindLocation, "location"},
		{KindInsecure, "insecure"},
		{Kind(99), "Kind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestFormatHelp(t *testing.T) {
	help := FormatHelp()

	for _, f := range GetGrammar().Flags {
		if !strings.Contains(help, f.Short) {
			t.Errorf("help text is missing %s", f.Short)
		}
		if !strings.Contains(help, f.Long) {
			t.Errorf("help text is missing %s", f.Long)
		}
	}
	if !strings.Contains(help, "Usage:") {
		t.Error("help text is missing the usage line")
	}
}
