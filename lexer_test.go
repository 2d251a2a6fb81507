package curlparser

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []fragment
		wantErr bool
	}{
		{
			name:  "bare url",
			input: "curl https://api.example.com/users",
			want: []fragment{
				{kind: fragURL, text: "https://api.example.com/users"},
				{kind: fragEnd},
			},
		},
		{
			name:  "quoted url",
			input: `curl 'https://api.example.com/users'`,
			want: []fragment{
				{kind: fragURL, text: "https://api.example.com/users"},
				{kind: fragEnd},
			},
		},
		{
			name:  "method short and long form",
			input: "curl -X PATCH --request PUT https://h",
			want: []fragment{
				{kind: fragMethod, text: "PATCH"},
				{kind: fragMethod, text: "PUT"},
				{kind: fragURL, text: "https://h"},
				{kind: fragEnd},
			},
		},
		{
			name:  "header flag",
			input: `curl -H 'Accept: application/json' https://h`,
			want: []fragment{
				{kind: fragHeader, text: "Accept: application/json"},
				{kind: fragURL, text: "https://h"},
				{kind: fragEnd},
			},
		},
		{
			name:  "data and data-raw aliases",
			input: `curl -d a=1 --data b=2 --data-raw c=3 https://h`,
			want: []fragment{
				{kind: fragBody, text: "a=1"},
				{kind: fragBody, text: "b=2"},
				{kind: fragBody, text: "c=3"},
				{kind: fragURL, text: "https://h"},
				{kind: fragEnd},
			},
		},
		{
			name:  "insecure and location",
			input: "curl -k -L https://b.test https://a.test",
			want: []fragment{
				{kind: fragInsecure, text: "-k"},
				{kind: fragLocation, text: "https://b.test"},
				{kind: fragURL, text: "https://a.test"},
				{kind: fragEnd},
			},
		},
		{
			name:  "comment lines are skipped",
			input: "#this is good\ncurl -k 'https://example.com/'",
			want: []fragment{
				{kind: fragInsecure, text: "-k"},
				{kind: fragURL, text: "https://example.com/"},
				{kind: fragEnd},
			},
		},
		{
			name:  "line continuation",
			input: "curl \\\n  -X POST \\\n  https://h",
			want: []fragment{
				{kind: fragMethod, text: "POST"},
				{kind: fragURL, text: "https://h"},
				{kind: fragEnd},
			},
		},
		{
			name:  "continuation directly after quoted value",
			input: "curl -H \"Accept: application/json\"\\\n  https://h",
			want: []fragment{
				{kind: fragHeader, text: "Accept: application/json"},
				{kind: fragURL, text: "https://h"},
				{kind: fragEnd},
			},
		},
		{
			name:  "single quotes capture newlines verbatim",
			input: "curl -d '{\n  \"a\": 1\n}' https://h",
			want: []fragment{
				{kind: fragBody, text: "{\n  \"a\": 1\n}"},
				{kind: fragURL, text: "https://h"},
				{kind: fragEnd},
			},
		},
		{
			name:  "escaped quote does not terminate double-quoted value",
			input: `curl -H "X-Meta: {\"v\":\"1\"}" https://h`,
			want: []fragment{
				{kind: fragHeader, text: `X-Meta: {\"v\":\"1\"}`},
				{kind: fragURL, text: "https://h"},
				{kind: fragEnd},
			},
		},
		{
			name:  "quoted token with leading dash is not a flag",
			input: `curl -d '{"-name":"--John"}' https://h`,
			want: []fragment{
				{kind: fragBody, text: `{"-name":"--John"}`},
				{kind: fragURL, text: "https://h"},
				{kind: fragEnd},
			},
		},
		{
			name:    "unknown flag",
			input:   "curl --wat https://h",
			wantErr: true,
		},
		{
			name:    "missing value after flag",
			input:   "curl https://h -H",
			wantErr: true,
		},
		{
			name:    "unterminated single quote",
			input:   "curl 'https://h",
			wantErr: true,
		},
		{
			name:    "unterminated double quote",
			input:   `curl "https://h`,
			wantErr: true,
		},
		{
			name:    "not a curl command",
			input:   "wget https://h",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tokenize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("tokenize(%q) expected error, got fragments %v", tt.input, got)
				}
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("tokenize(%q) error = %T, want *ParseError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("tokenize(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("tokenize(%q) = %d fragments, want %d: %v", tt.input, len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].kind != tt.want[i].kind {
					t.Errorf("fragment %d kind = %v, want %v", i, got[i].kind, tt.want[i].kind)
				}
				if tt.want[i].text != "" && got[i].text != tt.want[i].text {
					t.Errorf("fragment %d text = %q, want %q", i, got[i].text, tt.want[i].text)
				}
			}
		})
	}
}

func TestTokenizeErrorPositions(t *testing.T) {
	_, err := tokenize("curl \\\n  --wat https://h")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
	if perr.Token != "--wat" {
		t.Errorf("Token = %q, want %q", perr.Token, "--wat")
	}
}

func TestSuggestFlag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"--requset", "--request"},
		{"--haeder", "--header"},
		{"--dta", "--data"},
		{"--completely-unrelated", ""},
	}

	for _, tt := range tests {
		if got := suggestFlag(tt.input); got != tt.want {
			t.Errorf("suggestFlag(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUnescapeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`plain`, "plain"},
		{`\"quoted\"`, `"quoted"`},
		{`back\\slash`, `back\slash`},
		{`sla\/sh`, "sla/sh"},
		{`line\nbreak`, "line\nbreak"},
		{`tab\there`, "tab\there"},
		{`cr\rhere`, "cr\rhere"},
		// Unrecognized escapes keep both characters.
		{`\x41`, `\x41`},
		{`trailing\`, `trailing\`},
	}

	for _, tt := range tests {
		if got := unescapeString(tt.input); got != tt.want {
			t.Errorf("unescapeString(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRemoveQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`'single'`, "single"},
		{`"double"`, "double"},
		{`bare`, "bare"},
		{`'mismatched"`, `'mismatched"`},
		{`'`, `'`},
		{`''`, ""},
	}

	for _, tt := range tests {
		if got := removeQuote(tt.input); got != tt.want {
			t.Errorf("removeQuote(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
