// Package grammar defines the structured flag grammar for curl commands.
package grammar

import "fmt"

// Kind classifies what a recognized flag contributes to the request.
type Kind int

const (
	KindMethod Kind = iota
	KindHeader
	KindBody
	KindAuth
	KindLocation
	KindInsecure
)

// String returns the kind name used in help text and snapshots.
func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindHeader:
		return "header"
	case KindBody:
		return "body"
	case KindAuth:
		return "auth"
	case KindLocation:
		return "location"
	case KindInsecure:
		return "insecure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Flag describes one recognized curl flag.
type Flag struct {
	Short       string   // short form, e.g. "-X"
	Long        string   // long form, e.g. "--request"
	Aliases     []string // additional spellings, e.g. "--data-raw"
	Kind        Kind
	TakesValue  bool
	Repeatable  bool
	Description string
	Example     string
}

// Grammar contains the complete flag grammar definition.
type Grammar struct {
	Flags []Flag
}

// GetGrammar returns the canonical grammar definition.
func GetGrammar() Grammar {
	return Grammar{
		Flags: []Flag{
			{
				Short: "-X", Long: "--request", Kind: KindMethod,
				TakesValue:  true,
				Description: "HTTP method (last wins)",
				Example:     "-X PATCH",
			},
			{
				Short: "-H", Long: "--header", Kind: KindHeader,
				TakesValue: true, Repeatable: true,
				Description: "Request header, 'Name: Value' (last same-name wins)",
				Example:     "-H 'Accept: application/json'",
			},
			{
				Short: "-d", Long: "--data", Aliases: []string{"--data-raw"}, Kind: KindBody,
				TakesValue: true, Repeatable: true,
				Description: "Request body fragment (order preserving)",
				Example:     `-d '{"name":"John"}'`,
			},
			{
				Short: "-u", Long: "--user", Kind: KindAuth,
				TakesValue:  true,
				Description: "Basic auth credentials as user:pass (last wins)",
				Example:     "-u alice:secret",
			},
			{
				Short: "-L", Long: "--location", Kind: KindLocation,
				TakesValue:  true,
				Description: "Redirect target URL, overrides the positional URL (last wins)",
				Example:     "-L https://example.com",
			},
			{
				Short: "-k", Long: "--insecure", Kind: KindInsecure,
				Description: "Disable TLS certificate verification (idempotent)",
				Example:     "-k",
			},
		},
	}
}

// Lookup resolves a command-line token against the flag table. It matches
// short forms, long forms and aliases.
func Lookup(tok string) (Flag, bool) {
	for _, f := range GetGrammar().Flags {
		if tok == f.Short || tok == f.Long {
			return f, true
		}
		for _, a := range f.Aliases {
			if tok == a {
				return f, true
			}
		}
	}
	return Flag{}, false
}

// Names returns every accepted flag spelling, used for suggestions.
func Names() []string {
	var names []string
	for _, f := range GetGrammar().Flags {
		names = append(names, f.Short, f.Long)
		names = append(names, f.Aliases...)
	}
	return names
}

// FormatHelp formats the grammar as help text.
func FormatHelp() string {
	g := GetGrammar()

	var help string
	help += "curl2http - convert a curl command into a structured HTTP request\n\n"
	help += "Usage: curl2http [flags] 'curl ...'\n\n"
	help += "Recognized curl flags:\n"

	for _, f := range g.Flags {
		spelling := f.Short + "/" + f.Long
		for _, a := range f.Aliases {
			spelling += "/" + a
		}
		help += fmt.Sprintf("  %-28s - %s", spelling, f.Description)
		if f.Repeatable {
			help += " (repeatable)"
		}
		help += "\n"
		if f.Example != "" {
			help += fmt.Sprintf("                                 Example: %s\n", f.Example)
		}
	}

	help += "\nA bare non-flag token is the positional URL. Lines starting with '#'\n"
	help += "are comments, and a trailing backslash continues the command on the\n"
	help += "next line.\n\n"
	help += "Examples:\n"
	help += "  curl2http 'curl https://api.example.com/users'\n"
	help += "  \n"
	help += "  curl2http \"curl -X POST https://api.example.com/users \\\n"
	help += "    -H 'Content-Type: application/json' \\\n"
	help += "    -d '{\\\"name\\\":\\\"Ada\\\"}'\"\n"
	help += "  \n"
	help += "  curl2http -var token=abcd1234 \"curl -H 'Authorization: Bearer {{ token }}' https://h\"\n"

	return help
}
