// Package curlparser converts curl command strings into structured HTTP
// request descriptions.
//
// A parse runs in three stages: the lexer tokenizes the curl syntax into
// typed fragments (method, url, header, body, ...), the reducer folds the
// fragment stream into a ParsedRequest, and a final normalization pass
// applies curl's defaults (http:// scheme, Accept and Content-Type headers,
// GET to POST upgrade when a body is present). Load additionally renders
// {{ name }} template placeholders against a variable context before the
// lexer runs.
//
// Basic usage:
//
//	req, err := curlparser.Parse(`curl https://api.example.com/users`)
//
// With headers, a body, and template variables:
//
//	req, err := curlparser.Load(`curl -X POST https://api.example.com/users \
//	    -H 'Content-Type: application/json' \
//	    -H 'Authorization: Bearer {{ token }}' \
//	    -d '{"name": "John Doe"}'`, map[string]any{"token": "123456"})
//
// The package only produces a request description; issuing the request is up
// to the caller. NewRequest and Client bridge to net/http for that purpose.
package curlparser

import (
	"net/http"
	"net/url"
)

// ParsedRequest is the structured result of parsing a curl command. It is
// built up during reduction and normalization and should be treated as
// read-only afterwards.
type ParsedRequest struct {
	// Method is the HTTP method; GET unless -X/--request was given or the
	// presence of a body upgraded it to POST.
	Method string
	// URL is the validated absolute destination. Schemeless input gets an
	// http:// prefix, and an empty path is rendered as "/".
	URL *url.URL
	// Headers holds one value per case-insensitive header name; a repeated
	// name overwrites the earlier value.
	Headers http.Header
	// Body holds the raw -d/--data fragments in source order, one entry per
	// occurrence, never reordered or deduplicated.
	Body []string
	// Insecure is true if -k/--insecure was present.
	Insecure bool
}

// newParsedRequest returns an empty request with curl's defaults applied.
func newParsedRequest() *ParsedRequest {
	return &ParsedRequest{
		Method:  http.MethodGet,
		Headers: make(http.Header, 8),
		Body:    make([]string, 0, 4),
	}
}

// Parse converts a curl command string into a ParsedRequest. Template
// placeholders are not rendered; use Load for that.
func Parse(input string) (*ParsedRequest, error) {
	frags, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	return reduce(frags)
}

// Load renders {{ name }} placeholders in input against context, then parses
// the rendered text. A nil context renders against an empty variable set, so
// placeholder-free input passes through unchanged.
func Load(input string, context map[string]any) (*ParsedRequest, error) {
	rendered, err := render(input, context)
	if err != nil {
		return nil, err
	}
	return Parse(rendered)
}
