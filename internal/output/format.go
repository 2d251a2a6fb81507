// Package output provides formatting and pretty-printing for parsed requests.
package output

import (
	"encoding/json"
	"os"

	"github.com/mattn/go-isatty"
	curlparser "github.com/tyrchen/curl-parser"
)

// View is the JSON shape of a parsed request.
type View struct {
	Method      string            `json:"method"`
	URL         string            `json:"url"`
	Headers     map[string]string `json:"headers,omitempty"`
	Body        []string          `json:"body,omitempty"`
	EncodedBody string            `json:"encoded_body,omitempty"`
	Insecure    bool              `json:"insecure,omitempty"`
}

// NewView flattens a ParsedRequest into its JSON shape. The encoded body is
// included when the content type supports encoding.
func NewView(req *curlparser.ParsedRequest) (View, error) {
	v := View{
		Method:   req.Method,
		URL:      req.URL.String(),
		Headers:  make(map[string]string, len(req.Headers)),
		Body:     req.Body,
		Insecure: req.Insecure,
	}
	for name := range req.Headers {
		v.Headers[name] = req.Headers.Get(name)
	}

	encoded, err := req.EncodedBody()
	if err != nil {
		return View{}, err
	}
	v.EncodedBody = encoded
	return v, nil
}

// FormatRequest formats a ParsedRequest as JSON for output.
func FormatRequest(req *curlparser.ParsedRequest) ([]byte, error) {
	v, err := NewView(req)
	if err != nil {
		return nil, err
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		// Pretty print when outputting to terminal
		return json.MarshalIndent(v, "", "  ")
	}
	// Compact JSON when piped
	return json.Marshal(v)
}
