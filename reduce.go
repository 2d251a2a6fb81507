package curlparser

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

var validMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

// reduce folds an ordered fragment stream into a ParsedRequest, then runs the
// normalization pass. Duplicate-flag policy is per kind: method, URL and auth
// overwrite (last wins), headers overwrite per name, body fragments
// accumulate in source order, and the insecure flag is idempotent.
func reduce(frags []fragment) (*ParsedRequest, error) {
	req := newParsedRequest()
	var urlText string

loop:
	for _, f := range frags {
		switch f.kind {
		case fragMethod:
			method, err := parseMethod(f.text)
			if err != nil {
				return nil, err
			}
			req.Method = method
		case fragURL, fragLocation:
			// Scheme defaulting is deferred to normalization; only the
			// literal text is stored here.
			urlText = f.text
		case fragHeader:
			if err := applyHeader(req, f); err != nil {
				return nil, err
			}
		case fragAuth:
			encoded := base64.StdEncoding.EncodeToString([]byte(f.text))
			req.Headers.Set("Authorization", "Basic "+encoded)
		case fragBody:
			req.Body = append(req.Body, removeQuote(strings.TrimSpace(f.raw)))
		case fragInsecure:
			req.Insecure = true
		case fragEnd:
			break loop
		}
	}

	if err := normalize(req, urlText); err != nil {
		return nil, err
	}
	return req, nil
}

// parseMethod validates a -X/--request value. Quotes around the token are
// stripped first, so 'GET' and GET are equivalent.
func parseMethod(tok string) (string, error) {
	method := strings.ToUpper(removeQuote(strings.TrimSpace(tok)))
	for _, valid := range validMethods {
		if method == valid {
			return method, nil
		}
	}
	return "", &InvalidMethodError{Method: tok}
}

// applyHeader splits a header fragment on the first ':', trims both sides,
// unescapes the value, and inserts it with overwrite semantics.
func applyHeader(req *ParsedRequest, f fragment) error {
	name, value, found := strings.Cut(f.text, ":")
	if !found {
		return &ParseError{Line: f.line, Column: f.col, Token: f.text, Message: "header is missing the ':' separator"}
	}

	name = strings.TrimSpace(name)
	value = unescapeString(strings.TrimSpace(value))
	if !httpguts.ValidHeaderFieldName(name) {
		return &InvalidHeaderNameError{Name: name}
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return &InvalidHeaderValueError{Name: name, Value: value}
	}

	req.Headers.Set(name, value)
	return nil
}

// normalize runs once after reduction, in a fixed order: URL scheme
// defaulting and validation, default Content-Type, default Accept, then the
// GET to POST upgrade. Later rules read state set by earlier ones.
func normalize(req *ParsedRequest, urlText string) error {
	if urlText == "" {
		return &InvalidURLError{Raw: urlText, Err: errors.New("missing URL")}
	}

	full := urlText
	if !strings.Contains(full, "://") {
		full = "http://" + full
	}
	u, err := url.Parse(full)
	if err != nil {
		return &InvalidURLError{Raw: urlText, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return &InvalidURLError{Raw: urlText, Err: errors.New("not an absolute URL")}
	}
	if u.Path == "" {
		// Canonical absolute-URI form always renders a path.
		u.Path = "/"
	}
	req.URL = u

	if len(req.Body) > 0 && req.Headers.Get("Content-Type") == "" {
		req.Headers.Set("Content-Type", contentTypeForm)
	}
	if req.Headers.Get("Accept") == "" {
		req.Headers.Set("Accept", "*/*")
	}
	if len(req.Body) > 0 && req.Method == http.MethodGet {
		req.Method = http.MethodPost
	}
	return nil
}
