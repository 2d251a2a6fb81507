package curlparser

import (
	"net/url"
	"strings"
)

const (
	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json"
)

// EncodedBody serializes the body fragments according to the request's
// Content-Type. It is a pure query: calling it repeatedly returns the same
// result and never mutates the request.
//
// An empty body yields ("", nil). With Content-Type
// application/x-www-form-urlencoded every fragment is treated as a key=value
// pair and percent-encoded in source order. With application/json only the
// last fragment survives, verbatim; earlier fragments are discarded (curl
// compatibility, multiple -d values do not concatenate for JSON). Any other
// Content-Type returns an UnsupportedContentTypeError.
func (r *ParsedRequest) EncodedBody() (string, error) {
	if len(r.Body) == 0 {
		return "", nil
	}

	switch ct := r.Headers.Get("Content-Type"); ct {
	case contentTypeForm:
		return r.formURLEncoded(), nil
	case contentTypeJSON:
		return r.Body[len(r.Body)-1], nil
	default:
		return "", &UnsupportedContentTypeError{ContentType: ct}
	}
}

// formURLEncoded joins the body fragments as percent-encoded key=value pairs,
// preserving fragment order. url.Values.Encode is not usable here because it
// sorts keys.
func (r *ParsedRequest) formURLEncoded() string {
	var b strings.Builder
	for i, item := range r.Body {
		// A fragment without '=' is a key with an empty value.
		key, value, _ := strings.Cut(item, "=")
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(removeQuote(key)))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(removeQuote(value)))
	}
	return b.String()
}
