package curlparser

import "fmt"

// ParseError reports a grammar violation in the curl syntax, such as an
// unknown flag, an unterminated quote, or a value-taking flag with no value.
// No fragments beyond the failure point are processed.
type ParseError struct {
	Line    int
	Column  int
	Token   string
	Message string
	Suggest string
}

func (e *ParseError) Error() string {
	if e.Suggest != "" {
		return fmt.Sprintf("parse error at line %d, column %d (token: %q): %s (did you mean %q?)", e.Line, e.Column, e.Token, e.Message, e.Suggest)
	}
	return fmt.Sprintf("parse error at line %d, column %d (token: %q): %s", e.Line, e.Column, e.Token, e.Message)
}

// RenderError reports a template rendering failure. It is surfaced before any
// grammar or semantic error because rendering runs first.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render request template: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// InvalidMethodError reports a -X/--request value that is not an HTTP method.
type InvalidMethodError struct {
	Method string
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("invalid HTTP method: %q (valid methods: GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS)", e.Method)
}

// InvalidURLError reports a destination that does not form an absolute URL
// after scheme defaulting, or a command with no destination at all.
type InvalidURLError struct {
	Raw string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q: %v", e.Raw, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// InvalidHeaderNameError reports a header name containing invalid characters.
type InvalidHeaderNameError struct {
	Name string
}

func (e *InvalidHeaderNameError) Error() string {
	return fmt.Sprintf("invalid header name: %q", e.Name)
}

// InvalidHeaderValueError reports a header value containing invalid bytes.
type InvalidHeaderValueError struct {
	Name  string
	Value string
}

func (e *InvalidHeaderValueError) Error() string {
	return fmt.Sprintf("invalid value for header %s: %q", e.Name, e.Value)
}

// UnsupportedContentTypeError is returned by EncodedBody when the request
// carries a body with a Content-Type the encoder does not know how to
// serialize. It is never returned during parsing.
type UnsupportedContentTypeError struct {
	ContentType string
}

func (e *UnsupportedContentTypeError) Error() string {
	return fmt.Sprintf("unsupported content type: %q", e.ContentType)
}
