package curlparser

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// NewRequest builds a net/http request from the parsed description. The body
// is serialized with EncodedBody, so an unsupported Content-Type surfaces
// here rather than at parse time. The request is not sent.
func (r *ParsedRequest) NewRequest(ctx context.Context) (*http.Request, error) {
	encoded, err := r.EncodedBody()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if encoded != "" {
		body = strings.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header = r.Headers.Clone()
	return req, nil
}

// Client returns an HTTP client configured for this request: certificate
// verification is disabled when -k/--insecure was present.
func (r *ParsedRequest) Client() *http.Client {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	if r.Insecure {
		client.Transport = &http.Transport{
			TLSClientConfig: getInsecureTLSConfig(),
		}
	}
	return client
}

func getInsecureTLSConfig() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true,
	}
}
