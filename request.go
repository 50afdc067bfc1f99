package webpurify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// QueryString builds the query string for a call to method. The parameters are always
// emitted in the same order, so the result can be compared verbatim.
func QueryString(apiKey, text string, method Method) string {
	var q query
	q.add("format", "json")
	q.add("api_key", apiKey)
	q.add("text", text)
	q.add("method", MethodName(method))
	q.add("semail", "1")
	q.add("slink", "1")
	q.add("rsp", "1")
	q.add("sphone", "1")

	switch m := method.(type) {
	case Check, *Check:
	case Replace:
		q.add("replacesymbol", m.ReplaceSymbol)
	case *Replace:
		q.add("replacesymbol", m.ReplaceSymbol)
	case SmartScreen:
		q.addSmartScreen(m)
	case *SmartScreen:
		q.addSmartScreen(*m)
	default:
		// MethodName already panics on unknown methods.
		panic(fmt.Sprintf("webpurify: unknown method %T", method))
	}

	return q.String()
}

// NewRequest builds the HTTP request for calling method on text. WebPurify takes every
// parameter in the query string, so the request is a POST with an empty body even though
// it declares a JSON content type.
func NewRequest(ctx context.Context, apiKey string, region Region, method Method, text string) (*http.Request, error) {
	rawURI := region.Endpoint() + "?" + QueryString(apiKey, text, method)

	uri, err := url.Parse(rawURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	if !uri.IsAbs() || uri.Host == "" {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidURI, region.Endpoint())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// ProfanityCheckRequest builds a check request. WebPurify reports whether the text
// contains profanity, email addresses, links or phone numbers.
func ProfanityCheckRequest(ctx context.Context, apiKey string, region Region, text string) (*http.Request, error) {
	return NewRequest(ctx, apiKey, region, Check{}, text)
}

// ProfanityReplaceRequest builds a replace request. WebPurify masks every match in text
// with replaceSymbol.
func ProfanityReplaceRequest(ctx context.Context, apiKey string, region Region, text, replaceSymbol string) (*http.Request, error) {
	return NewRequest(ctx, apiKey, region, Replace{ReplaceSymbol: replaceSymbol}, text)
}

// SmartScreenRequest builds a smart screen request.
func SmartScreenRequest(ctx context.Context, apiKey string, region Region, text string, opts SmartScreenOptions) (*http.Request, error) {
	return NewRequest(ctx, apiKey, region, SmartScreen(opts), text)
}

// query is an ordered application/x-www-form-urlencoded serializer. url.Values sorts its
// keys and url.QueryEscape escapes '*', neither of which matches what WebPurify expects.
type query struct {
	b strings.Builder
}

func (q *query) add(key, value string) {
	if q.b.Len() > 0 {
		q.b.WriteByte('&')
	}
	formEncode(&q.b, key)
	q.b.WriteByte('=')
	formEncode(&q.b, value)
}

func (q *query) addSmartScreen(m SmartScreen) {
	q.add("replacesymbol", m.ReplaceSymbol)
	q.add("sentiment", boolString(m.Sentiment))
	q.add("topics", boolString(m.Topics))
}

func (q *query) String() string {
	return q.b.String()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

const upperhex = "0123456789ABCDEF"

// formEncode writes s using the WHATWG urlencoded byte serializer: alphanumerics and
// "*-._" are kept, space becomes '+', every other byte is percent encoded.
func formEncode(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case c == '*' || c == '-' || c == '.' || c == '_':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
}
