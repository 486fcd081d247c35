package ports

import (
	"context"
	"strings"
)

// APIClient sends a request and decodes its response into out. A nil out
// discards the body. It is the only way services reach the Transport.
type APIClient interface {
	Call(ctx context.Context, req Request, out any) error
}

// Send performs a call with a JSON body and decodes the result as T.
func Send[T any](ctx context.Context, c APIClient, op, method, path string, body any, headers map[string]string) (T, error) {
	var out T
	err := c.Call(ctx, Request{Operation: op, Method: method, Path: path, Headers: headers, Body: body}, &out)
	return out, err
}

// Fetch performs a body-less call and decodes the result as T.
func Fetch[T any](ctx context.Context, c APIClient, op, method, path string, headers map[string]string) (T, error) {
	var out T
	err := c.Call(ctx, Request{Operation: op, Method: method, Path: path, Headers: headers}, &out)
	return out, err
}

// BearerHeader builds the Authorization header of an authenticated call.
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + strings.TrimSpace(token)}
}
