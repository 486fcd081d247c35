package apiclient

import (
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/castmate/castmate-client/internal/core/domain"
)

var errEmptyBody = errors.New("empty response body")

// Decode interprets a raw response. Statuses in [200,300) are decoded into
// out (nil discards the body); any other status becomes RequestFailed carrying
// the body text verbatim when it is non-empty UTF-8.
func Decode(status int, raw []byte, out any) error {
	if status < 200 || status >= 300 {
		return domain.NewRequestFailed(status, errorText(raw))
	}
	if out == nil {
		return nil
	}
	if len(raw) == 0 {
		return domain.NewDecodingFailed(errEmptyBody)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.NewDecodingFailed(err)
	}
	return nil
}

func errorText(raw []byte) string {
	if len(raw) == 0 || !utf8.Valid(raw) {
		return ""
	}
	return string(raw)
}
