package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// GenerateAnalysis asks the backend for a narrative portfolio analysis in
// the given language and returns the markdown text. A rate-limited backend
// surfaces as ErrQuota, distinguishable from an ordinary failure.
//
// The response shape is backend-owned and loose: the narrative arrives under
// "content", with "message" as a known alternative, hence the jsonpath
// probing instead of a fixed struct.
func (c *Client) GenerateAnalysis(ctx context.Context, language string) (string, error) {
	if language == "" {
		language = "pt"
	}
	query := url.Values{}
	query.Set("language", language)

	var payload any
	err := c.postJSON(ctx, "/analysis/generate", query, nil, &payload)
	var apiErr *Error
	if errors.As(err, &apiErr) && quotaExceeded(apiErr) {
		return "", fmt.Errorf("generating analysis: %w", ErrQuota)
	}
	if err != nil {
		return "", err
	}

	for _, path := range []string{"$.content", "$.message"} {
		v, err := jsonpath.Get(path, payload)
		if err != nil {
			continue
		}
		if text, ok := v.(string); ok && text != "" {
			return text, nil
		}
	}
	return "", fmt.Errorf("analysis response carries no narrative text")
}

// quotaExceeded recognizes the backend's rate-limit answer: either a plain
// 429 or an upstream 429 relayed inside the detail message.
func quotaExceeded(e *Error) bool {
	return e.Status == http.StatusTooManyRequests || strings.Contains(e.Detail, "429")
}
