package port

import (
	"context"
	"net/url"
)

// GraphClient is the outbound port to the Meta Marketing Graph API. The
// returned error covers transport failures only; HTTP-level and Graph-level
// failures are surfaced through the GraphResponse so callers can make
// per-step decisions (compensate, abort, reclassify) instead of unwinding
// through a thrown error.
type GraphClient interface {
	// PostForm issues a form-encoded POST to the versioned path. The access
	// token is always appended as the access_token form field.
	PostForm(ctx context.Context, path string, params url.Values, accessToken string) (*GraphResponse, error)
	// Get issues a GET with the given query parameters plus access_token.
	Get(ctx context.Context, path string, query url.Values, accessToken string) (*GraphResponse, error)
	// Delete issues a DELETE against an object path. Used for compensation.
	Delete(ctx context.Context, path string, accessToken string) (*GraphResponse, error)
}

// GraphResponse is the tagged result of one Graph API round-trip. Exactly one
// of Data and Err is meaningful: Err is nil on success, and on failure it
// carries either the remote error payload or a synthesized parse error.
// RawBody retains a bounded excerpt of the response body for logging.
type GraphResponse struct {
	StatusCode int
	Data       map[string]any
	Err        *GraphError
	RawBody    string
}

// OK reports whether the call succeeded at both the HTTP and Graph level.
func (r *GraphResponse) OK() bool { return r != nil && r.Err == nil }

// ID extracts the "id" field Meta returns from object-creation calls.
func (r *GraphResponse) ID() string {
	if r == nil || r.Data == nil {
		return ""
	}
	id, _ := r.Data["id"].(string)
	return id
}

// ExpiredToken reports whether the failure indicates an expired or invalid
// access token: an HTTP 401, or Graph error code 190.
func (r *GraphResponse) ExpiredToken() bool {
	if r == nil {
		return false
	}
	if r.StatusCode == 401 {
		return true
	}
	return r.Err != nil && r.Err.Code == 190
}

// GraphError mirrors the error object Meta embeds in failure payloads. Type
// is set to ParseErrorType when the body could not be decoded at all.
type GraphError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	Subcode   int    `json:"error_subcode"`
	FBTraceID string `json:"fbtrace_id"`
}

// ParseErrorType marks a synthesized error for an unparseable response body.
const ParseErrorType = "ParseError"
