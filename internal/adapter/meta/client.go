package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"leadlaunch/internal/config/configs"
	"leadlaunch/internal/core/port"
)

// rawBodyLimit bounds the response excerpt retained for logging and for
// synthesized parse errors. Verbose upstream outages (HTML error pages,
// proxies) degrade into a typed error instead of flooding logs.
const rawBodyLimit = 500

// Client implements port.GraphClient against the Meta Marketing Graph API.
// All object-creation and activation calls are form-urlencoded POSTs; reads
// are GETs with query parameters. The access token travels as a form/query
// field named access_token, not as an HTTP header.
type Client struct {
	http *http.Client
	base string // origin plus pinned version, e.g. https://graph.facebook.com/v21.0
}

// NewClient builds a Graph API client from configuration. The HTTP client
// timeout bounds each round-trip.
func NewClient(cfg configs.Meta) *Client {
	base := strings.TrimRight(cfg.BaseURL.String(), "/") + "/" + cfg.GraphVersion
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		base: base,
	}
}

// PostForm issues a form-encoded POST to the versioned path, appending the
// access token. Non-2xx statuses and remote error payloads are returned
// inside the GraphResponse, never as the error value.
func (c *Client) PostForm(ctx context.Context, path string, params url.Values, accessToken string) (*port.GraphResponse, error) {
	form := url.Values{}
	for k, vs := range params {
		form[k] = vs
	}
	form.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// Get issues a GET with the given query parameters plus the access token.
func (c *Client) Get(ctx context.Context, path string, query url.Values, accessToken string) (*port.GraphResponse, error) {
	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path)+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// Delete issues a DELETE against an object path. Meta cascades deletion of a
// campaign to its ad sets, ads and creatives, but not to lead forms.
func (c *Client) Delete(ctx context.Context, path string, accessToken string) (*port.GraphResponse, error) {
	q := url.Values{}
	q.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.url(path)+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) url(path string) string {
	return c.base + "/" + strings.TrimLeft(path, "/")
}

// do executes the request and folds the response into the tagged
// GraphResponse shape. The returned error covers transport failures only.
func (c *Client) do(req *http.Request) (*port.GraphResponse, error) {
	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	resp := &port.GraphResponse{
		StatusCode: httpResp.StatusCode,
		RawBody:    excerpt(body),
	}

	var data map[string]any
	if err = json.Unmarshal(body, &data); err != nil {
		resp.Err = &port.GraphError{
			Type:    port.ParseErrorType,
			Message: fmt.Sprintf("unparseable response (status %d): %s", httpResp.StatusCode, resp.RawBody),
		}
		return resp, nil
	}
	resp.Data = data

	if rawErr, ok := data["error"]; ok {
		resp.Err = decodeGraphError(rawErr)
		return resp, nil
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		resp.Err = &port.GraphError{
			Message: fmt.Sprintf("unexpected status %d", httpResp.StatusCode),
		}
	}
	return resp, nil
}

// decodeGraphError converts the loosely-typed error value from the payload
// into a GraphError. Field absence is tolerated.
func decodeGraphError(raw any) *port.GraphError {
	ge := &port.GraphError{}
	buf, err := json.Marshal(raw)
	if err != nil {
		ge.Message = fmt.Sprint(raw)
		return ge
	}
	if err = json.Unmarshal(buf, ge); err != nil {
		ge.Message = string(buf)
	}
	return ge
}

func excerpt(body []byte) string {
	if len(body) > rawBodyLimit {
		return string(body[:rawBodyLimit])
	}
	return string(body)
}
