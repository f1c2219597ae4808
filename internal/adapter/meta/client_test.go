package meta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"leadlaunch/internal/config/configs"
	"leadlaunch/internal/core/port"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	base, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return NewClient(configs.Meta{
		BaseURL:      *base,
		GraphVersion: "v21.0",
		Timeout:      5 * time.Second,
	})
}

func TestPostFormSendsTokenAndVersionedPath(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method %s", r.Method)
		}
		if r.URL.Path != "/v21.0/act_1/campaigns" {
			t.Errorf("path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostForm.Get("access_token"); got != "tok" {
			t.Errorf("access_token %q", got)
		}
		if got := r.PostForm.Get("name"); got != "Acme - API - 2025-06-15" {
			t.Errorf("name %q", got)
		}
		w.Write([]byte(`{"id":"c1"}`))
	})

	resp, err := c.PostForm(context.Background(), "act_1/campaigns", url.Values{
		"name": {"Acme - API - 2025-06-15"},
	}, "tok")
	if err != nil {
		t.Fatalf("PostForm error: %v", err)
	}
	if !resp.OK() {
		t.Fatalf("expected OK, got %+v", resp)
	}
	if resp.ID() != "c1" {
		t.Fatalf("expected id c1, got %q", resp.ID())
	}
}

func TestErrorPayloadDecoded(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"error_subcode":460,"fbtrace_id":"AbCd"}}`))
	})

	resp, err := c.Get(context.Background(), "c1/insights", nil, "stale")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if resp.OK() {
		t.Fatal("expected error response")
	}
	if resp.Err == nil || resp.Err.Code != 190 || resp.Err.Type != "OAuthException" {
		t.Fatalf("unexpected graph error: %+v", resp.Err)
	}
	if resp.Err.Subcode != 460 || resp.Err.FBTraceID != "AbCd" {
		t.Fatalf("unexpected graph error details: %+v", resp.Err)
	}
	if !resp.ExpiredToken() {
		t.Fatal("code 190 should read as an expired token")
	}
}

// TestUnparseableBodySynthesizesError covers proxies and outage pages that
// answer with HTML instead of JSON.
func TestUnparseableBodySynthesizesError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>" + strings.Repeat("x", 1000) + "</html>"))
	})

	resp, err := c.Get(context.Background(), "c1/insights", nil, "tok")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if resp.Err == nil || resp.Err.Type != port.ParseErrorType {
		t.Fatalf("expected synthesized parse error, got %+v", resp.Err)
	}
	if len(resp.RawBody) != 500 {
		t.Fatalf("expected body excerpt capped at 500, got %d", len(resp.RawBody))
	}
}

func TestGetAppendsTokenToQuery(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("access_token"); got != "tok" {
			t.Errorf("access_token %q", got)
		}
		if got := q.Get("date_preset"); got != "maximum" {
			t.Errorf("date_preset %q", got)
		}
		w.Write([]byte(`{"data":[]}`))
	})

	resp, err := c.Get(context.Background(), "c1/insights", url.Values{"date_preset": {"maximum"}}, "tok")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !resp.OK() {
		t.Fatalf("expected OK, got %+v", resp)
	}
}

func TestDelete(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method %s", r.Method)
		}
		if r.URL.Path != "/v21.0/c1" {
			t.Errorf("path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("access_token"); got != "tok" {
			t.Errorf("access_token %q", got)
		}
		w.Write([]byte(`{"success":true}`))
	})

	resp, err := c.Delete(context.Background(), "c1", "tok")
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if !resp.OK() {
		t.Fatalf("expected OK, got %+v", resp)
	}
}
