package nbalive

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeURLDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultURL},
		{"   ", defaultURL},
		{"http://example.com/feed.json", "http://example.com/feed.json"},
	}

	for _, c := range cases {
		if got := normalizeURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestResolveHTTPClientUsesTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 3*time.Second)
	httpClient, ok := client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", client)
	}
	if httpClient.Timeout != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %s", httpClient.Timeout)
	}
	if unbounded := resolveHTTPClient(nil, 0).(*http.Client); unbounded.Timeout != 0 {
		t.Fatalf("expected no timeout, got %s", unbounded.Timeout)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	if client := resolveHTTPClient(custom, 0); client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestResolveUserAgent(t *testing.T) {
	if got := resolveUserAgent(""); got != defaultUserAgent {
		t.Fatalf("expected default user agent, got %s", got)
	}
	if got := resolveUserAgent("custom"); got != "custom" {
		t.Fatalf("expected custom user agent, got %s", got)
	}
}
