package util

import (
	"net/http"
	"net/url"
	"testing"
)

func mustRequest(t *testing.T, rawURL string) *http.Request {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("parse URL: %v", err)
	}
	return &http.Request{URL: u}
}

func TestNewProxyFuncConfigured(t *testing.T) {
	proxyFunc := NewProxyFunc("http://proxy:3128", "http://sproxy:3128", "")

	u, err := proxyFunc(mustRequest(t, "http://api.openai.com/v1"))
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u == nil || u.Host != "proxy:3128" {
		t.Errorf("Expected http proxy, got %v", u)
	}

	u, err = proxyFunc(mustRequest(t, "https://api.openai.com/v1"))
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u == nil || u.Host != "sproxy:3128" {
		t.Errorf("Expected https proxy, got %v", u)
	}
}

func TestNewProxyFuncNoProxyList(t *testing.T) {
	proxyFunc := NewProxyFunc("http://proxy:3128", "", "localhost, .internal.example.com")

	cases := []struct {
		url    string
		bypass bool
	}{
		{"http://localhost:11434/api/generate", true},
		{"http://ollama.internal.example.com/api/generate", true},
		{"http://api.openai.com/v1", false},
	}

	for _, tc := range cases {
		u, err := proxyFunc(mustRequest(t, tc.url))
		if err != nil {
			t.Fatalf("proxy func failed for %s: %v", tc.url, err)
		}
		if tc.bypass && u != nil {
			t.Errorf("Expected %s to bypass proxy, got %v", tc.url, u)
		}
		if !tc.bypass && u == nil {
			t.Errorf("Expected %s to use proxy", tc.url)
		}
	}
}

func TestNewProxyFuncUnconfigured(t *testing.T) {
	// With nothing configured we defer to the environment
	proxyFunc := NewProxyFunc("", "", "")
	if proxyFunc == nil {
		t.Fatal("expected proxy func")
	}
}
