package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc creates a proxy function based on configuration.
// If no proxy URLs are provided, falls back to environment variables.
// Hosts matching an entry in the comma-separated noProxy list bypass the
// configured proxies.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	bypass := parseNoProxy(noProxy)

	return func(req *http.Request) (*url.URL, error) {
		if hostBypassed(req.URL.Hostname(), bypass) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

func parseNoProxy(noProxy string) []string {
	var entries []string
	for _, e := range strings.Split(noProxy, ",") {
		e = strings.TrimSpace(strings.ToLower(e))
		if e != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

// hostBypassed matches a host against no-proxy entries: exact match, or
// suffix match for entries written as domains (".example.com" or
// "example.com" both cover "api.example.com").
func hostBypassed(host string, entries []string) bool {
	host = strings.ToLower(host)
	for _, e := range entries {
		if e == "*" || host == strings.TrimPrefix(e, ".") {
			return true
		}
		if strings.HasSuffix(host, "."+strings.TrimPrefix(e, ".")) {
			return true
		}
	}
	return false
}
