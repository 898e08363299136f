package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request made by an [HTTPClient].
const UserAgent = "configgen"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://127.0.0.1:8500/v1/kv/Orders")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance that
// identifies itself as [UserAgent] and asks for JSON responses.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
