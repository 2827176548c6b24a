package api

import "time"

// DefaultBaseURL is used when neither config nor flags name a server.
const DefaultBaseURL = "http://localhost:3000"

// DefaultTimeout bounds a single HTTP attempt.
const DefaultTimeout = 10 * time.Second

// NewDefaultClient builds a client pointed at the default server URL.
func NewDefaultClient(apiKey string, opts ...Option) *Client {
	return NewClient(DefaultBaseURL, apiKey, opts...)
}
