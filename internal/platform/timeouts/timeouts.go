// Package timeouts defines shared timeout constants used by the web service.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// OAuthExchange caps the authorization-code exchange with the identity
// provider during the sign-in callback.
const OAuthExchange = 10 * time.Second

// Idle closes keep-alive connections that sit unused.
const Idle = 60 * time.Second
