// Package timeouts defines shared timeout constants used across the service.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// FeedbackSettle caps how long a request waits for in-flight audio feedback
// cues before the response is written. Cues still pending are dropped.
const FeedbackSettle = 250 * time.Millisecond
