// Package api provides the MindMate reply service client.
package api

// GJSON paths for extracting values from reply responses
const (
	PathReply  = "reply"
	PathCrisis = "crisis"
)

// maxErrorBody caps how much of an unusable response body is kept for diagnostics
const maxErrorBody = 4096

// maxResponseBody caps how much of a reply response is read
const maxResponseBody = 1 << 20
