package registry

import "errors"

// Sentinel errors for consistent error handling.
var (
	ErrToolNotFound   = errors.New("tool not found")
	ErrDuplicateTool  = errors.New("tool already registered")
	ErrInvalidRequest = errors.New("invalid request")
)

// MCP JSON-RPC 2.0 error codes as per the spec.
const (
	ErrCodeParseError     = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
	ErrCodeToolNotFound   = -32001
)

// ApologyMessage is the fixed string returned in place of any unexpected
// internal failure. No fault detail ever reaches a caller as anything
// other than a formatted string.
const ApologyMessage = "❌ An unexpected error occurred. Please try again later."
