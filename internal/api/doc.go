package api

// Package api implements the HTTP client for the translation backend. The
// backend is treated as an opaque service: every call is a single JSON
// request/response exchange gated on the boolean "success" field, with no
// retries and no request cancellation beyond the caller's context.
