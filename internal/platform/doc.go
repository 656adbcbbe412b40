package platform

// Package platform contains OS integration glue: filesystem helpers,
// default-app playback for audio clips, and well-known directory
// resolution.
