package audio

// Package audio manages synthesized speech artifacts: fetching clip bytes
// from the backend, staging them in a temp directory for playback, and
// exporting them to the user's downloads directory.
