package pipeline

// Package pipeline runs the cryoCARE pipeline programs. A run resolves the
// stage executable, invokes it with --conf and blocks until it exits,
// capturing the exit code and standard error.
