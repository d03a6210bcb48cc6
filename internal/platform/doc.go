package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, atomic writes, executable lookup and OS folder reveal.
