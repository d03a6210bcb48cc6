package cli

// Package cli holds the cryocare-setup command tree. Without a subcommand the
// desktop window opens; generate and run drive the same session, document
// and pipeline packages from a terminal.
