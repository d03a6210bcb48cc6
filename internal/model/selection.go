package model

import (
	"errors"
	"fmt"
	"strings"
)

// SelectionKind tags a file selection as odd or even frames
type SelectionKind string

const (
	SelectionOdd  SelectionKind = "odd"
	SelectionEven SelectionKind = "even"
)

// AcceptedExtensions are the input file suffixes kept at selection time.
// Matching is case-sensitive.
var AcceptedExtensions = []string{".mrc", ".tif"}

// ErrNoValidFiles is matched by NoValidFilesError via errors.Is
var ErrNoValidFiles = errors.New("no valid files selected")

// NoValidFilesError is returned when none of the picked files has an accepted extension
type NoValidFilesError struct {
	Kind     SelectionKind
	Rejected []string
}

func (e *NoValidFilesError) Error() string {
	return fmt.Sprintf("%s: %d %s file(s) rejected (accepted: %s)",
		ErrNoValidFiles, len(e.Rejected), e.Kind, strings.Join(AcceptedExtensions, ", "))
}

// Is lets errors.Is(err, ErrNoValidFiles) match
func (e *NoValidFilesError) Is(target error) bool {
	return target == ErrNoValidFiles
}

// IsAcceptedFile reports whether path ends in one of AcceptedExtensions
func IsAcceptedFile(path string) bool {
	for _, ext := range AcceptedExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// FilterAccepted returns the accepted paths in their original order.
// The result is never nil.
func FilterAccepted(paths []string) []string {
	accepted := make([]string, 0, len(paths))
	for _, p := range paths {
		if IsAcceptedFile(p) {
			accepted = append(accepted, p)
		}
	}
	return accepted
}

// FileSelection is an ordered set of input files of one kind
type FileSelection struct {
	Kind  SelectionKind
	Paths []string
}

// NewFileSelection filters paths and builds a selection, or returns
// a NoValidFilesError when nothing survives the filter.
func NewFileSelection(kind SelectionKind, paths []string) (FileSelection, error) {
	accepted := FilterAccepted(paths)
	if len(accepted) == 0 {
		return FileSelection{}, &NoValidFilesError{Kind: kind, Rejected: append([]string(nil), paths...)}
	}
	return FileSelection{Kind: kind, Paths: accepted}, nil
}

// Len returns the number of files in the selection
func (fs FileSelection) Len() int {
	return len(fs.Paths)
}

// Clone returns a copy whose Paths slice is not shared
func (fs FileSelection) Clone() FileSelection {
	paths := make([]string, len(fs.Paths))
	copy(paths, fs.Paths)
	return FileSelection{Kind: fs.Kind, Paths: paths}
}

// Joined returns the paths as a comma-separated list for status labels
func (fs FileSelection) Joined() string {
	return strings.Join(fs.Paths, ", ")
}
