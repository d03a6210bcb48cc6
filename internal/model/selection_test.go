package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestIsAcceptedFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/data/tomo_odd_01.mrc", true},
		{"/data/tomo_even_01.tif", true},
		{"relative.mrc", true},
		{"/data/notes.txt", false},
		{"/data/upper.MRC", false},
		{"/data/stack.tiff", false},
		{"/data/archive.mrc.gz", false},
		{"", false},
	}

	for _, test := range tests {
		if got := IsAcceptedFile(test.path); got != test.expected {
			t.Errorf("IsAcceptedFile(%q) = %v, expected %v", test.path, got, test.expected)
		}
	}
}

func TestFilterAccepted_PreservesOrder(t *testing.T) {
	got := FilterAccepted([]string{"a.mrc", "b.txt", "c.tif"})
	expected := []string{"a.mrc", "c.tif"}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("FilterAccepted = %v, expected %v", got, expected)
	}
}

func TestFilterAccepted_NeverNil(t *testing.T) {
	got := FilterAccepted([]string{"b.txt"})
	if got == nil {
		t.Fatal("FilterAccepted should return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("Expected no accepted files, got %v", got)
	}
}

func TestNewFileSelection(t *testing.T) {
	sel, err := NewFileSelection(SelectionOdd, []string{"a.mrc", "b.txt", "c.tif"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sel.Kind != SelectionOdd {
		t.Errorf("Expected kind odd, got %s", sel.Kind)
	}
	if sel.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", sel.Len())
	}
	if sel.Joined() != "a.mrc, c.tif" {
		t.Errorf("Unexpected joined text: %q", sel.Joined())
	}
}

func TestNewFileSelection_NoValidFiles(t *testing.T) {
	_, err := NewFileSelection(SelectionEven, []string{"b.txt", "d.png"})
	if err == nil {
		t.Fatal("Expected error for selection without accepted files")
	}

	if !errors.Is(err, ErrNoValidFiles) {
		t.Errorf("Expected errors.Is(err, ErrNoValidFiles), got %v", err)
	}

	var nvf *NoValidFilesError
	if !errors.As(err, &nvf) {
		t.Fatalf("Expected *NoValidFilesError, got %T", err)
	}
	if nvf.Kind != SelectionEven {
		t.Errorf("Expected kind even, got %s", nvf.Kind)
	}
	if len(nvf.Rejected) != 2 {
		t.Errorf("Expected 2 rejected files, got %d", len(nvf.Rejected))
	}
}

func TestFileSelection_Clone(t *testing.T) {
	sel := FileSelection{Kind: SelectionOdd, Paths: []string{"a.mrc"}}
	clone := sel.Clone()
	clone.Paths[0] = "changed.mrc"

	if sel.Paths[0] != "a.mrc" {
		t.Error("Clone should not share the Paths slice")
	}
}
