package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "output")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCreateDirectoryIfNotExists_FileInTheWay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "output")
	if err := os.WriteFile(file, nil, DefaultFilePermissions); err != nil {
		t.Fatal(err)
	}

	if err := CreateDirectoryIfNotExists(filepath.Join(file, "nested")); err == nil {
		t.Fatal("Expected an error when a parent is a regular file")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "train_config.json")

	if err := WriteFileAtomic(path, []byte(`{"epochs": 100}`)); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if string(data) != `{"epochs": 100}` {
		t.Errorf("Unexpected content: %s", data)
	}

	// Overwrite replaces content
	if err := WriteFileAtomic(path, []byte(`{}`)); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != `{}` {
		t.Errorf("Expected overwritten content, got %s", data)
	}

	// No temporary files are left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only the target file, found %v", names)
	}
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "predict_config.json")

	err := WriteFileAtomic(path, []byte(`{}`))
	if err == nil {
		t.Fatal("Expected error for missing directory, got nil")
	}

	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("No file should exist after a failed write")
	}
}

func TestResolveExecutable_ToolsDirectory(t *testing.T) {
	dir := t.TempDir()
	name := "cryoCARE_train.py"
	exe := filepath.Join(dir, name)
	if err := os.WriteFile(exe, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("Failed to write fake executable: %v", err)
	}

	got, err := ResolveExecutable(dir, name)
	if err != nil {
		t.Fatalf("ResolveExecutable failed: %v", err)
	}
	if got != exe {
		t.Errorf("Expected %s, got %s", exe, got)
	}
}

func TestResolveExecutable_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := ResolveExecutable("", "cryoCARE_predict.py")
	if err == nil {
		t.Fatal("Expected error for missing executable")
	}
	if !strings.Contains(err.Error(), "cryoCARE_predict.py") {
		t.Errorf("Error should name the executable, got: %v", err)
	}
}

func TestResolveExecutable_FallsBackToPath(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("shell script executables are not supported on Windows")
	}

	pathDir := t.TempDir()
	name := "cryoCARE_extract_train_data.py"
	exe := filepath.Join(pathDir, name)
	if err := os.WriteFile(exe, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("Failed to write fake executable: %v", err)
	}
	t.Setenv("PATH", pathDir)

	// Tools directory without the executable
	got, err := ResolveExecutable(t.TempDir(), name)
	if err != nil {
		t.Fatalf("ResolveExecutable failed: %v", err)
	}
	if got != exe {
		t.Errorf("Expected %s, got %s", exe, got)
	}
}

func TestResolveExecutable_EmptyName(t *testing.T) {
	if _, err := ResolveExecutable("", ""); err == nil {
		t.Error("Expected error for empty name")
	}
}

func TestWorkingDirectory(t *testing.T) {
	got, err := WorkingDirectory("/data/project")
	if err != nil || got != "/data/project" {
		t.Errorf("Expected configured dir, got %s, %v", got, err)
	}

	wd, _ := os.Getwd()
	got, err = WorkingDirectory("")
	if err != nil {
		t.Fatalf("WorkingDirectory failed: %v", err)
	}
	if got != wd {
		t.Errorf("Expected %s, got %s", wd, got)
	}
}

func TestOpenFolder_NonExistent(t *testing.T) {
	err := OpenFolder(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("Expected error for non-existent folder, got nil")
	}
	if !strings.Contains(err.Error(), "folder does not exist") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestOpenFolder_File(t *testing.T) {
	f := filepath.Join(t.TempDir(), "a.mrc")
	if err := os.WriteFile(f, nil, 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := OpenFolder(f); err == nil {
		t.Error("Expected error when opening a regular file as folder")
	}
}
