package platform

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	// Should end with "Downloads"
	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.mp3")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}

	if err := OpenFileWithDefaultApp(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestRevealCommand(t *testing.T) {
	file := "/music/song.mp3"
	tests := []struct {
		goos     string
		expected command
	}{
		{OSDarwin, command{OpenCommand, []string{MacOSSelectFlag, file}}},
		{OSWindows, command{ExplorerCommand, []string{WindowsSelectParam, file}}},
		{OSLinux, command{XDGOpenCommand, []string{filepath.Dir(file)}}},
	}

	for _, test := range tests {
		got, err := revealCommand(test.goos, file)
		if err != nil {
			t.Fatalf("revealCommand(%s) failed: %v", test.goos, err)
		}
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("revealCommand(%s) = %+v, expected %+v", test.goos, got, test.expected)
		}
	}

	if _, err := revealCommand("plan9", file); err == nil {
		t.Error("Expected error for unsupported OS")
	}
}

func TestOpenCommand(t *testing.T) {
	file := "/music/song.mp3"
	tests := []struct {
		goos     string
		expected command
	}{
		{OSDarwin, command{OpenCommand, []string{file}}},
		{OSWindows, command{CmdCommand, []string{WindowsCmdFlag, StartCommand, "", file}}},
		{OSLinux, command{XDGOpenCommand, []string{file}}},
	}

	for _, test := range tests {
		got, err := openCommand(test.goos, file)
		if err != nil {
			t.Fatalf("openCommand(%s) failed: %v", test.goos, err)
		}
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("openCommand(%s) = %+v, expected %+v", test.goos, got, test.expected)
		}
	}

	if _, err := openCommand("js", file); err == nil {
		t.Error("Expected error for unsupported OS")
	}
}
