package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// command is a program invocation
type command struct {
	name string
	args []string
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	if runtime.GOOS == OSLinux {
		return openFileInManagerLinux(absPath)
	}
	cmd, err := revealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return exec.Command(cmd.name, cmd.args...).Run()
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}
	cmd, err := openCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return exec.Command(cmd.name, cmd.args...).Run()
}

// revealCommand selects the file in the file manager. Linux has no standard
// selection, so the parent directory is opened instead.
func revealCommand(goos, filePath string) (command, error) {
	switch goos {
	case OSDarwin:
		return command{OpenCommand, []string{MacOSSelectFlag, filePath}}, nil
	case OSWindows:
		return command{ExplorerCommand, []string{WindowsSelectParam, filePath}}, nil
	case OSLinux:
		return command{XDGOpenCommand, []string{filepath.Dir(filePath)}}, nil
	default:
		return command{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// openCommand opens the file with its associated application
func openCommand(goos, filePath string) (command, error) {
	switch goos {
	case OSDarwin:
		return command{OpenCommand, []string{filePath}}, nil
	case OSWindows:
		return command{CmdCommand, []string{WindowsCmdFlag, StartCommand, "", filePath}}, nil
	case OSLinux:
		return command{XDGOpenCommand, []string{filePath}}, nil
	default:
		return command{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// openFileInManagerLinux tries xdg-open and then the common file managers
func openFileInManagerLinux(filePath string) error {
	cmd, _ := revealCommand(OSLinux, filePath)
	if err := exec.Command(cmd.name, cmd.args...).Run(); err == nil {
		return nil
	}

	dir := filepath.Dir(filePath)
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}
	return fmt.Errorf("no suitable file manager found")
}

func existingAbsPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}
