package platform

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command is one external program invocation
type Command struct {
	Name string
	Args []string
}

// String returns the command line as it would be typed
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// LookPathFunc resolves a program name to its path
type LookPathFunc func(file string) (string, error)

// RunFunc runs a command, feeding stdin to it when non-empty
type RunFunc func(ctx context.Context, cmd Command, stdin string) error

// runCommand executes cmd and includes its stderr in the returned error
func runCommand(ctx context.Context, cmd Command, stdin string) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if stdin != "" {
		c.Stdin = strings.NewReader(stdin)
	}
	var stderr bytes.Buffer
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", cmd.Name, err, msg)
		}
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

// CurrentOS returns the running OS, reporting Android for Fyne builds that
// identify as linux
func CurrentOS() string {
	if IsAndroid() {
		return OSAndroid
	}
	return runtime.GOOS
}

// IsAndroid checks several signals since Fyne Android apps run as libdist.so
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}
