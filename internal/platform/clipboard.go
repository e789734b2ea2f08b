package platform

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// ErrNoClipboardCommand is returned when no clipboard program is installed
var ErrNoClipboardCommand = errors.New("no clipboard command available")

// Clipboard commands per OS, in order of preference
var clipboardCommands = map[string][]Command{
	OSDarwin:  {{Name: "pbcopy"}},
	OSWindows: {{Name: "clip"}},
	OSLinux: {
		{Name: "wl-copy"},
		{Name: "xclip", Args: []string{"-selection", "clipboard"}},
		{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	},
	OSAndroid: {{Name: "termux-clipboard-set"}},
}

// ClipboardCommands returns the candidate clipboard programs for goos
func ClipboardCommands(goos string) []Command {
	return clipboardCommands[goos]
}

// CommandClipboard writes text by piping it into an OS clipboard program
type CommandClipboard struct {
	commands []Command
	lookPath LookPathFunc
	run      RunFunc
}

// NewCommandClipboard creates a clipboard for the running OS
func NewCommandClipboard() *CommandClipboard {
	return NewCommandClipboardFor(CurrentOS(), nil, nil)
}

// NewCommandClipboardFor creates a clipboard for goos. Nil functions default
// to exec.LookPath and running the real program.
func NewCommandClipboardFor(goos string, lookPath LookPathFunc, run RunFunc) *CommandClipboard {
	if lookPath == nil {
		lookPath = defaultLookPath
	}
	if run == nil {
		run = runCommand
	}
	return &CommandClipboard{
		commands: ClipboardCommands(goos),
		lookPath: lookPath,
		run:      run,
	}
}

// Available reports whether at least one clipboard program is installed
func (c *CommandClipboard) Available() bool {
	for _, cmd := range c.commands {
		if _, err := c.lookPath(cmd.Name); err == nil {
			return true
		}
	}
	return false
}

// WriteText tries each installed program in turn until one succeeds
func (c *CommandClipboard) WriteText(ctx context.Context, text string) error {
	var errs []error
	for _, cmd := range c.commands {
		if _, err := c.lookPath(cmd.Name); err != nil {
			continue
		}
		if err := c.run(ctx, cmd, text); err != nil {
			log.Printf("Clipboard command %q failed: %v", cmd.String(), err)
			errs = append(errs, err)
			continue
		}
		return nil
	}

	if len(errs) == 0 {
		return ErrNoClipboardCommand
	}
	return fmt.Errorf("clipboard commands failed: %w", errors.Join(errs...))
}
