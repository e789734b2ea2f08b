package platform

import (
	"context"
	"fmt"
	"log"
	"os/exec"
)

func defaultLookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Commands for handing a link to the system, tried in order
var openCommands = map[string][]Command{
	OSDarwin:  {{Name: "open"}},
	OSWindows: {{Name: "rundll32", Args: []string{"url.dll,FileProtocolHandler"}}, {Name: "cmd", Args: []string{"/c", "start", ""}}},
	OSLinux:   {{Name: "xdg-open"}, {Name: "gio", Args: []string{"open"}}, {Name: "sensible-browser"}},
	OSAndroid: {{Name: "am", Args: []string{"start", "-a", "android.intent.action.VIEW", "-d"}}, {Name: "termux-open-url"}},
}

// OpenCommands returns the candidate programs for opening links on goos
func OpenCommands(goos string) []Command {
	return openCommands[goos]
}

// Opener opens links with the system's default handler
type Opener struct {
	goos     string
	lookPath LookPathFunc
	run      RunFunc
}

// NewOpener creates an opener for the running OS
func NewOpener() *Opener {
	return NewOpenerFor(CurrentOS(), nil, nil)
}

// NewOpenerFor creates an opener for goos with injectable helpers
func NewOpenerFor(goos string, lookPath LookPathFunc, run RunFunc) *Opener {
	if lookPath == nil {
		lookPath = defaultLookPath
	}
	if run == nil {
		run = runCommand
	}
	return &Opener{goos: goos, lookPath: lookPath, run: run}
}

// OpenURL passes link to the first handler that accepts it
func (o *Opener) OpenURL(ctx context.Context, link string) error {
	commands := OpenCommands(o.goos)
	if len(commands) == 0 {
		return fmt.Errorf("unsupported operating system: %s", o.goos)
	}

	var lastErr error
	for _, base := range commands {
		if _, err := o.lookPath(base.Name); err != nil {
			lastErr = err
			continue
		}

		cmd := Command{Name: base.Name, Args: append(append([]string{}, base.Args...), link)}
		if err := o.run(ctx, cmd, ""); err != nil {
			log.Printf("Open with %s failed: %v", base.Name, err)
			lastErr = err
			continue
		}
		return nil
	}

	return fmt.Errorf("failed to open %s: %w", link, lastErr)
}
