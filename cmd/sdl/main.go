package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ytget/social-downloader/internal/api"
	"github.com/ytget/social-downloader/internal/config"
	"github.com/ytget/social-downloader/internal/download"
	"github.com/ytget/social-downloader/internal/metrics"
	"github.com/ytget/social-downloader/internal/model"
	"github.com/ytget/social-downloader/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// options are the parsed command-line flags
type options struct {
	platform string
	envFile  string
	baseURL  string
	copyIdx  int
	openIdx  int
	verbose  bool
	input    string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if !opts.verbose {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("sdl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.platform, "platform", string(model.PlatformAuto), "platform tag, or auto to detect it from the URL")
	fs.StringVar(&opts.envFile, "env", config.DefaultEnvFile, "path to a .env file")
	fs.StringVar(&opts.baseURL, "api", "", "backend base URL (overrides "+config.EnvAPIBaseURL+")")
	fs.IntVar(&opts.copyIdx, "copy", 0, "copy the link of entry N (1-based) to the clipboard")
	fs.IntVar(&opts.openIdx, "open", 0, "open the link of entry N (1-based) with the system handler")
	fs.BoolVar(&opts.verbose, "v", false, "log requests to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "sdl %s\n\nUsage: sdl [flags] URL\n\n", version)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errors.New("exactly one URL is required")
	}
	opts.input = fs.Arg(0)

	tag := model.PlatformTag(strings.ToLower(opts.platform))
	if tag != model.PlatformAuto && !tag.IsConcrete() {
		return opts, fmt.Errorf("unknown platform %q", opts.platform)
	}
	opts.platform = string(tag)

	return opts, nil
}

func run(ctx context.Context, opts options, out io.Writer) error {
	env, err := config.LoadEnv(opts.envFile)
	if err != nil {
		return err
	}

	baseURL := env.BaseURL()
	if opts.baseURL != "" {
		baseURL = config.NormalizeBaseURL(opts.baseURL)
	}

	client := api.NewClient(api.ClientConfig{BaseURL: baseURL})
	controller := download.NewController(client)

	registry := prometheus.NewRegistry()
	controller.SetObserver(metrics.NewRecorder(registry))
	if env.MetricsAddr != "" {
		go metrics.Serve(ctx, metrics.NewServer(env.MetricsAddr, registry))
	}

	result, err := controller.Submit(ctx, opts.input, model.PlatformTag(opts.platform))
	if err != nil {
		return errors.New(displayMessage(err, controller.State()))
	}

	view := download.BuildResultView(result)
	printResult(out, view)

	if opts.copyIdx > 0 {
		link, err := entryLink(view, opts.copyIdx)
		if err != nil {
			return err
		}
		if err := platform.NewCommandClipboard().WriteText(ctx, link); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		fmt.Fprintln(out, download.CopiedLabel)
	}

	if opts.openIdx > 0 {
		link, err := entryLink(view, opts.openIdx)
		if err != nil {
			return err
		}
		if err := platform.NewOpener().OpenURL(ctx, link); err != nil {
			return err
		}
	}

	return nil
}

// displayMessage prefers the message the controller rendered
func displayMessage(err error, state model.ViewState) string {
	if state.ShowsError() && state.Message != "" {
		return state.Message
	}
	return download.ErrorMessage(err)
}

// entryLink returns the direct link of the 1-based entry n
func entryLink(view download.ResultView, n int) (string, error) {
	if n < 1 || n > len(view.Entries) {
		return "", fmt.Errorf("entry %d does not exist (result has %d)", n, len(view.Entries))
	}
	entry := view.Entries[n-1]
	if !entry.HasActions() {
		return "", fmt.Errorf("entry %d has no direct link", n)
	}
	return entry.URL, nil
}

func printResult(out io.Writer, view download.ResultView) {
	fmt.Fprintln(out, view.Title)
	if view.Meta != "" {
		fmt.Fprintln(out, view.Meta)
	}

	for _, entry := range view.Entries {
		fmt.Fprintf(out, "\n[%d]", entry.Index+1)
		if entry.Title != "" {
			fmt.Fprintf(out, " %s", entry.Title)
		}
		fmt.Fprintln(out)
		if entry.DurationLine != "" {
			fmt.Fprintf(out, "    %s\n", entry.DurationLine)
		}
		if entry.Thumbnail != "" {
			fmt.Fprintf(out, "    Thumbnail: %s\n", entry.Thumbnail)
		}
		if entry.HasActions() {
			fmt.Fprintf(out, "    %s: %s\n", entry.ActionLabel, entry.URL)
		}
	}
}
