package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/osu-music-export/internal/config"
	"github.com/handiism/osu-music-export/internal/export"
	"github.com/handiism/osu-music-export/internal/model"
	"github.com/handiism/osu-music-export/internal/osu"
	"github.com/handiism/osu-music-export/internal/tui"
	"github.com/mattn/go-isatty"
)

const (
	exitFatal       = 1
	exitUsage       = 2
	exitInterrupted = 130
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF66AA"))
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
	levelStyles = map[model.ProgressLevel]lipgloss.Style{
		model.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC")),
		model.LevelVerbose: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D")),
		model.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
		model.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		model.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
	}
)

func main() {
	// Command line flags
	var (
		configFlag         = flag.String("config", "", "Path to config file")
		envFlag            = flag.String("env", ".env", "Path to .env file (ignored if missing)")
		osuFlag            = flag.String("osu", "", "osu! installation folder (skips registry lookup when valid)")
		outputFlag         = flag.String("output", "", "Output directory (overrides config)")
		noTagsFlag         = flag.Bool("no-tags", false, "Do not write ID3 tags")
		coverFlag          = flag.Bool("cover", false, "Embed the song background as cover art")
		playlistFlag       = flag.Bool("playlist", false, "Create playlist file")
		playlistFormatFlag = flag.String("playlist-format", "", "Playlist format: m3u, pls, wpl, zpl")
		verboseFlag        = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag         = flag.Bool("dry-run", false, "Show what would be exported without copying")
	)

	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintln(out, "osu! Music Export - Copy beatmap audio into a music folder")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintln(out, "  osu-export [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "For interactive mode, use: osu-export-tui")
		fmt.Fprintln(out)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected argument: %s\n\n", flag.Arg(0))
		flag.Usage()
		os.Exit(exitUsage)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(exitFatal)
		}
	}
	if err := settings.ApplyEnv(*envFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(exitUsage)
	}

	// Apply flags
	if *osuFlag != "" {
		settings.OsuPath = *osuFlag
	}
	if *outputFlag != "" {
		settings.OutputPath = *outputFlag
	}
	if *noTagsFlag {
		settings.ModifyTags = false
	}
	if *coverFlag {
		settings.EmbedBackground = true
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}
	if *playlistFormatFlag != "" {
		settings.PlaylistFormat = *playlistFormatFlag
	}

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(exitUsage)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	onProgress := func(event model.ProgressEvent) {
		if event.Level == model.LevelVerbose && !*verboseFlag {
			return
		}
		fmt.Println(levelStyles[event.Level].Render(event.Level.String()) + " " + event.Message)
	}

	fmt.Println(titleStyle.Render("♪ osu! Music Export"))
	fmt.Println(ruleStyle.Render("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"))
	fmt.Println()

	locator := osu.NewLocator(osu.DefaultProbes(settings.OsuPath), newPrompter(), onProgress)
	inst, err := locator.Locate(ctx)
	if err != nil {
		exitOnError(ctx, "Error locating osu!", err)
	}

	manager := export.NewManager(settings, onProgress)

	var results *export.Results
	if *dryRunFlag {
		fmt.Println("\n[Dry run - nothing is copied]")
		fmt.Println()
		results, err = manager.Plan(ctx, inst)
	} else {
		fmt.Printf("\nExporting to %s\n\n", settings.OutputPath)
		results, err = manager.Run(ctx, inst)
	}
	if err != nil {
		if results != nil {
			printSummary(results)
		}
		exitOnError(ctx, "Error during export", err)
	}

	printSummary(results)
}

// newPrompter picks the inline text input on a terminal and plain line
// reading otherwise.
func newPrompter() osu.Prompter {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return tui.NewPathPrompt()
	}
	return osu.NewLinePrompter(os.Stdin, os.Stdout)
}

func printSummary(results *export.Results) {
	succeeded, failed := results.Summary()
	fmt.Println()
	fmt.Println(ruleStyle.Render("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"))
	fmt.Printf("Successfully processed: %d\n", succeeded)
	fmt.Printf("With errors: %d\n", failed)
}

func exitOnError(ctx context.Context, what string, err error) {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, tui.ErrPromptAborted) {
		fmt.Println("\nExport cancelled.")
		os.Exit(exitInterrupted)
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", what, err)
	os.Exit(exitFatal)
}
