// Package main provides the entry point for Network Profile Cleaner.
// Network Profile Cleaner lists the network entries Windows keeps under
// the NetworkList registry key and deletes the stale ones, so a connection
// that was renamed "Network 7" can get its plain name back.
//
// Features:
//   - Profiles and Signatures lists side by side with per-entry check boxes
//   - Deletion history with value snapshots and restore
//   - GTK4 desktop window, terminal interface and scriptable CLI
//   - Re-launch through UAC when administrator rights are missing
//
// Usage:
//
//	netprofile-cleaner [options]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/netclean/netprofile-cleaner/cli"
	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/config"
	"github.com/netclean/netprofile-cleaner/elevate"
	"github.com/netclean/netprofile-cleaner/history"
	"github.com/netclean/netprofile-cleaner/netprofile"
	"github.com/netclean/netprofile-cleaner/tui"
	"github.com/netclean/netprofile-cleaner/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = common.Version
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// GUI/General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")
	runTUI      = flag.Bool("tui", false, "Start the terminal interface")
	noElevate   = flag.Bool("no-elevate", false, "Do not ask for administrator rights at startup")
	_           = flag.Bool(strings.TrimPrefix(common.ElevatedFlag, "--"), false, "Set on the elevated re-launch")

	// CLI flags
	listEntries   = flag.Bool("list", false, "List network entries")
	location      = flag.String("location", "", "Registry location: profiles, signatures or all")
	deleteEntries = flag.String("delete", "", "Comma separated keys, key prefixes or descriptions to delete")
	assumeYes     = flag.Bool("yes", false, "Do not ask for confirmation")
	showHistory   = flag.Bool("history", false, "Show recorded deletions")
	restoreID     = flag.String("restore", "", "Restore a recorded deletion by ID or ID prefix")
	exportPath    = flag.String("export", "", "Write both lists to a YAML file")
)

func main() {
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("%s v%s (%s)\n", common.AppName, appVersion, common.ReleaseDate)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  true,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	if isCLIMode() {
		os.Exit(runCLI())
	}

	// The desktop and terminal interfaces ask for administrator rights
	// up front, as deleting needs them anyway.
	if !*noElevate && !elevate.IsElevated() && !elevate.HasMarker(os.Args[1:]) {
		if err := elevate.Relaunch(os.Args[1:]); err != nil {
			common.LogWarn("Could not re-launch as administrator: %v", err)
		} else {
			os.Exit(0)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	manager, hist := newManager(cfg.BackupBeforeDelete, cfg.HistoryLimit)
	if hist != nil {
		defer hist.Close()
	}

	if *runTUI {
		if err := tui.Run(manager); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	app := ui.NewApplication(common.AppID, appVersion, manager, hist, cfg)
	// Our own flags are not GApplication options.
	exitCode := app.Run(os.Args[:1])

	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	os.Exit(exitCode)
}

func isCLIMode() bool {
	return *listEntries || *deleteEntries != "" || *showHistory || *restoreID != "" || *exportPath != ""
}

// newManager builds the registry manager and opens the history database.
// The history is optional: on failure deletions are simply not recorded.
func newManager(backup bool, historyLimit int) (*netprofile.Manager, *history.Store) {
	manager := netprofile.NewManager(netprofile.NewRegistryStore())

	hist, err := history.OpenDefault(historyLimit)
	if err != nil {
		common.LogWarn("Deletion history unavailable: %v", err)
		return manager, nil
	}
	if backup {
		manager.SetRecorder(hist)
	}
	return manager, hist
}

// runCLI handles command-line interface operations and returns the exit code.
func runCLI() int {
	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	manager, hist := newManager(cfg.BackupBeforeDelete, cfg.HistoryLimit)
	if hist != nil {
		defer hist.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cliApp := cli.New(manager, hist)

	var cliErr error
	switch {
	case *listEntries:
		cliErr = cliApp.List(*location)
	case *deleteEntries != "":
		cliErr = cliApp.Delete(ctx, splitList(*deleteEntries), *location, *assumeYes)
	case *showHistory:
		cliErr = cliApp.History(ctx)
	case *restoreID != "":
		cliErr = cliApp.Restore(ctx, *restoreID)
	case *exportPath != "":
		cliErr = cliApp.Export(*exportPath)
	}

	if cliErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
		return 1
	}
	return 0
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
