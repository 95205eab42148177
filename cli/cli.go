// Package cli provides command-line interface functionality for Network
// Profile Cleaner. This allows listing, deleting and restoring entries from
// the terminal without launching the GUI application.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/history"
	"github.com/netclean/netprofile-cleaner/netprofile"
)

// CLI represents the command-line interface.
type CLI struct {
	manager *netprofile.Manager
	history *history.Store

	out        io.Writer
	in         io.Reader
	isTerminal func() bool
}

// New creates a new CLI instance. hist may be nil when the history
// database could not be opened.
func New(manager *netprofile.Manager, hist *history.Store) *CLI {
	return &CLI{
		manager: manager,
		history: hist,
		out:     os.Stdout,
		in:      os.Stdin,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// List prints the entries of scope: "profiles", "signatures" or "all".
func (c *CLI) List(scope string) error {
	locations, err := parseScope(scope)
	if err != nil {
		return err
	}

	var entries []netprofile.Entry
	for _, loc := range locations {
		found, err := c.manager.List(loc)
		if err != nil {
			return err
		}
		entries = append(entries, found...)
	}

	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No network entries found.")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DESCRIPTION\tKEY\tLOCATION")
	fmt.Fprintln(w, "-----------\t---\t--------")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Description, e.Key, e.Location)
	}
	return w.Flush()
}

// Delete deletes the entries of location matched by queries. Each query
// is a key, a key prefix or a description. Without assumeYes the user is
// asked to confirm on the terminal.
func (c *CLI) Delete(ctx context.Context, queries []string, location string, assumeYes bool) error {
	if strings.TrimSpace(location) == "" {
		return fmt.Errorf("--delete requires --location profiles or --location signatures")
	}
	loc, err := netprofile.ParseLocation(location)
	if err != nil {
		return err
	}

	entries, err := c.manager.List(loc)
	if err != nil {
		return err
	}
	selected, err := netprofile.FindEntries(entries, queries)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Selected in %s:\n", loc)
	for _, e := range selected {
		fmt.Fprintf(c.out, "  %s  %s\n", e.Key, e.Description)
	}

	if !assumeYes {
		if !c.isTerminal() {
			return errors.New("refusing to delete without confirmation: stdin is not a terminal, pass --yes")
		}
		ok, err := c.confirm(fmt.Sprintf("Delete %d registry entries? This cannot be undone! [y/N]: ", len(selected)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(c.out, "Cancelled.")
			return nil
		}
	}

	result, err := c.manager.Delete(ctx, loc, selected)
	if result != nil {
		if summary := result.Summary(); summary != "" {
			fmt.Fprintln(c.out, summary)
		}
	}
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d of %d entries could not be deleted", len(result.Failed), len(selected))
	}
	return nil
}

// History prints the recorded deletions, newest first.
func (c *CLI) History(ctx context.Context) error {
	if c.history == nil {
		return errors.New("deletion history is not available")
	}

	records, err := c.history.List(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(c.out, "No deletions recorded.")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDELETED\tLOCATION\tDESCRIPTION\tKEY\tSTATUS")
	fmt.Fprintln(w, "--\t-------\t--------\t-----------\t---\t------")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(r.ID), r.DeletedAt.Local().Format("2006-01-02 15:04"),
			r.Location, r.Description, common.ShortKey(r.Key, 16), recordStatus(&r))
	}
	return w.Flush()
}

// Restore recreates the registry entry of a recorded deletion.
func (c *CLI) Restore(ctx context.Context, id string) error {
	if c.history == nil {
		return errors.New("deletion history is not available")
	}

	rec, err := c.history.Restore(ctx, id, c.manager)
	if err != nil {
		if rec != nil {
			return fmt.Errorf("%s (%s): %w", rec.Description, shortID(rec.ID), err)
		}
		return err
	}

	fmt.Fprintf(c.out, "✓ Restored %s in %s\n", rec.Description, rec.Location)
	return nil
}

// Export writes both lists to a YAML file.
func (c *CLI) Export(path string) error {
	report, err := c.manager.ExportFile(path)
	if err != nil {
		return err
	}

	total := 0
	for _, lr := range report.Locations {
		total += len(lr.Entries)
		if lr.Error != "" {
			fmt.Fprintf(c.out, "  Warning: %s: %s\n", lr.Name, lr.Error)
		}
	}
	fmt.Fprintf(c.out, "✓ Exported %d entries to %s\n", total, path)
	return nil
}

func (c *CLI) confirm(prompt string) (bool, error) {
	fmt.Fprint(c.out, prompt)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// parseScope maps a --location value to the locations it covers.
func parseScope(scope string) ([]netprofile.Location, error) {
	s := strings.ToLower(strings.TrimSpace(scope))
	if s == "" || s == "all" {
		return netprofile.Locations(), nil
	}
	loc, err := netprofile.ParseLocation(s)
	if err != nil {
		return nil, err
	}
	return []netprofile.Location{loc}, nil
}

func recordStatus(r *history.Record) string {
	switch {
	case r.RestoredAt != nil:
		return "restored " + r.RestoredAt.Local().Format(time.DateOnly)
	case r.Restorable():
		return "restorable"
	default:
		return "no snapshot"
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`Network Profile Cleaner - Command Line Interface

Usage:
  netprofile-cleaner [OPTIONS]

Options:
  --version               Show version and exit
  --verbose               Enable verbose logging
  --list                  List network entries
  --location WHERE        profiles, signatures or all (default all)
  --delete KEY[,KEY...]   Delete entries by key, key prefix or description
  --yes                   Do not ask for confirmation
  --history               Show recorded deletions
  --restore ID            Restore a recorded deletion
  --export FILE           Write both lists to a YAML file
  --tui                   Start the terminal interface
  --no-elevate            Do not ask for administrator rights at startup
  --help                  Show this help message

Examples:
  netprofile-cleaner --list
  netprofile-cleaner --delete "Network 2" --location profiles
  netprofile-cleaner --delete {5E1B7A2C --location profiles --yes
  netprofile-cleaner --restore 3f2a9c1d

Notes:
  - Deleting and restoring require an elevated prompt
  - Run without options to launch the GUI`)
}
