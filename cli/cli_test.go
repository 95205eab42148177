package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/history"
	"github.com/netclean/netprofile-cleaner/netprofile"
	"github.com/netclean/netprofile-cleaner/netprofile/regtest"
)

type testCLI struct {
	*CLI
	store *regtest.Store
	out   *bytes.Buffer
}

func newTestCLI(t *testing.T, input string, terminal bool) *testCLI {
	t.Helper()

	store := regtest.NewStore()
	store.Add(netprofile.Profiles, "{5E1B7A2C-0001}", "Network")
	store.Add(netprofile.Profiles, "{5E1B7A2C-0002}", "Network 2")
	store.Add(netprofile.Profiles, "{90AB0000-0003}", "Ethernet 3")
	store.Add(netprofile.Signatures, "010103000F0000F0", "Network 2")

	hist, err := history.Open(filepath.Join(t.TempDir(), common.HistoryFileName), 0)
	if err != nil {
		t.Fatalf("history.Open() error = %v", err)
	}
	t.Cleanup(func() { hist.Close() })

	manager := netprofile.NewManager(store)
	manager.SetRecorder(hist)

	out := &bytes.Buffer{}
	c := New(manager, hist)
	c.out = out
	c.in = strings.NewReader(input)
	c.isTerminal = func() bool { return terminal }

	return &testCLI{CLI: c, store: store, out: out}
}

func TestCLI_List(t *testing.T) {
	c := newTestCLI(t, "", false)

	if err := c.List("all"); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	output := c.out.String()
	for _, want := range []string{"DESCRIPTION", "Ethernet 3", "{90AB0000-0003}", "Signatures"} {
		if !strings.Contains(output, want) {
			t.Errorf("List output missing %q:\n%s", want, output)
		}
	}
}

func TestCLI_ListSingleLocation(t *testing.T) {
	c := newTestCLI(t, "", false)

	if err := c.List("signatures"); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if strings.Contains(c.out.String(), "Ethernet 3") {
		t.Error("List(signatures) should not print Profiles entries")
	}

	if err := c.List("everything"); !errors.Is(err, common.ErrUnknownLocation) {
		t.Errorf("List(everything) error = %v, want ErrUnknownLocation", err)
	}
}

func TestCLI_DeleteWithYes(t *testing.T) {
	c := newTestCLI(t, "", false)

	err := c.Delete(context.Background(), []string{"Network 2", "90ab"}, "profiles", true)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if c.store.Has(netprofile.Profiles, "{5E1B7A2C-0002}") || c.store.Has(netprofile.Profiles, "{90AB0000-0003}") {
		t.Error("matched entries should be deleted")
	}
	if !c.store.Has(netprofile.Profiles, "{5E1B7A2C-0001}") {
		t.Error("unmatched entry should remain")
	}
	if !c.store.Has(netprofile.Signatures, "010103000F0000F0") {
		t.Error("entries in the other location should remain")
	}
	if !strings.Contains(c.out.String(), "Deleted: Network 2, Ethernet 3") {
		t.Errorf("output missing summary:\n%s", c.out.String())
	}

	records, err := c.history.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("history records = %d, want 2", len(records))
	}
}

func TestCLI_DeleteRequiresLocation(t *testing.T) {
	c := newTestCLI(t, "", false)

	if err := c.Delete(context.Background(), []string{"Network"}, "", true); err == nil {
		t.Error("Delete() without a location should fail")
	}
}

func TestCLI_DeleteRefusesNonInteractive(t *testing.T) {
	c := newTestCLI(t, "y\n", false)

	err := c.Delete(context.Background(), []string{"Network"}, "profiles", false)
	if err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("Delete() error = %v, want refusal mentioning --yes", err)
	}
	if !c.store.Has(netprofile.Profiles, "{5E1B7A2C-0001}") {
		t.Error("nothing should be deleted without confirmation")
	}
}

func TestCLI_DeletePrompt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		deleted bool
	}{
		{"yes", "y\n", true},
		{"full yes", "YES\n", true},
		{"no", "n\n", false},
		{"empty answer", "\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(t, tt.input, true)

			if err := c.Delete(context.Background(), []string{"Ethernet 3"}, "profiles", false); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if !strings.Contains(c.out.String(), "Delete 1 registry entries? This cannot be undone!") {
				t.Errorf("prompt not shown:\n%s", c.out.String())
			}
			if got := !c.store.Has(netprofile.Profiles, "{90AB0000-0003}"); got != tt.deleted {
				t.Errorf("deleted = %v, want %v", got, tt.deleted)
			}
		})
	}
}

func TestCLI_DeleteUnknownEntry(t *testing.T) {
	c := newTestCLI(t, "", false)

	err := c.Delete(context.Background(), []string{"Wi-Fi"}, "profiles", true)
	if !errors.Is(err, common.ErrEntryNotFound) {
		t.Errorf("Delete() error = %v, want ErrEntryNotFound", err)
	}
}

func TestCLI_DeleteBracesOnlyMatchesNothing(t *testing.T) {
	c := newTestCLI(t, "", false)

	for _, q := range []string{"{}", "{", "}"} {
		err := c.Delete(context.Background(), []string{q}, "profiles", true)
		if !errors.Is(err, common.ErrEntryNotFound) {
			t.Errorf("Delete(%q) error = %v, want ErrEntryNotFound", q, err)
		}
	}
	for _, key := range []string{"{5E1B7A2C-0001}", "{5E1B7A2C-0002}", "{90AB0000-0003}"} {
		if !c.store.Has(netprofile.Profiles, key) {
			t.Errorf("%s should remain", key)
		}
	}
}

type cancelAfterRecord struct {
	cancel context.CancelFunc
}

func (r cancelAfterRecord) Record(ctx context.Context, d netprofile.Deletion) error {
	r.cancel()
	return nil
}

func TestCLI_DeleteCancelledReportsPartialResult(t *testing.T) {
	c := newTestCLI(t, "", false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.manager.SetRecorder(cancelAfterRecord{cancel: cancel})

	err := c.Delete(ctx, []string{"Network", "Ethernet 3"}, "profiles", true)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Delete() error = %v, want context.Canceled", err)
	}
	if !strings.Contains(c.out.String(), "Deleted: Network") {
		t.Errorf("output should report the entries deleted before cancellation:\n%s", c.out.String())
	}
	if !c.store.Has(netprofile.Profiles, "{90AB0000-0003}") {
		t.Error("entries after the cancellation should remain")
	}
}

func TestCLI_DeleteReportsFailures(t *testing.T) {
	c := newTestCLI(t, "", false)
	c.store.FailDelete(netprofile.Profiles, "{5E1B7A2C-0001}", errors.New("Access is denied."))

	err := c.Delete(context.Background(), []string{"5e1b7a2c"}, "profiles", true)
	if err == nil {
		t.Fatal("Delete() should fail when an entry could not be deleted")
	}
	output := c.out.String()
	if !strings.Contains(output, "Failed:\nNetwork: Access is denied.") {
		t.Errorf("output missing failure report:\n%s", output)
	}
}

func TestCLI_HistoryAndRestore(t *testing.T) {
	c := newTestCLI(t, "", false)
	ctx := context.Background()

	if err := c.Delete(ctx, []string{"Ethernet 3"}, "profiles", true); err != nil {
		t.Fatal(err)
	}

	c.out.Reset()
	if err := c.History(ctx); err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if !strings.Contains(c.out.String(), "Ethernet 3") || !strings.Contains(c.out.String(), "restorable") {
		t.Errorf("History output:\n%s", c.out.String())
	}

	records, _ := c.history.List(ctx)
	c.out.Reset()
	if err := c.Restore(ctx, records[0].ID[:8]); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !c.store.Has(netprofile.Profiles, "{90AB0000-0003}") {
		t.Error("restored entry should exist again")
	}

	if err := c.Restore(ctx, records[0].ID); !errors.Is(err, common.ErrAlreadyRestored) {
		t.Errorf("second Restore() error = %v, want ErrAlreadyRestored", err)
	}
}

func TestCLI_HistoryEmpty(t *testing.T) {
	c := newTestCLI(t, "", false)

	if err := c.History(context.Background()); err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if !strings.Contains(c.out.String(), "No deletions recorded.") {
		t.Errorf("History output:\n%s", c.out.String())
	}
}

func TestCLI_Export(t *testing.T) {
	c := newTestCLI(t, "", false)
	path := filepath.Join(t.TempDir(), "networks.yaml")

	if err := c.Export(path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(c.out.String(), "Exported 4 entries") {
		t.Errorf("Export output:\n%s", c.out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Ethernet 3") {
		t.Error("export file should contain the entries")
	}
}
