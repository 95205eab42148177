package netprofile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/netclean/netprofile-cleaner/netprofile"
	"github.com/netclean/netprofile-cleaner/netprofile/regtest"
)

func TestManager_ExportFile(t *testing.T) {
	store := regtest.NewStore()
	store.Add(netprofile.Profiles, "{AAA-1}", "Network 2")
	// Signatures root missing: its read error is kept in the report.
	m := netprofile.NewManager(store)
	m.SetClock(func() time.Time { return time.Date(2025, 3, 24, 8, 0, 0, 0, time.UTC) })

	path := filepath.Join(t.TempDir(), "networks.yaml")
	report, err := m.ExportFile(path)
	if err != nil {
		t.Fatalf("ExportFile() error = %v", err)
	}
	if len(report.Locations) != 2 {
		t.Fatalf("report has %d locations, want 2", len(report.Locations))
	}
	if report.Locations[1].Error == "" {
		t.Error("unreadable location should carry an error")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{"generated_at: 2025-03-24T08:00:00Z", "name: Profiles", "description: Network 2", "location: profiles"} {
		if !strings.Contains(text, want) {
			t.Errorf("export missing %q:\n%s", want, text)
		}
	}

	var decoded struct {
		Locations []struct {
			Name    string `yaml:"name"`
			Entries []struct {
				Key string `yaml:"key"`
			} `yaml:"entries"`
		} `yaml:"locations"`
	}
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid YAML: %v", err)
	}
	if got := decoded.Locations[0].Entries[0].Key; got != "{AAA-1}" {
		t.Errorf("exported key = %q, want {AAA-1}", got)
	}
}
