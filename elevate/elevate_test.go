package elevate

import (
	"testing"

	"github.com/netclean/netprofile-cleaner/common"
)

func TestQuoteArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"--tui", "--verbose"}, `--tui --verbose`},
		{"empty argument", []string{""}, `""`},
		{"spaces", []string{`C:\Program Files\app.exe`}, `"C:\Program Files\app.exe"`},
		{"embedded quote", []string{`say "hi"`}, `"say \"hi\""`},
		{"backslash before quote", []string{`a\"b`}, `"a\\\"b"`},
		{"trailing backslash", []string{`C:\my dir\`}, `"C:\my dir\\"`},
		{"backslashes without quotes stay", []string{`C:\temp\x`}, `C:\temp\x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteArgs(tt.args); got != tt.want {
				t.Errorf("QuoteArgs(%q) = %s, want %s", tt.args, got, tt.want)
			}
		})
	}
}

func TestRelaunchArgs(t *testing.T) {
	got := RelaunchArgs([]string{"--tui"})
	if len(got) != 2 || got[1] != common.ElevatedFlag {
		t.Fatalf("RelaunchArgs() = %q, want marker appended", got)
	}

	again := RelaunchArgs(got)
	if len(again) != 2 {
		t.Errorf("marker should be added once, got %q", again)
	}
}

func TestHasMarker(t *testing.T) {
	if HasMarker([]string{"--list"}) {
		t.Error("HasMarker should be false without the marker")
	}
	if !HasMarker([]string{"--list", common.ElevatedFlag}) {
		t.Error("HasMarker should find the marker")
	}
}

func TestRelaunchSpec(t *testing.T) {
	spec := relaunchSpec(`C:\Program Files\cleaner.exe`, []string{"--tui", `--export=C:\my dir\out.yaml`})

	if spec.Verb != "runas" {
		t.Errorf("Verb = %q, want runas", spec.Verb)
	}
	if spec.File != `C:\Program Files\cleaner.exe` {
		t.Errorf("File = %q", spec.File)
	}
	if want := `--tui "--export=C:\my dir\out.yaml" ` + common.ElevatedFlag; spec.Args != want {
		t.Errorf("Args = %s, want %s", spec.Args, want)
	}
	if spec.Dir != "" {
		t.Errorf("Dir = %q, want empty so the working directory is inherited", spec.Dir)
	}
}
