package netprofile

import "testing"

func sampleEntries(n int) []Entry {
	names := []string{"Network", "Network 2", "Network 3", "Ethernet 2"}
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{Description: names[i%len(names)], Key: string(rune('A' + i)), Location: Profiles}
	}
	return entries
}

func TestChecklist_StartsUnchecked(t *testing.T) {
	c := NewChecklist(sampleEntries(3))

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if c.CheckedCount() != 0 {
		t.Errorf("CheckedCount() = %d, want 0", c.CheckedCount())
	}
	if c.AllChecked() {
		t.Error("AllChecked() should be false for a fresh list")
	}
}

func TestChecklist_Toggle(t *testing.T) {
	c := NewChecklist(sampleEntries(3))

	c.Toggle(1)
	if !c.IsChecked(1) {
		t.Error("Toggle should check an unchecked entry")
	}
	c.Toggle(1)
	if c.IsChecked(1) {
		t.Error("Toggle should uncheck a checked entry")
	}

	// Out of range indexes are ignored.
	c.Toggle(7)
	c.SetChecked(-1, true)
	if c.CheckedCount() != 0 {
		t.Errorf("CheckedCount() = %d, want 0", c.CheckedCount())
	}
}

func TestChecklist_ToggleAll(t *testing.T) {
	tests := []struct {
		name    string
		checked []int
		want    bool
	}{
		{"none checked checks all", nil, true},
		{"some checked checks all", []int{0, 2}, true},
		{"all checked unchecks all", []int{0, 1, 2, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecklist(sampleEntries(4))
			for _, i := range tt.checked {
				c.SetChecked(i, true)
			}

			c.ToggleAll()

			for i := 0; i < c.Len(); i++ {
				if c.IsChecked(i) != tt.want {
					t.Errorf("entry %d checked = %v, want %v", i, c.IsChecked(i), tt.want)
				}
			}
		})
	}
}

func TestChecklist_ToggleAllEmpty(t *testing.T) {
	c := NewChecklist(nil)
	c.ToggleAll()

	if c.Len() != 0 || c.CheckedCount() != 0 || c.AllChecked() {
		t.Error("ToggleAll on an empty list should do nothing")
	}
}

func TestChecklist_CheckedKeepsOrder(t *testing.T) {
	c := NewChecklist(sampleEntries(4))
	c.SetChecked(3, true)
	c.SetChecked(1, true)

	got := c.Checked()
	if len(got) != 2 {
		t.Fatalf("Checked() returned %d entries, want 2", len(got))
	}
	if got[0].Key != "B" || got[1].Key != "D" {
		t.Errorf("Checked() = %v, want display order B, D", got)
	}
}
