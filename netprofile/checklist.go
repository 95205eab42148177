package netprofile

// Checklist is an ordered list of entries with a checked flag per entry.
// It is rebuilt from the registry on every refresh.
type Checklist struct {
	entries []Entry
	checked []bool
}

// NewChecklist creates a checklist with every entry unchecked.
func NewChecklist(entries []Entry) *Checklist {
	return &Checklist{
		entries: entries,
		checked: make([]bool, len(entries)),
	}
}

// Len returns the number of entries.
func (c *Checklist) Len() int {
	return len(c.entries)
}

// Entries returns the entries in display order.
func (c *Checklist) Entries() []Entry {
	return c.entries
}

// Entry returns the entry at i.
func (c *Checklist) Entry(i int) Entry {
	return c.entries[i]
}

// IsChecked reports whether the entry at i is checked. Out of range is false.
func (c *Checklist) IsChecked(i int) bool {
	if i < 0 || i >= len(c.checked) {
		return false
	}
	return c.checked[i]
}

// SetChecked sets the flag of the entry at i.
func (c *Checklist) SetChecked(i int, v bool) {
	if i < 0 || i >= len(c.checked) {
		return
	}
	c.checked[i] = v
}

// Toggle flips the flag of the entry at i.
func (c *Checklist) Toggle(i int) {
	c.SetChecked(i, !c.IsChecked(i))
}

// AllChecked reports whether every entry is checked. An empty list is
// reported as not all checked.
func (c *Checklist) AllChecked() bool {
	if len(c.checked) == 0 {
		return false
	}
	for _, v := range c.checked {
		if !v {
			return false
		}
	}
	return true
}

// ToggleAll unchecks everything when every entry is checked, otherwise
// checks everything.
func (c *Checklist) ToggleAll() {
	target := !c.AllChecked()
	for i := range c.checked {
		c.checked[i] = target
	}
}

// Checked returns the checked entries in display order.
func (c *Checklist) Checked() []Entry {
	var out []Entry
	for i, v := range c.checked {
		if v {
			out = append(out, c.entries[i])
		}
	}
	return out
}

// CheckedCount returns the number of checked entries.
func (c *Checklist) CheckedCount() int {
	n := 0
	for _, v := range c.checked {
		if v {
			n++
		}
	}
	return n
}
