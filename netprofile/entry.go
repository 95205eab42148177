package netprofile

import (
	"fmt"
	"strings"

	"github.com/netclean/netprofile-cleaner/common"
)

// Entry is one network subkey found under a location.
type Entry struct {
	// Description is the Description value shown to the user.
	Description string `yaml:"description"`
	// Key is the subkey name: a profile GUID or a signature hash.
	Key string `yaml:"key"`
	// Location is where the subkey lives.
	Location Location `yaml:"location"`
}

// String returns "Description (key)".
func (e Entry) String() string {
	return fmt.Sprintf("%s (%s)", e.Description, common.ShortKey(e.Key, 12))
}

// Matches reports whether query names this entry by key, key prefix or
// description. Key comparison ignores braces and case.
func (e Entry) Matches(query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	if strings.EqualFold(e.Description, q) {
		return true
	}
	key := strings.ToLower(strings.Trim(e.Key, "{}"))
	q = strings.ToLower(strings.Trim(q, "{}"))
	if q == "" {
		return false
	}
	return strings.HasPrefix(key, q)
}

// FindEntries resolves each query against entries. A query that matches
// nothing returns common.ErrEntryNotFound. Duplicate matches are collapsed.
func FindEntries(entries []Entry, queries []string) ([]Entry, error) {
	var found []Entry
	seen := make(map[string]bool)
	for _, q := range queries {
		if strings.TrimSpace(q) == "" {
			continue
		}
		matched := false
		for _, e := range entries {
			if !e.Matches(q) {
				continue
			}
			matched = true
			if !seen[e.Key] {
				seen[e.Key] = true
				found = append(found, e)
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: %s", common.ErrEntryNotFound, q)
		}
	}
	if len(found) == 0 {
		return nil, common.ErrNothingSelected
	}
	return found, nil
}
