package netprofile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/netclean/netprofile-cleaner/common"
)

// Deletion describes a subkey that was removed, with the values it held.
type Deletion struct {
	Entry     Entry
	Values    []Value
	DeletedAt time.Time
}

// Recorder receives every successful deletion, typically to persist it
// for a later restore.
type Recorder interface {
	Record(ctx context.Context, d Deletion) error
}

// Failure is an entry that could not be deleted.
type Failure struct {
	Entry Entry
	Err   error
}

// DeleteResult is the outcome of one Manager.Delete call.
type DeleteResult struct {
	Location Location
	Deleted  []Entry
	Failed   []Failure
}

// HasFailures reports whether any entry failed to delete.
func (r *DeleteResult) HasFailures() bool {
	return len(r.Failed) > 0
}

// Summary renders the result the way it is shown to the user:
//
//	Deleted: Network 2, Network 3
//	Failed:
//	Ethernet 4: Access is denied.
func (r *DeleteResult) Summary() string {
	var lines []string
	if len(r.Deleted) > 0 {
		names := make([]string, len(r.Deleted))
		for i, e := range r.Deleted {
			names[i] = e.Description
		}
		lines = append(lines, "Deleted: "+strings.Join(names, ", "))
	}
	if len(r.Failed) > 0 {
		lines = append(lines, "Failed:")
		for _, f := range r.Failed {
			lines = append(lines, fmt.Sprintf("%s: %v", f.Entry.Description, f.Err))
		}
	}
	return strings.Join(lines, "\n")
}

// Manager lists, deletes and restores network entries through a Store.
type Manager struct {
	store Store
	now   func() time.Time

	mu       sync.Mutex
	recorder Recorder
}

// NewManager creates a Manager over store.
func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		now:   time.Now,
	}
}

// SetClock replaces the time source used to stamp deletions.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// SetRecorder sets where deletions are recorded. When nil, Delete does not
// snapshot values before deleting.
// A Delete already running keeps the recorder it started with.
func (m *Manager) SetRecorder(r Recorder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorder = r
}

func (m *Manager) currentRecorder() Recorder {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recorder
}

// List returns the entries under loc in registry enumeration order.
// Subkeys without a readable Description are skipped.
func (m *Manager) List(loc Location) ([]Entry, error) {
	key, err := m.store.Open(loc.Path(), AccessRead)
	if err != nil {
		return nil, openError(common.ErrRegistryAccess, loc, err)
	}
	defer key.Close()

	names, err := key.SubKeyNames()
	if err != nil {
		return nil, fmt.Errorf("%w: enumerating %s: %v", common.ErrRegistryAccess, loc, err)
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		desc, err := key.StringValue(name, common.DescriptionValue)
		if err != nil {
			common.LogDebug("Skipping %s\\%s: %v", loc, name, err)
			continue
		}
		entries = append(entries, Entry{Description: desc, Key: name, Location: loc})
	}

	common.LogDebug("Listed %d entries in %s", len(entries), loc)
	return entries, nil
}

// Delete removes the subkeys of entries from loc. Per-entry failures are
// collected in the result and never stop the remaining deletions.
func (m *Manager) Delete(ctx context.Context, loc Location, entries []Entry) (*DeleteResult, error) {
	if len(entries) == 0 {
		return nil, common.ErrNothingSelected
	}

	key, err := m.store.Open(loc.Path(), AccessWrite)
	if err != nil {
		return nil, openError(common.ErrElevationRequired, loc, err)
	}
	defer key.Close()

	recorder := m.currentRecorder()
	result := &DeleteResult{Location: loc}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		var values []Value
		if recorder != nil {
			values, err = key.Values(entry.Key)
			if err != nil {
				common.LogWarn("Could not snapshot %s\\%s, it will not be restorable: %v", loc, entry.Key, err)
				values = nil
			}
		}

		if err := key.DeleteSubKey(entry.Key); err != nil {
			common.LogWarn("Failed to delete %s\\%s (%s): %v", loc, entry.Key, entry.Description, err)
			result.Failed = append(result.Failed, Failure{Entry: entry, Err: err})
			continue
		}
		common.LogInfo("Deleted %s\\%s (%s)", loc, entry.Key, entry.Description)
		result.Deleted = append(result.Deleted, entry)

		if recorder != nil {
			d := Deletion{Entry: entry, Values: values, DeletedAt: m.now()}
			if err := recorder.Record(ctx, d); err != nil {
				common.LogWarn("Failed to record deletion of %s: %v", entry.Key, err)
			}
		}
	}

	return result, nil
}

// Restore recreates subkey key under loc from a value snapshot.
func (m *Manager) Restore(loc Location, key string, values []Value) error {
	if len(values) == 0 {
		return common.ErrNotRestorable
	}

	root, err := m.store.Open(loc.Path(), AccessWrite)
	if err != nil {
		return openError(common.ErrElevationRequired, loc, err)
	}
	defer root.Close()

	if err := root.RestoreSubKey(key, values); err != nil {
		return fmt.Errorf("restoring %s\\%s: %w", loc, key, err)
	}
	common.LogInfo("Restored %s\\%s with %d values", loc, key, len(values))
	return nil
}

// openError wraps a failure to open a location root. An unsupported
// platform is returned unwrapped.
func openError(sentinel error, loc Location, err error) error {
	if errors.Is(err, common.ErrUnsupportedPlatform) {
		return err
	}
	return fmt.Errorf("%w: opening %s: %v", sentinel, loc, err)
}
