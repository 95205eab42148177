package netprofile_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/netprofile"
	"github.com/netclean/netprofile-cleaner/netprofile/regtest"
)

type recorderFunc func(ctx context.Context, d netprofile.Deletion) error

func (f recorderFunc) Record(ctx context.Context, d netprofile.Deletion) error {
	return f(ctx, d)
}

func seededStore() *regtest.Store {
	s := regtest.NewStore()
	s.Add(netprofile.Profiles, "{AAA-1}", "Network")
	s.Add(netprofile.Profiles, "{BBB-2}", "Network 2")
	s.AddValues(netprofile.Profiles, "{CCC-3}", netprofile.DWordValue("Category", 0)) // no Description
	s.Add(netprofile.Profiles, "{DDD-4}", "Ethernet 3")
	s.Add(netprofile.Signatures, "0101030001", "Network 2")
	return s
}

func assertHandlesReleased(t *testing.T, s *regtest.Store) {
	t.Helper()
	if opened, closed := s.Handles(); opened != closed {
		t.Errorf("handles opened = %d, closed = %d", opened, closed)
	}
}

func TestManager_List(t *testing.T) {
	store := seededStore()
	m := netprofile.NewManager(store)

	entries, err := m.List(netprofile.Profiles)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"Network", "Network 2", "Ethernet 3"}
	if len(entries) != len(want) {
		t.Fatalf("List() returned %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Description != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Description, want[i])
		}
		if e.Location != netprofile.Profiles {
			t.Errorf("entry %d location = %v, want Profiles", i, e.Location)
		}
	}
	if entries[2].Key != "{DDD-4}" {
		t.Errorf("subkey without Description should be skipped, got key %s", entries[2].Key)
	}
	assertHandlesReleased(t, store)
}

func TestManager_ListOpenFailure(t *testing.T) {
	store := regtest.NewStore()
	m := netprofile.NewManager(store)

	_, err := m.List(netprofile.Signatures)
	if !errors.Is(err, common.ErrRegistryAccess) {
		t.Fatalf("List() error = %v, want ErrRegistryAccess", err)
	}
	if !strings.Contains(err.Error(), regtest.ErrNotExist.Error()) {
		t.Errorf("error should carry the registry message, got %q", err)
	}
}

func TestManager_ListUnsupportedPlatform(t *testing.T) {
	store := regtest.NewStore()
	store.FailOpen(netprofile.AccessRead, common.ErrUnsupportedPlatform)
	m := netprofile.NewManager(store)

	if _, err := m.List(netprofile.Profiles); !errors.Is(err, common.ErrUnsupportedPlatform) {
		t.Errorf("List() error = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestManager_Delete(t *testing.T) {
	store := seededStore()
	m := netprofile.NewManager(store)

	entries, _ := m.List(netprofile.Profiles)
	result, err := m.Delete(context.Background(), netprofile.Profiles, entries[:2])
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(result.Deleted) != 2 || result.HasFailures() {
		t.Fatalf("Delete() result = %+v, want 2 deleted and no failures", result)
	}

	remaining, _ := m.List(netprofile.Profiles)
	if len(remaining) != 1 || remaining[0].Description != "Ethernet 3" {
		t.Errorf("remaining entries = %+v, want only Ethernet 3", remaining)
	}

	// The Signatures entry with the same description is untouched.
	sigs, _ := m.List(netprofile.Signatures)
	if len(sigs) != 1 {
		t.Errorf("Signatures entries = %d, want 1", len(sigs))
	}
	assertHandlesReleased(t, store)
}

func TestManager_DeleteNothingSelected(t *testing.T) {
	m := netprofile.NewManager(seededStore())

	_, err := m.Delete(context.Background(), netprofile.Profiles, nil)
	if !errors.Is(err, common.ErrNothingSelected) {
		t.Errorf("Delete(nil) error = %v, want ErrNothingSelected", err)
	}
}

func TestManager_DeleteRequiresWriteAccess(t *testing.T) {
	store := seededStore()
	store.FailOpen(netprofile.AccessWrite, errors.New("Access is denied."))
	m := netprofile.NewManager(store)

	entries, _ := m.List(netprofile.Profiles)
	_, err := m.Delete(context.Background(), netprofile.Profiles, entries)
	if !errors.Is(err, common.ErrElevationRequired) {
		t.Fatalf("Delete() error = %v, want ErrElevationRequired", err)
	}
	if !strings.Contains(err.Error(), "Access is denied.") {
		t.Errorf("error should include the registry message, got %q", err)
	}

	after, _ := m.List(netprofile.Profiles)
	if len(after) != len(entries) {
		t.Error("no entry should be deleted when the root cannot be opened for write")
	}
}

func TestManager_DeleteCollectsFailures(t *testing.T) {
	store := seededStore()
	store.FailDelete(netprofile.Profiles, "{BBB-2}", errors.New("Access is denied."))
	m := netprofile.NewManager(store)

	entries, _ := m.List(netprofile.Profiles)
	result, err := m.Delete(context.Background(), netprofile.Profiles, entries)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if len(result.Deleted) != 2 {
		t.Errorf("deleted = %d, want 2", len(result.Deleted))
	}
	if len(result.Failed) != 1 || result.Failed[0].Entry.Key != "{BBB-2}" {
		t.Fatalf("failed = %+v, want {BBB-2}", result.Failed)
	}

	want := "Deleted: Network, Ethernet 3\nFailed:\nNetwork 2: Access is denied."
	if got := result.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestManager_DeleteMissingKeyIsReported(t *testing.T) {
	m := netprofile.NewManager(seededStore())

	ghost := netprofile.Entry{Description: "Gone", Key: "{ZZZ}", Location: netprofile.Profiles}
	result, err := m.Delete(context.Background(), netprofile.Profiles, []netprofile.Entry{ghost})
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(result.Failed) != 1 {
		t.Errorf("a key removed since the last refresh should be reported as failed")
	}
}

func TestManager_DeleteRecordsSnapshots(t *testing.T) {
	store := seededStore()
	store.FailValues(netprofile.Profiles, "{DDD-4}", errors.New("read denied"))
	m := netprofile.NewManager(store)

	fixed := time.Date(2025, 3, 24, 12, 0, 0, 0, time.UTC)
	m.SetClock(func() time.Time { return fixed })

	var recorded []netprofile.Deletion
	m.SetRecorder(recorderFunc(func(_ context.Context, d netprofile.Deletion) error {
		recorded = append(recorded, d)
		return nil
	}))

	entries, _ := m.List(netprofile.Profiles)
	if _, err := m.Delete(context.Background(), netprofile.Profiles, entries); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if len(recorded) != 3 {
		t.Fatalf("recorded %d deletions, want 3", len(recorded))
	}
	if len(recorded[0].Values) != 2 {
		t.Errorf("snapshot values = %d, want 2", len(recorded[0].Values))
	}
	if !recorded[0].DeletedAt.Equal(fixed) {
		t.Errorf("DeletedAt = %v, want %v", recorded[0].DeletedAt, fixed)
	}
	if recorded[2].Values != nil {
		t.Error("a failed snapshot should be recorded without values")
	}
}

func TestManager_SetRecorderDuringDelete(t *testing.T) {
	store := seededStore()
	m := netprofile.NewManager(store)

	var recorded int
	m.SetRecorder(recorderFunc(func(context.Context, netprofile.Deletion) error {
		recorded++
		m.SetRecorder(nil)
		return nil
	}))

	entries, _ := m.List(netprofile.Profiles)
	if _, err := m.Delete(context.Background(), netprofile.Profiles, entries); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if recorded != len(entries) {
		t.Errorf("recorded = %d, want %d: a running Delete keeps its recorder", recorded, len(entries))
	}

	signatures, _ := m.List(netprofile.Signatures)
	if _, err := m.Delete(context.Background(), netprofile.Signatures, signatures); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if recorded != len(entries) {
		t.Errorf("recorded = %d after the recorder was cleared, want %d", recorded, len(entries))
	}
}

func TestManager_RecorderErrorDoesNotFailDelete(t *testing.T) {
	m := netprofile.NewManager(seededStore())
	m.SetRecorder(recorderFunc(func(context.Context, netprofile.Deletion) error {
		return errors.New("disk full")
	}))

	entries, _ := m.List(netprofile.Profiles)
	result, err := m.Delete(context.Background(), netprofile.Profiles, entries)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(result.Deleted) != len(entries) {
		t.Errorf("deleted = %d, want %d", len(result.Deleted), len(entries))
	}
}

func TestManager_DeleteCancelled(t *testing.T) {
	m := netprofile.NewManager(seededStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries, _ := m.List(netprofile.Profiles)
	result, err := m.Delete(ctx, netprofile.Profiles, entries)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Delete() error = %v, want context.Canceled", err)
	}
	if len(result.Deleted) != 0 {
		t.Errorf("nothing should be deleted after cancellation, got %d", len(result.Deleted))
	}
}

func TestManager_Restore(t *testing.T) {
	store := seededStore()
	m := netprofile.NewManager(store)

	var snapshot netprofile.Deletion
	m.SetRecorder(recorderFunc(func(_ context.Context, d netprofile.Deletion) error {
		snapshot = d
		return nil
	}))

	entries, _ := m.List(netprofile.Profiles)
	if _, err := m.Delete(context.Background(), netprofile.Profiles, entries[:1]); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if err := m.Restore(netprofile.Profiles, snapshot.Entry.Key, snapshot.Values); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	after, _ := m.List(netprofile.Profiles)
	found := false
	for _, e := range after {
		if e.Key == "{AAA-1}" && e.Description == "Network" {
			found = true
		}
	}
	if !found {
		t.Errorf("restored entry not listed, got %+v", after)
	}
}

func TestManager_RestoreWithoutValues(t *testing.T) {
	m := netprofile.NewManager(seededStore())

	if err := m.Restore(netprofile.Profiles, "{AAA-1}", nil); !errors.Is(err, common.ErrNotRestorable) {
		t.Errorf("Restore(nil) error = %v, want ErrNotRestorable", err)
	}
}

func TestDeleteResult_Summary(t *testing.T) {
	tests := []struct {
		name   string
		result netprofile.DeleteResult
		want   string
	}{
		{
			name:   "all deleted",
			result: netprofile.DeleteResult{Deleted: []netprofile.Entry{{Description: "Network 2"}, {Description: "Network 3"}}},
			want:   "Deleted: Network 2, Network 3",
		},
		{
			name: "all failed",
			result: netprofile.DeleteResult{Failed: []netprofile.Failure{
				{Entry: netprofile.Entry{Description: "Network 2"}, Err: errors.New("denied")},
				{Entry: netprofile.Entry{Description: "Network 3"}, Err: errors.New("missing")},
			}},
			want: "Failed:\nNetwork 2: denied\nNetwork 3: missing",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
