// Package regtest provides an in-memory netprofile.Store for tests.
package regtest

import (
	"errors"
	"fmt"
	"sync"

	"github.com/netclean/netprofile-cleaner/netprofile"
)

// ErrNotExist mimics the registry error for a missing key or value.
var ErrNotExist = errors.New("The system cannot find the file specified.")

// Store is an in-memory netprofile.Store. Roots exist once an entry has
// been added to them.
type Store struct {
	mu      sync.Mutex
	roots   map[string]*root
	openErr map[netprofile.Access]error
	opened  int
	closed  int
}

type root struct {
	order     []string
	keys      map[string][]netprofile.Value
	deleteErr map[string]error
	valuesErr map[string]error
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		roots:   make(map[string]*root),
		openErr: make(map[netprofile.Access]error),
	}
}

func (s *Store) root(loc netprofile.Location) *root {
	r, ok := s.roots[loc.Path()]
	if !ok {
		r = &root{
			keys:      make(map[string][]netprofile.Value),
			deleteErr: make(map[string]error),
			valuesErr: make(map[string]error),
		}
		s.roots[loc.Path()] = r
	}
	return r
}

// Add creates a subkey with a Description and a Category DWORD.
func (s *Store) Add(loc netprofile.Location, key, desc string) {
	s.AddValues(loc, key, netprofile.StringValue("Description", desc), netprofile.DWordValue("Category", 1))
}

// AddValues creates or replaces a subkey with the given values.
func (s *Store) AddValues(loc netprofile.Location, key string, values ...netprofile.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.root(loc)
	if _, ok := r.keys[key]; !ok {
		r.order = append(r.order, key)
	}
	r.keys[key] = values
}

// AddRoot creates an empty location root.
func (s *Store) AddRoot(loc netprofile.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root(loc)
}

// FailOpen makes every Open with access fail with err.
func (s *Store) FailOpen(access netprofile.Access, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openErr[access] = err
}

// FailDelete makes deleting key under loc fail with err.
func (s *Store) FailDelete(loc netprofile.Location, key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root(loc).deleteErr[key] = err
}

// FailValues makes snapshotting key under loc fail with err.
func (s *Store) FailValues(loc netprofile.Location, key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root(loc).valuesErr[key] = err
}

// Has reports whether key exists under loc.
func (s *Store) Has(loc netprofile.Location, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.roots[loc.Path()]
	if !ok {
		return false
	}
	_, ok = r.keys[key]
	return ok
}

// Handles returns how many keys were opened and closed.
func (s *Store) Handles() (opened, closed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened, s.closed
}

// Open implements netprofile.Store.
func (s *Store) Open(path string, access netprofile.Access) (netprofile.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.openErr[access]; err != nil {
		return nil, err
	}
	r, ok := s.roots[path]
	if !ok {
		return nil, ErrNotExist
	}
	s.opened++
	return &key{store: s, root: r}, nil
}

type key struct {
	store *Store
	root  *root
}

func (k *key) SubKeyNames() ([]string, error) {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	return append([]string(nil), k.root.order...), nil
}

func (k *key) StringValue(subkey, name string) (string, error) {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	values, ok := k.root.keys[subkey]
	if !ok {
		return "", ErrNotExist
	}
	for _, v := range values {
		if v.Name == name && v.Type == netprofile.TypeString {
			return netprofile.DecodeString(v.Data), nil
		}
	}
	return "", ErrNotExist
}

func (k *key) Values(subkey string) ([]netprofile.Value, error) {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	if err := k.root.valuesErr[subkey]; err != nil {
		return nil, err
	}
	values, ok := k.root.keys[subkey]
	if !ok {
		return nil, ErrNotExist
	}
	return append([]netprofile.Value(nil), values...), nil
}

func (k *key) DeleteSubKey(name string) error {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	if err := k.root.deleteErr[name]; err != nil {
		return err
	}
	if _, ok := k.root.keys[name]; !ok {
		return ErrNotExist
	}
	delete(k.root.keys, name)
	for i, n := range k.root.order {
		if n == name {
			k.root.order = append(k.root.order[:i], k.root.order[i+1:]...)
			break
		}
	}
	return nil
}

func (k *key) RestoreSubKey(name string, values []netprofile.Value) error {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	if _, ok := k.root.keys[name]; ok {
		return fmt.Errorf("subkey %s already exists", name)
	}
	k.root.order = append(k.root.order, name)
	k.root.keys[name] = append([]netprofile.Value(nil), values...)
	return nil
}

func (k *key) Close() error {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	k.store.closed++
	return nil
}
