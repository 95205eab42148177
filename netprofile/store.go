package netprofile

// Access selects how a location key is opened.
type Access int

const (
	// AccessRead allows enumerating subkeys and reading values.
	AccessRead Access = iota
	// AccessWrite additionally allows deleting and creating subkeys.
	AccessWrite
)

// Store opens location keys. The Windows implementation is returned by
// NewRegistryStore.
type Store interface {
	Open(path string, access Access) (Key, error)
}

// Key is an open location key. Subkey arguments are names relative to it.
type Key interface {
	SubKeyNames() ([]string, error)
	StringValue(subkey, name string) (string, error)
	Values(subkey string) ([]Value, error)
	DeleteSubKey(name string) error
	RestoreSubKey(name string, values []Value) error
	Close() error
}
