//go:build windows

package netprofile

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/netclean/netprofile-cleaner/common"
)

// registryStore opens keys under HKEY_LOCAL_MACHINE in the 64-bit view.
type registryStore struct{}

// NewRegistryStore returns the Store backed by the Windows registry.
func NewRegistryStore() Store {
	return registryStore{}
}

func (registryStore) Open(path string, access Access) (Key, error) {
	mode := uint32(registry.READ)
	if access == AccessWrite {
		mode |= registry.WRITE
	}
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, mode|registry.WOW64_64KEY)
	if err != nil {
		return nil, err
	}
	return &registryKey{key: k}, nil
}

type registryKey struct {
	key registry.Key
}

func (k *registryKey) SubKeyNames() ([]string, error) {
	return k.key.ReadSubKeyNames(-1)
}

func (k *registryKey) StringValue(subkey, name string) (string, error) {
	sk, err := registry.OpenKey(k.key, subkey, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return "", err
	}
	defer sk.Close()

	s, _, err := sk.GetStringValue(name)
	return s, err
}

func (k *registryKey) Values(subkey string) ([]Value, error) {
	sk, err := registry.OpenKey(k.key, subkey, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return nil, err
	}
	defer sk.Close()

	names, err := sk.ReadValueNames(-1)
	if err != nil {
		return nil, err
	}

	values := make([]Value, 0, len(names))
	for _, name := range names {
		n, typ, err := sk.GetValue(name, nil)
		if err != nil {
			return nil, fmt.Errorf("reading size of %q: %w", name, err)
		}
		buf := make([]byte, n)
		if n > 0 {
			if _, _, err := sk.GetValue(name, buf); err != nil {
				return nil, fmt.Errorf("reading %q: %w", name, err)
			}
		}
		values = append(values, Value{Name: name, Type: ValueType(typ), Data: buf})
	}
	return values, nil
}

func (k *registryKey) DeleteSubKey(name string) error {
	return registry.DeleteKey(k.key, name)
}

func (k *registryKey) RestoreSubKey(name string, values []Value) error {
	sk, _, err := registry.CreateKey(k.key, name, registry.SET_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return err
	}
	defer sk.Close()

	for _, v := range values {
		if err := setValue(sk, v); err != nil {
			return fmt.Errorf("writing %q: %w", v.Name, err)
		}
	}
	return nil
}

func (k *registryKey) Close() error {
	return k.key.Close()
}

// setValue writes v through the typed setter for v.WriteType().
func setValue(k registry.Key, v Value) error {
	switch v.WriteType() {
	case TypeString:
		return k.SetStringValue(v.Name, DecodeString(v.Data))
	case TypeExpand:
		return k.SetExpandStringValue(v.Name, DecodeString(v.Data))
	case TypeMulti:
		return k.SetStringsValue(v.Name, DecodeStrings(v.Data))
	case TypeDWord:
		n, _ := v.DWord()
		return k.SetDWordValue(v.Name, n)
	case TypeQWord:
		n, _ := v.QWord()
		return k.SetQWordValue(v.Name, n)
	}
	if v.Type != TypeBinary {
		common.LogWarn("Restoring %q (%s) as REG_BINARY", v.Name, v.Type)
	}
	return k.SetBinaryValue(v.Name, v.Data)
}
