//go:build !windows

package netprofile

import "github.com/netclean/netprofile-cleaner/common"

type unsupportedStore struct{}

// NewRegistryStore returns a Store whose Open always fails with
// common.ErrUnsupportedPlatform.
func NewRegistryStore() Store {
	return unsupportedStore{}
}

func (unsupportedStore) Open(string, Access) (Key, error) {
	return nil, common.ErrUnsupportedPlatform
}
