// Package credentials persists the player credential issued by an external
// authenticator. It uses the system keyring and falls back to a plain file
// if no keyring is available.
package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/minepkg/launchkit/internals/launch"
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

var (
	authService = "launchkit"
	authUser    = "minecraft_auth_data"

	credentialFile = "minecraft-credentials.json"
)

// Store stores the minecraft credential
type Store struct {
	globalDir     string
	NoKeyRingMode bool
	Credential    *launch.Credential
}

// New creates a new Store and loads an existing credential
func New(globalDir string) (*Store, error) {
	store := &Store{globalDir: globalDir}
	if err := store.Find(); err != nil {
		return nil, err
	}
	return store, nil
}

// Find tries to find an existing credential
func (s *Store) Find() error {
	raw, err := keyring.Get(authService, authUser)
	switch err {
	case nil:
		s.Credential = &launch.Credential{}
		return json.Unmarshal([]byte(raw), s.Credential)
	case keyring.ErrNotFound:
		// no credential (yet) is fine
		return nil
	default:
		s.NoKeyRingMode = true
		return s.findFromFile()
	}
}

// findFromFile is the same as Find but reads from a plain file instead
func (s *Store) findFromFile() error {
	file := filepath.Join(s.globalDir, credentialFile)
	raw, err := os.ReadFile(file)
	switch {
	case err == nil:
		s.Credential = &launch.Credential{}
		return json.Unmarshal(raw, s.Credential)
	case os.IsNotExist(err):
		// no file is fine
		return nil
	default:
		return errors.Wrapf(err, "could not read %s", file)
	}
}

// Set sets `Credential` and persists it
func (s *Store) Set(credential *launch.Credential) error {
	s.Credential = credential

	blob, err := json.Marshal(credential)
	if err != nil {
		return err
	}
	if s.NoKeyRingMode {
		return s.writeFile(blob)
	}
	return keyring.Set(authService, authUser, string(blob))
}

// Clear removes the persisted credential
func (s *Store) Clear() error {
	s.Credential = nil
	if s.NoKeyRingMode {
		err := os.Remove(filepath.Join(s.globalDir, credentialFile))
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	err := keyring.Delete(authService, authUser)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}

// writeFile writes the credential file to the global dir
func (s *Store) writeFile(content []byte) error {
	if err := os.MkdirAll(s.globalDir, os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.globalDir, credentialFile), content, 0600)
}
