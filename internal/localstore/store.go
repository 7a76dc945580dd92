// Package localstore is the guest-mode persistence backend: a small
// file-backed key/value store that keeps one JSON blob per namespaced key,
// mirroring the browser localStorage layout the repositories fall back to
// when no remote session exists.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/questbloom/questbloom-api/internal/errors"
)

// Namespace prefixes every key so guest data is recognizable on disk.
const Namespace = "questbloom"

// Store persists JSON blobs under <dir>/<namespace>.<key>.json. Safe for
// concurrent use within one process; the guest session is the only writer.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New creates the backing directory if needed and returns a store.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.InvalidArgument("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.WrapPersistence(err, "failed to create data directory")
	}
	return &Store{dir: dir}, nil
}

// Get unmarshals the blob stored under key into v. Returns NotFound when no
// blob exists.
func (s *Store) Get(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("no local data for %q", key)
		}
		return errors.WrapPersistence(err, "failed to read local data")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapPersistence(err, "failed to decode local data")
	}
	return nil
}

// Set marshals v and writes it atomically under key.
func (s *Store) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapPersistence(err, "failed to encode local data")
	}

	// Write-then-rename so a crash never leaves a truncated blob.
	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.WrapPersistence(err, "failed to write local data")
	}
	if err := os.Rename(tmp, target); err != nil {
		return errors.WrapPersistence(err, "failed to commit local data")
	}
	return nil
}

// Delete removes the blob under key. Missing blobs are not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.WrapPersistence(err, "failed to delete local data")
	}
	return nil
}

func (s *Store) path(key string) string {
	// Keys contain player IDs; keep the filename filesystem-safe.
	safe := strings.NewReplacer("/", "_", ":", ".").Replace(key)
	return filepath.Join(s.dir, Namespace+"."+safe+".json")
}
