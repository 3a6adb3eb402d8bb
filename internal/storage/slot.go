// Package storage provides the named-slot byte store the task database
// snapshots into. Each slot is a single file under the store's root
// directory; writes are full-image overwrites.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// SlotStore persists opaque byte blobs under fixed keys.
type SlotStore struct {
	root string
}

// NewSlotStore creates the root directory if needed and returns a store
// rooted there.
func NewSlotStore(root string) (*SlotStore, error) {
	if root == "" {
		return nil, fmt.Errorf("slot store root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create slot store root: %w", err)
	}
	return &SlotStore{root: root}, nil
}

func (s *SlotStore) path(key string) string {
	return filepath.Join(s.root, key+".bin")
}

// Get reads the blob stored under key. The second return value is false
// when the slot has never been written, which callers treat as a
// first-run signal rather than an error.
func (s *SlotStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return data, true, nil
}

// Put overwrites the slot with data. The write goes to a temp file in
// the same directory and is renamed into place so a crash mid-write
// never leaves a truncated image behind.
func (s *SlotStore) Put(key string, data []byte) error {
	tmp, err := os.CreateTemp(s.root, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for slot %q: %w", key, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close slot %q: %w", key, err)
	}

	if err := os.Rename(tmpPath, s.path(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace slot %q: %w", key, err)
	}
	return nil
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (s *SlotStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete slot %q: %w", key, err)
	}
	return nil
}
