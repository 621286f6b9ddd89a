// Package store holds the client-side state containers behind the
// storefront and admin UIs: cart, wishlist, filters, auth and the
// REST-backed product/order collections. Containers are plain values owned
// by the application root and passed by reference; there are no package
// singletons.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Bucket is a named JSON persistence slot, one per application
// ("shoe-store" for the storefront, "auth-storage" for the admin). Each
// container keeps its state under its own key, so the bucket as a whole is
// the survives-a-reload layer for cart, wishlist, filters and auth flags.
type Bucket struct {
	mu   sync.Mutex
	path string
}

// NewBucket creates the bucket file's directory if needed.
func NewBucket(dir, name string) (*Bucket, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Bucket{path: filepath.Join(dir, name+".json")}, nil
}

// Set stores v under key, leaving other keys untouched.
func (b *Bucket) Set(key string, v any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	state, err := b.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	state[key] = raw
	return b.write(state)
}

// Get loads the value under key into v. A key that was never set loads
// nothing and returns false.
func (b *Bucket) Get(key string, v any) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	state, err := b.read()
	if err != nil {
		return false, err
	}
	raw, ok := state[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

// Delete removes a single key.
func (b *Bucket) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	state, err := b.read()
	if err != nil {
		return err
	}
	delete(state, key)
	return b.write(state)
}

// Clear removes all persisted state.
func (b *Bucket) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := os.Remove(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (b *Bucket) read() (map[string]json.RawMessage, error) {
	state := make(map[string]json.RawMessage)
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return state, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return state, nil
}

func (b *Bucket) write(state map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path)
}
