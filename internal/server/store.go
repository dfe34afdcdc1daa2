package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/idilsaglam/items/internal/model"
)

// ErrNotFound is returned for operations on an id the store doesn't hold.
var ErrNotFound = errors.New("item not found")

// Store keeps the service's items. Insertion order is preserved; ids are
// monotonic and never reused. When a path is given the store persists to a
// single human-readable JSON file after every mutation, so a dev server
// survives restarts. No file locking; fine for a local single-user server.
type Store struct {
	mu     sync.Mutex
	path   string // empty means in-memory only
	items  []model.Item
	nextID int64
	now    func() time.Time
}

// Open loads the store at path, starting empty if the file does not exist.
// An empty path yields an in-memory store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, nextID: 1, now: time.Now}
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}
	if err := json.Unmarshal(b, &s.items); err != nil {
		return nil, fmt.Errorf("parse store: %w", err)
	}
	for _, it := range s.items {
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	return s, nil
}

// List returns a copy of all items in insertion order.
func (s *Store) List() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Create appends a new item with a fresh id and timestamp.
func (s *Store) Create(name string) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := model.Item{ID: s.nextID, Name: name, CreatedAt: s.now().UTC()}
	s.nextID++
	s.items = append(s.items, it)
	if err := s.persist(); err != nil {
		s.items = s.items[:len(s.items)-1]
		s.nextID--
		return model.Item{}, err
	}
	return it, nil
}

// Rename updates the name of the item with the given id, keeping its
// position and createdAt.
func (s *Store) Rename(id int64, name string) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			old := s.items[i].Name
			s.items[i].Name = name
			if err := s.persist(); err != nil {
				s.items[i].Name = old
				return model.Item{}, err
			}
			return s.items[i], nil
		}
	}
	return model.Item{}, ErrNotFound
}

// Delete removes the item with the given id.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			removed := s.items[i]
			s.items = append(s.items[:i], s.items[i+1:]...)
			if err := s.persist(); err != nil {
				s.items = append(s.items[:i], append([]model.Item{removed}, s.items[i:]...)...)
				return err
			}
			return nil
		}
	}
	return ErrNotFound
}

// persist writes the items file. Callers hold s.mu.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	b, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
