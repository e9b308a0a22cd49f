package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Naren-18/Saree-Commerce/models"
)

// FileStore keeps the whole catalog in a single JSON array document.
// Every mutation reads the file in full and rewrites it in full; the
// mutex serializes writers within this process, and across processes
// the last write wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) readAll() ([]models.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Product{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return products, nil
}

func (s *FileStore) writeAll(products []models.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.readAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
	return products, nil
}

func (s *FileStore) Get(ctx context.Context, id int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.readAll()
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *FileStore) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if err := validateProduct(p); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.readAll()
	if err != nil {
		return models.Product{}, err
	}

	// Next id is max existing + 1, so ids stay unique even after deletes
	// leave gaps.
	p.ID = 1
	for _, existing := range products {
		if existing.ID >= p.ID {
			p.ID = existing.ID + 1
		}
	}

	products = append(products, p)
	if err := s.writeAll(products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *FileStore) Update(ctx context.Context, id int, patch ProductPatch) (models.Product, error) {
	if err := patch.Validate(); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.readAll()
	if err != nil {
		return models.Product{}, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		patch.apply(&products[i])
		if err := s.writeAll(products); err != nil {
			return models.Product{}, err
		}
		return products[i], nil
	}
	return models.Product{}, ErrNotFound
}

func (s *FileStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.readAll()
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return ErrNotFound
	}
	return s.writeAll(kept)
}
