package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Naren-18/Saree-Commerce/models"
)

var (
	// ErrNotFound means the targeted product id does not exist.
	ErrNotFound = errors.New("product not found")
	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("invalid product")
	// ErrStoreUnavailable means the backing medium could not be read or written.
	ErrStoreUnavailable = errors.New("product store unavailable")
	// ErrUpload means the image binary could not be stored.
	ErrUpload = errors.New("image upload failed")
)

// ProductStore is durable CRUD over the product collection. Both the
// JSON-file backend and the Postgres backend implement it, so the HTTP
// layer never knows which one it is talking to.
type ProductStore interface {
	// List returns every product ordered by name.
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int) (models.Product, error)
	// Create assigns a fresh id, persists and returns the stored record.
	Create(ctx context.Context, p models.Product) (models.Product, error)
	// Update merges only the supplied fields into the existing record.
	Update(ctx context.Context, id int, patch ProductPatch) (models.Product, error)
	Delete(ctx context.Context, id int) error
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
}

func (p ProductPatch) apply(dst *models.Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Image != nil {
		dst.Image = *p.Image
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
}

// Validate checks the fields every stored product must carry.
func (p ProductPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if p.Category != nil && !models.IsValidCategory(*p.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, *p.Category)
	}
	return nil
}

func validateProduct(p models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if p.Image == "" {
		return fmt.Errorf("%w: image is required", ErrValidation)
	}
	if !models.IsValidCategory(p.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, p.Category)
	}
	return nil
}

// ImageStore stores product image binaries and resolves them to public URLs.
type ImageStore interface {
	// Upload rejects non-image content and stores the bytes under a
	// unique generated name, returning the public URL.
	Upload(data []byte, originalFilename string) (string, error)
	// Remove deletes the binary behind a previously returned URL.
	Remove(imageURL string) error
}
