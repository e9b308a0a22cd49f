package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Naren-18/Saree-Commerce/models"
)

// GormStore is the hosted-backend mode: products live in a Postgres
// table and the database generates the primary keys. Concurrent writers
// get last-writer-wins merge semantics on Update.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return products, nil
}

func (s *GormStore) Get(ctx context.Context, id int) (models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return product, nil
}

func (s *GormStore) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if err := validateProduct(p); err != nil {
		return models.Product{}, err
	}
	p.ID = 0 // let Postgres assign the key
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Product{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return p, nil
}

func (s *GormStore) Update(ctx context.Context, id int, patch ProductPatch) (models.Product, error) {
	if err := patch.Validate(); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	patch.apply(&product)
	if err := s.db.WithContext(ctx).Save(&product).Error; err != nil {
		return models.Product{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return product, nil
}

func (s *GormStore) Delete(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
