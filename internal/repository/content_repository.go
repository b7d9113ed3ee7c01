package repository

import (
	"edupath_backend/internal/model"

	"gorm.io/gorm"
)

// ContentRepository reads the content catalog. The engine never writes
// through it; authoring happens in the upstream ingestion pipeline.
type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

// ListAll returns the catalog in stable catalog order.
func (r *ContentRepository) Create(item *model.ContentItem) error {
	return r.DB.Create(item).Error
}

func (r *ContentRepository) ListAll() ([]model.ContentItem, error) {
	var items []model.ContentItem
	err := r.DB.Order("created_at asc, id asc").Find(&items).Error
	return items, err
}

func (r *ContentRepository) FindByID(id string) (*model.ContentItem, error) {
	var item model.ContentItem
	err := r.DB.Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ContentRepository) ListByCategory(category string) ([]model.ContentItem, error) {
	var items []model.ContentItem
	err := r.DB.Where("category = ?", category).Order("created_at asc, id asc").Find(&items).Error
	return items, err
}
