package item

import (
	"errors"

	"gorm.io/gorm"
)

// ItemRepository defines the interface for item catalog data operations.
type ItemRepository interface {
	CreateItem(item *Item) error
	GetItemByID(id uint) (*Item, error)
	GetAllItems(page, limit int) ([]Item, int64, error)
	UpdateItem(item *Item) error
	DeleteItem(id uint) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new instance of ItemRepository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) CreateItem(item *Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepository) GetItemByID(id uint) (*Item, error) {
	var it Item
	if err := r.db.First(&it, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (r *itemRepository) GetAllItems(page, limit int) ([]Item, int64, error) {
	var items []Item
	var total int64

	query := r.db.Model(&Item{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *itemRepository) UpdateItem(item *Item) error {
	return r.db.Save(item).Error
}

func (r *itemRepository) DeleteItem(id uint) error {
	return r.db.Delete(&Item{}, id).Error
}
