package backpack

import (
	"errors"

	"github.com/pokeroster/pokeroster/internal/trainer"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BackpackRepository defines the interface for backpack entry data operations.
type BackpackRepository interface {
	CreateEntry(entry *BackpackEntry) error
	GetEntry(trainerID, itemID uint) (*BackpackEntry, error)
	GetEntries(trainerID uint) ([]BackpackEntry, error)
	UpdateEntry(entry *BackpackEntry) error
	// DeleteEntry removes the row outright; zero-quantity entries are
	// equivalent to absence and are never retained.
	DeleteEntry(trainerID, itemID uint) error
	ClearBackpack(trainerID uint) error

	// LockTrainer takes a row lock on the trainer row so concurrent
	// quantity checks for the same trainer serialize. Only meaningful
	// inside WithTransaction.
	LockTrainer(trainerID uint) error
	WithTransaction(txFunc func(BackpackRepository) error) error
}

type backpackRepository struct {
	db *gorm.DB
}

// NewBackpackRepository creates a new instance of BackpackRepository.
func NewBackpackRepository(db *gorm.DB) BackpackRepository {
	return &backpackRepository{db: db}
}

func (r *backpackRepository) CreateEntry(entry *BackpackEntry) error {
	return r.db.Create(entry).Error
}

func (r *backpackRepository) GetEntry(trainerID, itemID uint) (*BackpackEntry, error) {
	var entry BackpackEntry
	err := r.db.Where("trainer_id = ? AND item_id = ?", trainerID, itemID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *backpackRepository) GetEntries(trainerID uint) ([]BackpackEntry, error) {
	var entries []BackpackEntry
	err := r.db.Where("trainer_id = ?", trainerID).Order("item_id asc").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *backpackRepository) UpdateEntry(entry *BackpackEntry) error {
	return r.db.Save(entry).Error
}

func (r *backpackRepository) DeleteEntry(trainerID, itemID uint) error {
	return r.db.Unscoped().
		Where("trainer_id = ? AND item_id = ?", trainerID, itemID).
		Delete(&BackpackEntry{}).Error
}

func (r *backpackRepository) ClearBackpack(trainerID uint) error {
	return r.db.Unscoped().
		Where("trainer_id = ?", trainerID).
		Delete(&BackpackEntry{}).Error
}

func (r *backpackRepository) LockTrainer(trainerID uint) error {
	var t trainer.Trainer
	return r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&t, trainerID).Error
}

func (r *backpackRepository) WithTransaction(txFunc func(BackpackRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &backpackRepository{db: tx}
		return txFunc(txRepo)
	})
}
