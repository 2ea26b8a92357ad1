package team

import (
	"errors"

	"github.com/pokeroster/pokeroster/internal/trainer"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository defines the interface for team slot data operations.
type TeamRepository interface {
	CreateSlot(slot *TeamSlot) error
	GetActiveSlot(trainerID, pokemonID uint) (*TeamSlot, error)
	GetActiveSlots(trainerID uint) ([]TeamSlot, error)
	CountActiveSlots(trainerID uint) (int64, error)
	UpdateSlot(slot *TeamSlot) error
	DeactivateSlot(trainerID, pokemonID uint) error

	// LockTrainer takes a row lock on the trainer row so that concurrent
	// check-then-act sequences for the same trainer serialize. Only
	// meaningful inside WithTransaction.
	LockTrainer(trainerID uint) error
	WithTransaction(txFunc func(TeamRepository) error) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateSlot(slot *TeamSlot) error {
	return r.db.Create(slot).Error
}

func (r *teamRepository) GetActiveSlot(trainerID, pokemonID uint) (*TeamSlot, error) {
	var slot TeamSlot
	err := r.db.Where("trainer_id = ? AND pokemon_id = ? AND is_active = ?", trainerID, pokemonID, true).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *teamRepository) GetActiveSlots(trainerID uint) ([]TeamSlot, error) {
	var slots []TeamSlot
	err := r.db.Where("trainer_id = ? AND is_active = ?", trainerID, true).
		Order("position asc").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *teamRepository) CountActiveSlots(trainerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&TeamSlot{}).
		Where("trainer_id = ? AND is_active = ?", trainerID, true).
		Count(&count).Error
	return count, err
}

func (r *teamRepository) UpdateSlot(slot *TeamSlot) error {
	return r.db.Save(slot).Error
}

func (r *teamRepository) DeactivateSlot(trainerID, pokemonID uint) error {
	return r.db.Model(&TeamSlot{}).
		Where("trainer_id = ? AND pokemon_id = ? AND is_active = ?", trainerID, pokemonID, true).
		Update("is_active", false).Error
}

func (r *teamRepository) LockTrainer(trainerID uint) error {
	var t trainer.Trainer
	return r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&t, trainerID).Error
}

func (r *teamRepository) WithTransaction(txFunc func(TeamRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &teamRepository{db: tx}
		return txFunc(txRepo)
	})
}
