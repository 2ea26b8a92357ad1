package trainer

import (
	"errors"

	"gorm.io/gorm"
)

// TrainerRepository defines the interface for trainer data operations.
type TrainerRepository interface {
	CreateTrainer(trainer *Trainer) error
	GetTrainerByID(id uint) (*Trainer, error)
	GetAllTrainers(page, limit int) ([]Trainer, int64, error)
	UpdateTrainer(trainer *Trainer) error
	DeleteTrainer(id uint) error
}

type trainerRepository struct {
	db *gorm.DB
}

// NewTrainerRepository creates a new instance of TrainerRepository.
func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) CreateTrainer(trainer *Trainer) error {
	return r.db.Create(trainer).Error
}

func (r *trainerRepository) GetTrainerByID(id uint) (*Trainer, error) {
	var t Trainer
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *trainerRepository) GetAllTrainers(page, limit int) ([]Trainer, int64, error) {
	var trainers []Trainer
	var total int64

	query := r.db.Model(&Trainer{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&trainers).Error; err != nil {
		return nil, 0, err
	}
	return trainers, total, nil
}

func (r *trainerRepository) UpdateTrainer(trainer *Trainer) error {
	return r.db.Save(trainer).Error
}

func (r *trainerRepository) DeleteTrainer(id uint) error {
	return r.db.Delete(&Trainer{}, id).Error
}
