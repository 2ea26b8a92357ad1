package pokemon

import (
	"errors"

	"gorm.io/gorm"
)

// PokemonRepository defines the interface for pokemon data operations.
type PokemonRepository interface {
	CreatePokemon(p *Pokemon) error
	GetPokemonByID(id uint) (*Pokemon, error)
	GetAllPokemon(page, limit int) ([]Pokemon, int64, error)
	UpdatePokemon(p *Pokemon) error
	DeletePokemon(id uint) error
}

type pokemonRepository struct {
	db *gorm.DB
}

// NewPokemonRepository creates a new instance of PokemonRepository.
func NewPokemonRepository(db *gorm.DB) PokemonRepository {
	return &pokemonRepository{db: db}
}

func (r *pokemonRepository) CreatePokemon(p *Pokemon) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return r.db.Create(p).Error
}

func (r *pokemonRepository) GetPokemonByID(id uint) (*Pokemon, error) {
	var p Pokemon
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *pokemonRepository) GetAllPokemon(page, limit int) ([]Pokemon, int64, error) {
	var list []Pokemon
	var total int64

	query := r.db.Model(&Pokemon{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *pokemonRepository) UpdatePokemon(p *Pokemon) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return r.db.Save(p).Error
}

func (r *pokemonRepository) DeletePokemon(id uint) error {
	return r.db.Delete(&Pokemon{}, id).Error
}
