package team

import (
	"github.com/pokeroster/pokeroster/internal/domain"
	"github.com/pokeroster/pokeroster/internal/pokemon"
	"github.com/pokeroster/pokeroster/internal/trainer"
)

// TeamMemberResponse is one active slot enriched with pokemon details.
type TeamMemberResponse struct {
	ID           uint   `json:"id"`
	TrainerID    uint   `json:"trainer_id"`
	PokemonID    uint   `json:"pokemon_id"`
	PokemonName  string `json:"pokemon_name"`
	PokemonType  string `json:"pokemon_type"`
	PokemonLevel int    `json:"pokemon_level"`
	Position     int    `json:"position"`
	IsActive     bool   `json:"is_active"`
}

// TeamResponse is the current-team view returned by every team operation.
type TeamResponse struct {
	TrainerID   uint                 `json:"trainer_id"`
	TrainerName string               `json:"trainer_name"`
	TeamSize    int                  `json:"team_size"`
	MaxSize     int                  `json:"max_size"`
	Members     []TeamMemberResponse `json:"members"`
}

// TeamService enforces team composition invariants: at most 6 active slots
// per trainer, distinct positions, one active slot per (trainer, pokemon).
type TeamService struct {
	teamRepo    TeamRepository
	trainerRepo trainer.TrainerRepository
	pokemonRepo pokemon.PokemonRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo TeamRepository, trainerRepo trainer.TrainerRepository, pokemonRepo pokemon.PokemonRepository) *TeamService {
	return &TeamService{
		teamRepo:    teamRepo,
		trainerRepo: trainerRepo,
		pokemonRepo: pokemonRepo,
	}
}

// AddPokemonToTeam creates a new active slot at the given position. The
// occupancy checks and the insert run in one transaction under a trainer
// row lock, so concurrent adds for the same trainer cannot both pass the
// size or position check.
func (s *TeamService) AddPokemonToTeam(trainerID, pokemonID uint, position int) (*TeamResponse, error) {
	t, err := s.trainerRepo.GetTrainerByID(trainerID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("Trainer", trainerID)
	}

	p, err := s.pokemonRepo.GetPokemonByID(pokemonID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFound("Pokemon", pokemonID)
	}

	if position < 1 || position > MaxTeamSize {
		return nil, domain.NewRuleViolation("Position must be between 1 and %d", MaxTeamSize)
	}

	err = s.teamRepo.WithTransaction(func(tx TeamRepository) error {
		if err := tx.LockTrainer(trainerID); err != nil {
			return err
		}

		count, err := tx.CountActiveSlots(trainerID)
		if err != nil {
			return err
		}
		if count >= MaxTeamSize {
			return domain.NewRuleViolation("Maximum %d Pokemon per team", MaxTeamSize)
		}

		existing, err := tx.GetActiveSlot(trainerID, pokemonID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewRuleViolation("Pokemon %d is already in trainer %d's team", pokemonID, trainerID)
		}

		if err := validatePositionAvailable(tx, trainerID, position, 0); err != nil {
			return err
		}

		return tx.CreateSlot(&TeamSlot{
			TrainerID: trainerID,
			PokemonID: pokemonID,
			Position:  position,
			IsActive:  true,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.GetTrainerTeam(trainerID)
}

// RemovePokemonFromTeam marks the pair's active slot inactive. The row is
// kept for history, never reused.
func (s *TeamService) RemovePokemonFromTeam(trainerID, pokemonID uint) (*TeamResponse, error) {
	slot, err := s.teamRepo.GetActiveSlot(trainerID, pokemonID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, domain.NewRuleViolation("Pokemon %d is not in trainer %d's team", pokemonID, trainerID)
	}

	if err := s.teamRepo.DeactivateSlot(trainerID, pokemonID); err != nil {
		return nil, err
	}

	return s.GetTrainerTeam(trainerID)
}

// UpdatePokemonPosition moves an active slot to a new position. Repositioning
// a pokemon onto its own position is allowed trivially.
func (s *TeamService) UpdatePokemonPosition(trainerID, pokemonID uint, newPosition int) (*TeamResponse, error) {
	slot, err := s.teamRepo.GetActiveSlot(trainerID, pokemonID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, domain.NewRuleViolation("Pokemon %d is not in trainer %d's team", pokemonID, trainerID)
	}

	if newPosition < 1 || newPosition > MaxTeamSize {
		return nil, domain.NewRuleViolation("Position must be between 1 and %d", MaxTeamSize)
	}

	if err := validatePositionAvailable(s.teamRepo, trainerID, newPosition, pokemonID); err != nil {
		return nil, err
	}

	slot.Position = newPosition
	if err := s.teamRepo.UpdateSlot(slot); err != nil {
		return nil, err
	}

	return s.GetTrainerTeam(trainerID)
}

// GetTrainerTeam returns the active slots ordered by position, each joined
// with the pokemon's current name, primary type and level.
func (s *TeamService) GetTrainerTeam(trainerID uint) (*TeamResponse, error) {
	t, err := s.trainerRepo.GetTrainerByID(trainerID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("Trainer", trainerID)
	}

	slots, err := s.teamRepo.GetActiveSlots(trainerID)
	if err != nil {
		return nil, err
	}

	members := make([]TeamMemberResponse, 0, len(slots))
	for _, slot := range slots {
		p, err := s.pokemonRepo.GetPokemonByID(slot.PokemonID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		members = append(members, TeamMemberResponse{
			ID:           slot.ID,
			TrainerID:    slot.TrainerID,
			PokemonID:    slot.PokemonID,
			PokemonName:  p.Name,
			PokemonType:  string(p.TypePrimary),
			PokemonLevel: p.Level,
			Position:     slot.Position,
			IsActive:     slot.IsActive,
		})
	}

	return &TeamResponse{
		TrainerID:   trainerID,
		TrainerName: t.Name,
		TeamSize:    len(members),
		MaxSize:     MaxTeamSize,
		Members:     members,
	}, nil
}

// validatePositionAvailable fails when another active slot of the trainer
// already holds the position. excludePokemonID skips the slot being moved
// (zero means no exclusion).
func validatePositionAvailable(repo TeamRepository, trainerID uint, position int, excludePokemonID uint) error {
	slots, err := repo.GetActiveSlots(trainerID)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		if slot.Position == position && slot.PokemonID != excludePokemonID {
			return domain.NewRuleViolation("Position %d is already occupied in trainer %d's team", position, trainerID)
		}
	}
	return nil
}
