package team

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pokeroster/pokeroster/pkg/responses"
	"github.com/pokeroster/pokeroster/pkg/validator"
)

// TeamController handles API requests related to trainer teams.
type TeamController struct {
	service *TeamService
}

// NewTeamController creates a new TeamController.
func NewTeamController(service *TeamService) *TeamController {
	return &TeamController{service: service}
}

// --- DTOs (Data Transfer Objects) for requests ---

type AddPokemonRequest struct {
	PokemonID uint `json:"pokemon_id" binding:"required"`
	Position  int  `json:"position" binding:"required,min=1,max=6"`
}

type UpdatePositionRequest struct {
	NewPosition int `json:"new_position" binding:"required,min=1,max=6"`
}

// --- Handlers ---

// GetTrainerTeam godoc
// @Summary Get a trainer's current team
// @Description Returns the trainer's active team slots ordered by position
// @Tags Teams
// @Produce json
// @Param trainer_id path int true "Trainer ID"
// @Success 200 {object} responses.SuccessResponse{data=TeamResponse}
// @Failure 404 {object} responses.ErrorResponse "Trainer not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /trainers/{trainer_id}/team [get]
func (tc *TeamController) GetTrainerTeam(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer_id")
	if !ok {
		return
	}

	team, err := tc.service.GetTrainerTeam(trainerID)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// AddPokemonToTeam godoc
// @Summary Add a pokemon to a trainer's team
// @Description Creates an active team slot at the requested position
// @Tags Teams
// @Accept json
// @Produce json
// @Param trainer_id path int true "Trainer ID"
// @Param request body AddPokemonRequest true "Pokemon and position"
// @Success 201 {object} responses.SuccessResponse{data=TeamResponse}
// @Failure 400 {object} responses.ErrorResponse "Business rule violation"
// @Failure 404 {object} responses.ErrorResponse "Trainer or pokemon not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /trainers/{trainer_id}/team [post]
func (tc *TeamController) AddPokemonToTeam(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer_id")
	if !ok {
		return
	}

	var req AddPokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	team, err := tc.service.AddPokemonToTeam(trainerID, req.PokemonID, req.Position)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Pokemon added to team", team)
}

// RemovePokemonFromTeam godoc
// @Summary Remove a pokemon from a trainer's team
// @Description Marks the pair's active slot inactive
// @Tags Teams
// @Produce json
// @Param trainer_id path int true "Trainer ID"
// @Param pokemon_id path int true "Pokemon ID"
// @Success 200 {object} responses.SuccessResponse{data=TeamResponse}
// @Failure 400 {object} responses.ErrorResponse "Pokemon not in team"
// @Failure 404 {object} responses.ErrorResponse "Trainer not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /trainers/{trainer_id}/team/{pokemon_id} [delete]
func (tc *TeamController) RemovePokemonFromTeam(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer_id")
	if !ok {
		return
	}
	pokemonID, ok := parseIDParam(c, "pokemon_id")
	if !ok {
		return
	}

	team, err := tc.service.RemovePokemonFromTeam(trainerID, pokemonID)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Pokemon removed from team", team)
}

// UpdatePokemonPosition godoc
// @Summary Move a pokemon to a new team position
// @Description Updates the slot position in place; moving onto the slot's own position is a no-op
// @Tags Teams
// @Accept json
// @Produce json
// @Param trainer_id path int true "Trainer ID"
// @Param pokemon_id path int true "Pokemon ID"
// @Param request body UpdatePositionRequest true "New position"
// @Success 200 {object} responses.SuccessResponse{data=TeamResponse}
// @Failure 400 {object} responses.ErrorResponse "Position occupied or pokemon not in team"
// @Failure 404 {object} responses.ErrorResponse "Trainer not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /trainers/{trainer_id}/team/{pokemon_id}/position [put]
func (tc *TeamController) UpdatePokemonPosition(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer_id")
	if !ok {
		return
	}
	pokemonID, ok := parseIDParam(c, "pokemon_id")
	if !ok {
		return
	}

	var req UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	team, err := tc.service.UpdatePokemonPosition(trainerID, pokemonID, req.NewPosition)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Pokemon position updated", team)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		responses.SendError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
