package battle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pokeroster/pokeroster/config"
	"github.com/pokeroster/pokeroster/pkg/responses"
	"github.com/pokeroster/pokeroster/pkg/validator"
)

// BattleController handles API requests related to battles and the leaderboard.
type BattleController struct {
	service *BattleService
	config  *config.Config
}

// NewBattleController creates a new BattleController.
func NewBattleController(service *BattleService, cfg *config.Config) *BattleController {
	return &BattleController{service: service, config: cfg}
}

// --- DTOs (Data Transfer Objects) for requests ---

type CreateBattleRequest struct {
	Team1TrainerID  uint    `json:"team1_trainer_id" binding:"required"`
	Team2TrainerID  uint    `json:"team2_trainer_id" binding:"required"`
	WinnerTrainerID uint    `json:"winner_trainer_id" binding:"required"`
	Team1Strength   float64 `json:"team1_strength"`
	Team2Strength   float64 `json:"team2_strength"`
	VictoryMargin   float64 `json:"victory_margin"`
	BattleDetails   string  `json:"battle_details" binding:"omitempty,max=5000"`
}

// --- Handlers ---

// CreateBattle godoc
// @Summary Record a battle result
// @Description Appends an immutable battle record; both trainers must field a non-empty team
// @Tags Battles
// @Accept json
// @Produce json
// @Param battle body CreateBattleRequest true "Battle result"
// @Success 201 {object} responses.SuccessResponse{data=BattleResponse}
// @Failure 400 {object} responses.ErrorResponse "Business rule violation"
// @Failure 404 {object} responses.ErrorResponse "Trainer not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /battles [post]
func (bc *BattleController) CreateBattle(c *gin.Context) {
	var req CreateBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	battle, err := bc.service.CreateBattle(
		req.Team1TrainerID, req.Team2TrainerID, req.WinnerTrainerID,
		req.Team1Strength, req.Team2Strength, req.VictoryMargin,
		req.BattleDetails,
	)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Battle recorded", battle)
}

// GetAllBattles godoc
// @Summary List battle history
// @Description Battles newest first with trainer names resolved
// @Tags Battles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(100)
// @Success 200 {object} responses.PaginatedResponse{data=[]BattleResponse}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /battles [get]
func (bc *BattleController) GetAllBattles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(bc.config.Battle.DefaultPageSize)))
	if limit < 1 {
		limit = bc.config.Battle.DefaultPageSize
	}

	skip := (page - 1) * limit
	battles, total, err := bc.service.GetAllBattles(skip, limit)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Battles retrieved successfully", battles, total, page, limit)
}

// GetTrainerBattles godoc
// @Summary Get one trainer's battle record
// @Description Win/loss counts and every battle the trainer participated in, newest first
// @Tags Battles
// @Produce json
// @Param trainer_id path int true "Trainer ID"
// @Success 200 {object} responses.SuccessResponse{data=TrainerBattlesResponse}
// @Failure 404 {object} responses.ErrorResponse "Trainer not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /trainers/{trainer_id}/battles [get]
func (bc *BattleController) GetTrainerBattles(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer_id")
	if !ok {
		return
	}

	battles, err := bc.service.GetTrainerBattles(trainerID)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Trainer battles retrieved successfully", battles)
}

// GetLeaderboard godoc
// @Summary Get the trainer leaderboard
// @Description Win/loss statistics derived from the full battle history, ordered by wins then win rate
// @Tags Battles
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=LeaderboardResponse}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /battles/leaderboard [get]
func (bc *BattleController) GetLeaderboard(c *gin.Context) {
	leaderboard, err := bc.service.GetLeaderboard()
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Leaderboard retrieved successfully", leaderboard)
}

// DeleteBattle godoc
// @Summary Delete a battle record
// @Description Hard-deletes one battle from the history
// @Tags Battles
// @Produce json
// @Param battle_id path int true "Battle ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Battle not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /battles/{battle_id} [delete]
func (bc *BattleController) DeleteBattle(c *gin.Context) {
	battleID, ok := parseIDParam(c, "battle_id")
	if !ok {
		return
	}

	if err := bc.service.DeleteBattle(battleID); err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Battle deleted", nil)
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
