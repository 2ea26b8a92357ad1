package backpack

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pokeroster/pokeroster/pkg/responses"
	"github.com/pokeroster/pokeroster/pkg/validator"
)

// BackpackController handles API requests related to trainer backpacks.
type BackpackController struct {
	service *BackpackService
}

// NewBackpackController creates a new BackpackController.
func NewBackpackController(service *BackpackService) *BackpackController {
	return &BackpackController{service: service}
}

// --- DTOs (Data Transfer Objects) for requests ---

type AddItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type RemoveItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityRequest struct {
	// Pointer so that an explicit zero (delete the entry) survives binding.
	NewQuantity *int `json:"new_quantity" binding:"required"`
}

// --- Handlers ---

// GetTrainerBackpack godoc
// @Summary Get a trainer's backpack
// @Description Returns all backpack entries with catalog details and the recomputed item total
// @Tags Backpacks
// @Produce json
// @Param trainer_id path int true "Trainer ID"
// @Success 200 {object} responses.SuccessResponse{data=BackpackResponse}
// @Failure 404 {object} responses.ErrorResponse "Trainer not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /trainers/{trainer_id}/backpack [get]
func (bc *BackpackController) GetTrainerBackpack(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer_id")
	if !ok {
		return
	}

	backpack, err := bc.service.GetTrainerBackpack(trainerID)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Backpack retrieved successfully", backpack)
}

// AddItemToBackpack godoc
// @Summary Add items to a trainer's backpack
// @Description Merges the quantity into the existing entry or creates a new one
// @Tags Backpacks
// @Accept json
// @Produce json
// @Param trainer_id path int true "Trainer ID"
// @Param request body AddItemRequest true "Item and quantity"
// @Success 201 {object} responses.SuccessResponse{data=BackpackResponse}
// @Failure 400 {object} responses.ErrorResponse "Quantity cap exceeded"
// @Failure 404 {object} responses.ErrorResponse "Trainer or item not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /trainers/{trainer_id}/backpack [post]
func (bc *BackpackController) AddItemToBackpack(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer_id")
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	backpack, err := bc.service.AddItemToBackpack(trainerID, req.ItemID, req.Quantity)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Item added to backpack", backpack)
}

// RemoveItemFromBackpack godoc
// @Summary Remove items from a trainer's backpack
// @Description Decrements the entry; a decrement to zero deletes it
// @Tags Backpacks
// @Accept json
// @Produce json
// @Param trainer_id path int true "Trainer ID"
// @Param item_id path int true "Item ID"
// @Param request body RemoveItemRequest true "Quantity to remove"
// @Success 200 {object} responses.SuccessResponse{data=BackpackResponse}
// @Failure 400 {object} responses.ErrorResponse "Not enough items held"
// @Failure 404 {object} responses.ErrorResponse "Trainer not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /trainers/{trainer_id}/backpack/{item_id} [delete]
func (bc *BackpackController) RemoveItemFromBackpack(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer_id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	backpack, err := bc.service.RemoveItemFromBackpack(trainerID, itemID, req.Quantity)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Item removed from backpack", backpack)
}

// UpdateItemQuantity godoc
// @Summary Set the quantity of a backpack entry
// @Description Sets the quantity directly; zero deletes the entry
// @Tags Backpacks
// @Accept json
// @Produce json
// @Param trainer_id path int true "Trainer ID"
// @Param item_id path int true "Item ID"
// @Param request body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} responses.SuccessResponse{data=BackpackResponse}
// @Failure 400 {object} responses.ErrorResponse "Quantity out of range or entry missing"
// @Failure 404 {object} responses.ErrorResponse "Trainer not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /trainers/{trainer_id}/backpack/{item_id} [put]
func (bc *BackpackController) UpdateItemQuantity(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer_id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	backpack, err := bc.service.UpdateItemQuantity(trainerID, itemID, *req.NewQuantity)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Item quantity updated", backpack)
}

// ClearBackpack godoc
// @Summary Clear a trainer's backpack
// @Description Deletes every backpack entry the trainer holds
// @Tags Backpacks
// @Produce json
// @Param trainer_id path int true "Trainer ID"
// @Success 200 {object} responses.SuccessResponse{data=BackpackResponse}
// @Failure 404 {object} responses.ErrorResponse "Trainer not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /trainers/{trainer_id}/backpack [delete]
func (bc *BackpackController) ClearBackpack(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer_id")
	if !ok {
		return
	}

	backpack, err := bc.service.ClearBackpack(trainerID)
	if err != nil {
		responses.SendDomainError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Backpack cleared", backpack)
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
