package backpack

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pokeroster/pokeroster/internal/item"
	"github.com/pokeroster/pokeroster/internal/trainer"
)

// RegisterBackpackRoutes wires the backpack manager endpoints under
// /trainers/:trainer_id/backpack.
func RegisterBackpackRoutes(router *gin.RouterGroup, db *gorm.DB) {
	backpackRepo := NewBackpackRepository(db)
	trainerRepo := trainer.NewTrainerRepository(db)
	itemRepo := item.NewItemRepository(db)

	service := NewBackpackService(backpackRepo, trainerRepo, itemRepo)
	controller := NewBackpackController(service)

	backpacks := router.Group("/trainers/:trainer_id/backpack")
	{
		backpacks.GET("", controller.GetTrainerBackpack)
		backpacks.POST("", controller.AddItemToBackpack)
		backpacks.DELETE("", controller.ClearBackpack)
		backpacks.DELETE("/:item_id", controller.RemoveItemFromBackpack)
		backpacks.PUT("/:item_id", controller.UpdateItemQuantity)
	}
}
