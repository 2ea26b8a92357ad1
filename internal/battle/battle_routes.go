package battle

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pokeroster/pokeroster/config"
	"github.com/pokeroster/pokeroster/internal/team"
	"github.com/pokeroster/pokeroster/internal/trainer"
)

// RegisterBattleRoutes wires the battle recorder and leaderboard endpoints.
func RegisterBattleRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	battleRepo := NewBattleRepository(db)
	trainerRepo := trainer.NewTrainerRepository(db)
	teamRepo := team.NewTeamRepository(db)

	service := NewBattleService(battleRepo, trainerRepo, teamRepo)
	controller := NewBattleController(service, appConfig)

	battles := router.Group("/battles")
	{
		battles.POST("", controller.CreateBattle)
		battles.GET("", controller.GetAllBattles)
		battles.GET("/leaderboard", controller.GetLeaderboard)
		battles.DELETE("/:battle_id", controller.DeleteBattle)
	}

	router.GET("/trainers/:trainer_id/battles", controller.GetTrainerBattles)
}
