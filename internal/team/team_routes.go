package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pokeroster/pokeroster/internal/pokemon"
	"github.com/pokeroster/pokeroster/internal/trainer"
)

// RegisterTeamRoutes wires the team manager endpoints under /trainers/:trainer_id/team.
func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB) {
	teamRepo := NewTeamRepository(db)
	trainerRepo := trainer.NewTrainerRepository(db)
	pokemonRepo := pokemon.NewPokemonRepository(db)

	service := NewTeamService(teamRepo, trainerRepo, pokemonRepo)
	controller := NewTeamController(service)

	teams := router.Group("/trainers/:trainer_id/team")
	{
		teams.GET("", controller.GetTrainerTeam)
		teams.POST("", controller.AddPokemonToTeam)
		teams.DELETE("/:pokemon_id", controller.RemovePokemonFromTeam)
		teams.PUT("/:pokemon_id/position", controller.UpdatePokemonPosition)
	}
}
