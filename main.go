package main

import (
	"flag"
	"log"

	"github.com/pokeroster/pokeroster/config"
	_ "github.com/pokeroster/pokeroster/docs"
	"github.com/pokeroster/pokeroster/internal/backpack"
	"github.com/pokeroster/pokeroster/internal/battle"
	"github.com/pokeroster/pokeroster/internal/item"
	"github.com/pokeroster/pokeroster/internal/pokemon"
	"github.com/pokeroster/pokeroster/internal/seed"
	"github.com/pokeroster/pokeroster/internal/team"
	"github.com/pokeroster/pokeroster/internal/trainer"
	"github.com/pokeroster/pokeroster/routes"
)

// @title PokeRoster REST API
// @version 1.0
// @description Trainer roster service: teams, backpacks, battles and the leaderboard.
// @host localhost:8090
// @BasePath /api
func main() {
	seedData := flag.Bool("seed", false, "load development fixture data and exit")
	flag.Parse()

	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&trainer.Trainer{}, &pokemon.Pokemon{}, &item.Item{},
		&team.TeamSlot{}, &backpack.BackpackEntry{}, &battle.Battle{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if *seedData {
		if err := seed.Run(config.DB); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		return
	}

	r := routes.SetupRoutes()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
