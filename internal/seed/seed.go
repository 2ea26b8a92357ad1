// Package seed loads a development fixture set: a handful of trainers,
// a pokemon roster and the item catalog. Intended for local environments;
// it skips loading when trainers already exist.
package seed

import (
	"log"

	"gorm.io/gorm"

	"github.com/pokeroster/pokeroster/internal/item"
	"github.com/pokeroster/pokeroster/internal/models"
	"github.com/pokeroster/pokeroster/internal/pokemon"
	"github.com/pokeroster/pokeroster/internal/trainer"
)

// Run inserts the fixture data unless the database already has trainers.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&trainer.Trainer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed skipped: trainers already present")
		return nil
	}

	trainerRepo := trainer.NewTrainerRepository(db)
	pokemonRepo := pokemon.NewPokemonRepository(db)
	itemRepo := item.NewItemRepository(db)

	trainers := []trainer.Trainer{
		{Name: "Ash Ketchum", Gender: trainer.GenderMale, Region: trainer.RegionKanto},
		{Name: "Misty", Gender: trainer.GenderFemale, Region: trainer.RegionKanto},
		{Name: "Brock", Gender: trainer.GenderMale, Region: trainer.RegionKanto},
		{Name: "May", Gender: trainer.GenderFemale, Region: trainer.RegionHoenn},
	}
	for i := range trainers {
		if err := trainerRepo.CreateTrainer(&trainers[i]); err != nil {
			return err
		}
	}

	water := pokemon.TypeWater
	flying := pokemon.TypeFlying
	poison := pokemon.TypePoison
	pokemons := []pokemon.Pokemon{
		{Name: "Pikachu", TypePrimary: pokemon.TypeElectric, Moves: models.StringSlice{"thunderbolt", "quick attack", "iron tail"}, Nature: pokemon.NatureJolly, Level: 25},
		{Name: "Charizard", TypePrimary: pokemon.TypeFire, TypeSecondary: &flying, Moves: models.StringSlice{"flamethrower", "dragon claw", "fly", "slash"}, Nature: pokemon.NatureAdamant, Level: 50},
		{Name: "Squirtle", TypePrimary: pokemon.TypeWater, Moves: models.StringSlice{"water gun", "tackle"}, Nature: pokemon.NatureBold, Level: 12},
		{Name: "Bulbasaur", TypePrimary: pokemon.TypeGrass, TypeSecondary: &poison, Moves: models.StringSlice{"vine whip", "razor leaf"}, Nature: pokemon.NatureCalm, Level: 14},
		{Name: "Staryu", TypePrimary: water, Moves: models.StringSlice{"swift", "water gun"}, Nature: pokemon.NatureTimid, Level: 18},
		{Name: "Onix", TypePrimary: pokemon.TypeRock, Moves: models.StringSlice{"rock throw", "bind", "dig"}, Nature: pokemon.NatureBrave, Level: 22},
		{Name: "Geodude", TypePrimary: pokemon.TypeRock, Moves: models.StringSlice{"tackle", "rock throw"}, Nature: pokemon.NatureImpish, Level: 16},
		{Name: "Psyduck", TypePrimary: water, Moves: models.StringSlice{"confusion", "scratch"}, Nature: pokemon.NatureHardy, Level: 15},
	}
	for i := range pokemons {
		if err := pokemonRepo.CreatePokemon(&pokemons[i]); err != nil {
			return err
		}
	}

	items := []item.Item{
		{Name: "Poke Ball", Type: item.TypePokeball, Description: "A device for catching wild Pokemon.", Price: 200},
		{Name: "Great Ball", Type: item.TypePokeball, Description: "A good, high-performance Ball.", Price: 600},
		{Name: "Potion", Type: item.TypePotion, Description: "Restores 20 HP.", Price: 300},
		{Name: "Super Potion", Type: item.TypePotion, Description: "Restores 50 HP.", Price: 700},
		{Name: "Antidote", Type: item.TypeAntidote, Description: "Cures poison.", Price: 100},
		{Name: "Oran Berry", Type: item.TypeBerry, Description: "A berry that restores a little HP.", Price: 50},
		{Name: "Revive", Type: item.TypeRevive, Description: "Revives a fainted Pokemon.", Price: 1500},
		{Name: "Fire Stone", Type: item.TypeStone, Description: "Makes certain Pokemon evolve.", Price: 2100},
		{Name: "TM01", Type: item.TypeTM, Description: "Teaches a move to a compatible Pokemon.", Price: 3000},
	}
	for i := range items {
		if err := itemRepo.CreateItem(&items[i]); err != nil {
			return err
		}
	}

	log.Printf("Seed complete: %d trainers, %d pokemon, %d items", len(trainers), len(pokemons), len(items))
	return nil
}
