package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pokeroster/pokeroster/config"
	"github.com/pokeroster/pokeroster/internal/backpack"
	"github.com/pokeroster/pokeroster/internal/battle"
	"github.com/pokeroster/pokeroster/internal/team"
	"github.com/pokeroster/pokeroster/pkg/metrics"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT
	r.Use(metrics.Middleware())

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>PokeRoster</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>PokeRoster ⚡</h1>
					<p>Trainer roster, teams, backpacks and battles.</p>
					<a href="/swagger/index.html">API docs</a>
				</body>
			</html>
		`))
	})

	// Observability and docs
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	db := config.DB
	cfg := config.GetConfig()

	team.RegisterTeamRoutes(api, db)
	backpack.RegisterBackpackRoutes(api, db)
	battle.RegisterBattleRoutes(api, db, cfg)

	return r
}
