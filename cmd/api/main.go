package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-chain/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-chain/internal/db"
	"github.com/BruksfildServices01/barber-chain/internal/logging"
	"github.com/BruksfildServices01/barber-chain/internal/middleware"
	"github.com/BruksfildServices01/barber-chain/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	db := dbpkg.NewDB(cfg, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
