package main

import (
	"os"
	"time"

	"github.com/featherform/featherform/config"
	"github.com/featherform/featherform/db"
	"github.com/featherform/featherform/internal/api/middleware"
	"github.com/featherform/featherform/internal/api/routes"
	"github.com/featherform/featherform/internal/domain/commerce"
	"github.com/featherform/featherform/internal/domain/customer"
	"github.com/featherform/featherform/internal/domain/form"
	"github.com/featherform/featherform/internal/domain/response"
	"github.com/featherform/featherform/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadConfig()
	db.Init()
	storage.InitMinio()

	if err := db.DB.AutoMigrate(
		&form.Form{},
		&form.Field{},
		&form.FieldOption{},
		&form.Block{},
		&form.StoreConnection{},
		&customer.Customer{},
		&response.Response{},
		&response.ResponseField{},
		&commerce.InventoryItem{},
		&commerce.InventoryLevel{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB)

	addr := ":" + config.ServerPort
	log.Info().Str("addr", addr).Msg("starting api server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
