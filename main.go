package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"drjackson/internal/api"
	"drjackson/internal/config"
	"drjackson/internal/persona"
	"drjackson/internal/service/chat"
	"drjackson/internal/service/intake"
	"drjackson/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfgPath := os.Getenv("DRJACKSON_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store := session.NewStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	cleanCtx, cleanCancel := context.WithCancel(context.Background())
	defer cleanCancel()
	store.StartCleaner(cleanCtx, time.Duration(cfg.CleanupIntervalMinutes)*time.Minute)

	drJackson := persona.DrJackson()
	responder := persona.NewResponder(rand.New(rand.NewSource(time.Now().UnixNano())))
	handlers := api.NewHandler(drJackson, intake.NewService(drJackson), chat.NewService(responder), store)

	router := gin.Default()
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
		router.Use(cors.New(corsCfg))
	}
	handlers.RegisterRoutes(router)

	addr := cfg.ServerAddress
	if addr == "" {
		addr = ":8090"
	}
	log.Printf("listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
