package main

import (
	"context"
	"log"

	"anoa.com/schoolstaff/internal/bootstrap"
	"anoa.com/schoolstaff/internal/config"
	"anoa.com/schoolstaff/internal/server"
	"anoa.com/schoolstaff/pkg/database"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedSuperuser(db, cfg.SuperuserEmail, cfg.SuperuserPassword); err != nil {
		log.Fatalf("failed to seed superuser: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis unavailable, session revocation disabled: %v", err)
			redisClient = nil
		}
	}

	srv := server.NewServer(db, redisClient, cfg)

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
