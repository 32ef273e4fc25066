package app

import (
	"log"
	"socialgram/internal/config"
	"socialgram/internal/database"
	"socialgram/internal/repository"
	"socialgram/internal/service"
	"socialgram/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, storage.TokenBlacklist) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// connection Redis (token blacklist)
	blacklist, err := storage.NewRedisBlacklist(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к Redis: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, blacklist)

	return db, repo, services, blacklist
}
