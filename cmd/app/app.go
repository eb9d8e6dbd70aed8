package app

import (
	"talenthub/internal/config"
	"talenthub/internal/database"
	"talenthub/internal/feed"
	"talenthub/internal/logger"
	"talenthub/internal/moderation"
	"talenthub/internal/repository"
	"talenthub/internal/service"
	"talenthub/internal/storage"
)

type App struct {
	DB         *database.DB
	Repo       *repository.Repository
	Services   *service.Service
	Feed       *feed.Service
	Board      *feed.RequestBoard
	Moderation *moderation.Service
}

func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return nil, err
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		return nil, err
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient, log)

	machine := moderation.NewMachine(cfg.ProtectedAdminIDs)

	return &App{
		DB:         db,
		Repo:       repo,
		Services:   services,
		Feed:       feed.NewService(repo, services.Talent),
		Board:      feed.NewRequestBoard(repo, machine),
		Moderation: moderation.NewService(machine, repo.Profile),
	}, nil
}
