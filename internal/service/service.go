package service

import (
	"talenthub/internal/config"
	"talenthub/internal/logger"
	"talenthub/internal/repository"
	"talenthub/internal/storage"
)

type Service struct {
	Talent TalentService
	Auth   AuthService
}

func NewService(repo *repository.Repository, cfg *config.Config, store storage.Storage, log *logger.Logger) *Service {
	return &Service{
		Talent: NewTalentService(repo.Talent, store, cfg, log),
		Auth:   NewAuthService(repo.Profile, cfg),
	}
}
