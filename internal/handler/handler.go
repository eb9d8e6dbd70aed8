package handlers

import (
	"github.com/go-playground/validator/v10"

	"talenthub/internal/config"
	"talenthub/internal/feed"
	"talenthub/internal/logger"
	"talenthub/internal/moderation"
	"talenthub/internal/repository"
	"talenthub/internal/service"
)

type Handlers struct {
	Feed        *feed.Service
	Board       *feed.RequestBoard
	Moderation  *moderation.Service
	Talent      service.TalentService
	Auth        service.AuthService
	ProfileRepo repository.ProfileRepository
	TalentRepo  repository.TalentRepository
	StatsRepo   repository.StatsRepository
	Cfg         *config.Config
	Log         *logger.Logger
	Validate    *validator.Validate
}

func NewHandlers(
	feedService *feed.Service,
	board *feed.RequestBoard,
	mod *moderation.Service,
	services *service.Service,
	repo *repository.Repository,
	cfg *config.Config,
	log *logger.Logger,
) *Handlers {
	return &Handlers{
		Feed:        feedService,
		Board:       board,
		Moderation:  mod,
		Talent:      services.Talent,
		Auth:        services.Auth,
		ProfileRepo: repo.Profile,
		TalentRepo:  repo.Talent,
		StatsRepo:   repo.Stats,
		Cfg:         cfg,
		Log:         log,
		Validate:    validator.New(),
	}
}
