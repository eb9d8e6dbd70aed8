package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"talenthub/internal/models"
)

type TalentRepository interface {
	Create(ctx context.Context, talent *models.Talent) error
	GetByID(ctx context.Context, talentID string) (*models.Talent, error)
	List(ctx context.Context, sortKey string) ([]models.Talent, error)
	Delete(ctx context.Context, talentID string) error
}

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile, password string) error
	GetByID(ctx context.Context, profileID string) (*models.Profile, error)
	GetByIDs(ctx context.Context, profileIDs []string) ([]models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	UpdateRole(ctx context.Context, profileID, role string) error
	VerifyPassword(ctx context.Context, email, password string) (*models.Profile, error)
	UpdateRefreshToken(ctx context.Context, profileID, refreshToken string, expiryTime time.Time) error
	GetByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error)
}

type ReactionRepository interface {
	ListByViewer(ctx context.Context, viewerID string) ([]models.Reaction, error)
	Create(ctx context.Context, talentID, viewerID string) error
	Delete(ctx context.Context, talentID, viewerID string) error
}

type CommentRepository interface {
	ListByTalent(ctx context.Context, talentID string) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
}

type RequestRepository interface {
	Create(ctx context.Context, request *models.ServiceRequest) error
	List(ctx context.Context) ([]models.ServiceRequest, error)
	UpdateStatus(ctx context.Context, requestID, status string) error
}

type StatsRepository interface {
	CollectionCounts(ctx context.Context) (map[string]int, error)
}

type Repository struct {
	Talent   TalentRepository
	Profile  ProfileRepository
	Reaction ReactionRepository
	Comment  CommentRepository
	Request  RequestRepository
	Stats    StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Talent:   NewTalentRepository(db),
		Profile:  NewProfileRepository(db),
		Reaction: NewReactionRepository(db),
		Comment:  NewCommentRepository(db),
		Request:  NewRequestRepository(db),
		Stats:    NewStatsRepository(db),
	}
}
