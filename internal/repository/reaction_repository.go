package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"talenthub/internal/apperr"
	"talenthub/internal/models"
)

type reactionRepository struct {
	db *sqlx.DB
}

func NewReactionRepository(db *sqlx.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// ListByViewer returns every reaction the viewer has placed, in one query.
// The personalization resolver turns this into a liked-id set.
func (r *reactionRepository) ListByViewer(ctx context.Context, viewerID string) ([]models.Reaction, error) {
	query := `SELECT * FROM reactions WHERE profile_id = $1`

	reactions := []models.Reaction{}
	if err := r.db.SelectContext(ctx, &reactions, query, viewerID); err != nil {
		return nil, apperr.Store("listing reactions by viewer", err)
	}

	return reactions, nil
}

func (r *reactionRepository) Create(ctx context.Context, talentID, viewerID string) error {
	query := `
		INSERT INTO reactions (talent_id, profile_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, talentID, viewerID, time.Now())
	if err != nil {
		return apperr.Store("creating reaction", err)
	}

	return nil
}

// Delete removes the reaction by its composite key. Deleting a reaction
// that does not exist is not an error; the store trigger only decrements
// like_count for rows actually removed.
func (r *reactionRepository) Delete(ctx context.Context, talentID, viewerID string) error {
	query := `DELETE FROM reactions WHERE talent_id = $1 AND profile_id = $2`

	_, err := r.db.ExecContext(ctx, query, talentID, viewerID)
	if err != nil {
		return apperr.Store("deleting reaction", err)
	}

	return nil
}
