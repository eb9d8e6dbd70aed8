package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"

	"talenthub/internal/apperr"
	"talenthub/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByTalent returns the thread in creation order, oldest first.
func (r *commentRepository) ListByTalent(ctx context.Context, talentID string) ([]models.Comment, error) {
	query := `SELECT * FROM comments WHERE talent_id = $1 ORDER BY created_at ASC`

	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, talentID); err != nil {
		return nil, apperr.Store("listing comments", err)
	}

	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = xid.New().String()
	}
	comment.CreatedAt = time.Now()

	query := `
		INSERT INTO comments (comment_id, talent_id, author_id, body, created_at)
		VALUES (:comment_id, :talent_id, :author_id, :body, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return apperr.Store("creating comment", err)
	}

	return nil
}
