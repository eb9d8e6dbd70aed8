package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"talenthub/internal/apperr"
	"talenthub/internal/models"
)

type talentRepository struct {
	db *sqlx.DB
}

func NewTalentRepository(db *sqlx.DB) TalentRepository {
	return &talentRepository{db: db}
}

func (r *talentRepository) Create(ctx context.Context, talent *models.Talent) error {
	if talent.TalentID == "" {
		talent.TalentID = uuid.New().String()
	}
	talent.CreatedAt = time.Now()

	query := `
		INSERT INTO talents
		(talent_id, owner_id, title, description, category, tags, media_url, media_type, object_name, like_count, created_at)
		VALUES
		(:talent_id, :owner_id, :title, :description, :category, :tags, :media_url, :media_type, :object_name, :like_count, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, talent)
	if err != nil {
		return apperr.Store("creating talent", err)
	}

	return nil
}

func (r *talentRepository) GetByID(ctx context.Context, talentID string) (*models.Talent, error) {
	query := `SELECT * FROM talents WHERE talent_id = $1`

	var talent models.Talent
	err := r.db.GetContext(ctx, &talent, query, talentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("talent %s", talentID)
		}
		return nil, apperr.Store("fetching talent", err)
	}

	return &talent, nil
}

// List returns every talent ordered by the given sort key, newest or most
// liked first. Unknown keys fall back to creation time.
func (r *talentRepository) List(ctx context.Context, sortKey string) ([]models.Talent, error) {
	query := `SELECT * FROM talents ORDER BY created_at DESC`
	if sortKey == models.SortPopular {
		query = `SELECT * FROM talents ORDER BY like_count DESC`
	}

	talents := []models.Talent{}
	err := r.db.SelectContext(ctx, &talents, query)
	if err != nil {
		return nil, apperr.Store("listing talents", err)
	}

	return talents, nil
}

func (r *talentRepository) Delete(ctx context.Context, talentID string) error {
	query := `DELETE FROM talents WHERE talent_id = $1`

	result, err := r.db.ExecContext(ctx, query, talentID)
	if err != nil {
		return apperr.Store("deleting talent", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Store("checking deleted rows", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("talent %s", talentID)
	}

	return nil
}
