package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"talenthub/internal/apperr"
	"talenthub/internal/models"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile *models.Profile, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Store("hashing password", err)
	}

	if profile.ProfileID == "" {
		profile.ProfileID = uuid.New().String()
	}
	profile.PasswordHash = string(hashedPassword)
	if profile.Role == "" {
		profile.Role = models.RoleUser
	}

	query := `
		INSERT INTO profiles
		(profile_id, name, email, password_hash, role, department, year, refresh_token, refresh_token_expiry_time)
		VALUES
		(:profile_id, :name, :email, :password_hash, :role, :department, :year, :refresh_token, :refresh_token_expiry_time)
	`

	_, err = r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return apperr.Store("creating profile", err)
	}

	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, profileID string) (*models.Profile, error) {
	var profile models.Profile

	query := `SELECT * FROM profiles WHERE profile_id = $1`

	err := r.db.GetContext(ctx, &profile, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("profile %s", profileID)
		}
		return nil, apperr.Store("fetching profile", err)
	}

	return &profile, nil
}

// GetByIDs is the batched-membership read used by the join resolver: one
// query no matter how many ids. Missing ids are simply absent from the
// result; the caller decides what that means.
func (r *profileRepository) GetByIDs(ctx context.Context, profileIDs []string) ([]models.Profile, error) {
	if len(profileIDs) == 0 {
		return []models.Profile{}, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM profiles WHERE profile_id IN (?)`, profileIDs)
	if err != nil {
		return nil, apperr.Store("building profile id query", err)
	}
	query = r.db.Rebind(query)

	profiles := []models.Profile{}
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, apperr.Store("fetching profiles by ids", err)
	}

	return profiles, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile

	query := `SELECT * FROM profiles WHERE email = $1`

	err := r.db.GetContext(ctx, &profile, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("profile with email %s", email)
		}
		return nil, apperr.Store("fetching profile by email", err)
	}

	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	profiles := []models.Profile{}

	query := `SELECT * FROM profiles ORDER BY name`

	if err := r.db.SelectContext(ctx, &profiles, query); err != nil {
		return nil, apperr.Store("listing profiles", err)
	}

	return profiles, nil
}

func (r *profileRepository) UpdateRole(ctx context.Context, profileID, role string) error {
	query := `UPDATE profiles SET role = $1 WHERE profile_id = $2`

	result, err := r.db.ExecContext(ctx, query, role, profileID)
	if err != nil {
		return apperr.Store("updating role", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Store("checking updated rows", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("profile %s", profileID)
	}

	return nil
}

func (r *profileRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Profile, error) {
	profile, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password))
	if err != nil {
		return nil, apperr.Validation("invalid password")
	}

	return profile, nil
}

func (r *profileRepository) UpdateRefreshToken(ctx context.Context, profileID, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE profiles
		SET refresh_token = $1, refresh_token_expiry_time = $2
		WHERE profile_id = $3
	`

	_, err := r.db.ExecContext(ctx, query, refreshToken, expiryTime, profileID)
	if err != nil {
		return apperr.Store("updating refresh token", err)
	}

	return nil
}

func (r *profileRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error) {
	var profile models.Profile

	query := `
		SELECT * FROM profiles
		WHERE refresh_token = $1
		AND refresh_token_expiry_time > CURRENT_TIMESTAMP
	`

	err := r.db.GetContext(ctx, &profile, query, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("refresh token invalid or expired")
		}
		return nil, apperr.Store("fetching profile by refresh token", err)
	}

	return &profile, nil
}
