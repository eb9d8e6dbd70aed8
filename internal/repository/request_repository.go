package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"

	"talenthub/internal/apperr"
	"talenthub/internal/models"
)

type requestRepository struct {
	db *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *models.ServiceRequest) error {
	if request.RequestID == "" {
		request.RequestID = xid.New().String()
	}
	if request.Status == "" {
		request.Status = models.StatusPending
	}
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	query := `
		INSERT INTO service_requests
		(request_id, requester_id, category, building, room, status, priority, description, created_at, updated_at)
		VALUES
		(:request_id, :requester_id, :category, :building, :room, :status, :priority, :description, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, request)
	if err != nil {
		return apperr.Store("creating service request", err)
	}

	return nil
}

func (r *requestRepository) List(ctx context.Context) ([]models.ServiceRequest, error) {
	query := `SELECT * FROM service_requests ORDER BY created_at DESC`

	requests := []models.ServiceRequest{}
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, apperr.Store("listing service requests", err)
	}

	return requests, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, requestID, status string) error {
	query := `
		UPDATE service_requests SET
			status = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE request_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, requestID)
	if err != nil {
		return apperr.Store("updating request status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Store("checking updated rows", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("service request %s", requestID)
	}

	return nil
}
