package feed

import (
	"context"
	"strings"
	"sync"

	"talenthub/internal/apperr"
	"talenthub/internal/models"
	"talenthub/internal/moderation"
	"talenthub/internal/repository"
)

// RequestBoard aggregates the service-request queue the same way the feed
// aggregates talents: one ordered primary query, one batched profile join,
// full re-fetch after every mutation.
type RequestBoard struct {
	requests repository.RequestRepository
	profiles repository.ProfileRepository
	machine  *moderation.Machine

	mu      sync.Mutex
	current []models.RequestView
	loading bool
	lastErr error
}

func NewRequestBoard(repo *repository.Repository, machine *moderation.Machine) *RequestBoard {
	return &RequestBoard{
		requests: repo.Request,
		profiles: repo.Profile,
		machine:  machine,
	}
}

func (b *RequestBoard) Load(ctx context.Context) ([]models.RequestView, error) {
	b.setLoading(true)
	defer b.setLoading(false)

	requests, err := b.requests.List(ctx)
	if err != nil {
		b.setError(err)
		return nil, err
	}

	views := make([]models.RequestView, len(requests))
	for i := range requests {
		views[i] = models.RequestView{ServiceRequest: requests[i]}
	}

	err = attachByKey(ctx, views,
		func(v models.RequestView) string { return v.RequesterID },
		b.profiles.GetByIDs,
		func(p models.Profile) string { return p.ProfileID },
		func(v *models.RequestView, p *models.Profile) { v.Requester = p },
	)
	if err != nil {
		b.setError(err)
		return nil, err
	}

	b.mu.Lock()
	b.current = views
	b.lastErr = nil
	b.mu.Unlock()

	return views, nil
}

func (b *RequestBoard) Snapshot() ([]models.RequestView, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current, b.loading, b.lastErr
}

// Submit files a new request for the given requester and re-fetches the
// queue on success.
func (b *RequestBoard) Submit(ctx context.Context, request *models.ServiceRequest) ([]models.RequestView, error) {
	if request.RequesterID == "" {
		return nil, apperr.ErrAuthRequired
	}
	if strings.TrimSpace(request.Description) == "" {
		return nil, apperr.Validation("request description is empty")
	}

	if err := b.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	return b.Load(ctx)
}

// UpdateStatus writes the new status (the store stamps updated_at) and
// re-fetches the queue. Any valid status is accepted regardless of the
// current one.
func (b *RequestBoard) UpdateStatus(ctx context.Context, requestID, status string) ([]models.RequestView, error) {
	if err := b.machine.CheckStatus(status); err != nil {
		return nil, err
	}

	if err := b.requests.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}

	return b.Load(ctx)
}

func (b *RequestBoard) setLoading(loading bool) {
	b.mu.Lock()
	b.loading = loading
	b.mu.Unlock()
}

func (b *RequestBoard) setError(err error) {
	b.mu.Lock()
	b.lastErr = err
	b.mu.Unlock()
}
