// Package feed is the aggregation engine behind the talent showcase. It
// stitches talents, profiles and reactions into per-viewer view models
// without server-side joins, and restores consistency after every mutation
// by a full re-fetch rather than local patching: the displayed state can
// never silently diverge from the store for longer than one round trip.
package feed

import (
	"context"
	"strings"
	"sync"

	"talenthub/internal/apperr"
	"talenthub/internal/models"
	"talenthub/internal/repository"
)

// Remover deletes a talent together with its stored media object.
type Remover interface {
	Remove(ctx context.Context, talentID string) error
}

type Service struct {
	talents   repository.TalentRepository
	profiles  repository.ProfileRepository
	reactions repository.ReactionRepository
	comments  repository.CommentRepository
	remover   Remover

	mu      sync.Mutex
	current []models.TalentView
	loading bool
	lastErr error

	// parameters of the last successful load, reused by mutations when
	// they re-fetch
	lastSort   string
	lastFilter string
	lastViewer string
}

func NewService(repo *repository.Repository, remover Remover) *Service {
	return &Service{
		talents:   repo.Talent,
		profiles:  repo.Profile,
		reactions: repo.Reaction,
		comments:  repo.Comment,
		remover:   remover,
	}
}

// Load runs the fetch-and-merge pipeline: ordered primary query, profile
// join, viewer personalization, then a pure client-side text filter. A feed
// with no talents is an empty list, not an error. On failure the previous
// snapshot stays in place.
func (s *Service) Load(ctx context.Context, sortKey, filterText, viewerID string) ([]models.TalentView, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	talents, err := s.talents.List(ctx, sortKey)
	if err != nil {
		s.setError(err)
		return nil, err
	}

	views := make([]models.TalentView, len(talents))
	for i := range talents {
		views[i] = models.TalentView{Talent: talents[i]}
	}

	err = attachByKey(ctx, views,
		func(v models.TalentView) string { return v.OwnerID },
		s.profiles.GetByIDs,
		func(p models.Profile) string { return p.ProfileID },
		func(v *models.TalentView, p *models.Profile) { v.Owner = p },
	)
	if err != nil {
		s.setError(err)
		return nil, err
	}

	if err := s.annotateLiked(ctx, views, viewerID); err != nil {
		s.setError(err)
		return nil, err
	}

	result := filterViews(views, filterText)

	s.mu.Lock()
	s.current = result
	s.lastErr = nil
	s.lastSort = sortKey
	s.lastFilter = filterText
	s.lastViewer = viewerID
	s.mu.Unlock()

	return result, nil
}

// annotateLiked marks each view with the current viewer's reaction state.
// Without a viewer the flag stays false and no query is issued.
func (s *Service) annotateLiked(ctx context.Context, views []models.TalentView, viewerID string) error {
	if viewerID == "" || len(views) == 0 {
		return nil
	}

	reactions, err := s.reactions.ListByViewer(ctx, viewerID)
	if err != nil {
		return err
	}

	liked := make(map[string]struct{}, len(reactions))
	for _, reaction := range reactions {
		liked[reaction.TalentID] = struct{}{}
	}

	for i := range views {
		_, ok := liked[views[i].TalentID]
		views[i].IsLiked = ok
	}

	return nil
}

// filterViews applies a case-insensitive substring match over title,
// description and tags. An empty filter returns the input unchanged.
func filterViews(views []models.TalentView, filterText string) []models.TalentView {
	needle := strings.ToLower(strings.TrimSpace(filterText))
	if needle == "" {
		return views
	}

	matched := []models.TalentView{}
	for _, view := range views {
		if matchesFilter(view, needle) {
			matched = append(matched, view)
		}
	}
	return matched
}

func matchesFilter(view models.TalentView, needle string) bool {
	if strings.Contains(strings.ToLower(view.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(view.Description), needle) {
		return true
	}
	for _, tag := range view.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// Snapshot returns the last materialized view list together with the
// loading flag and last load error. The slice is shared but never mutated
// after publication.
func (s *Service) Snapshot() ([]models.TalentView, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.loading, s.lastErr
}

// ToggleReaction flips the viewer's like on a talent: liked state is read
// from the last-loaded view, the matching reaction row is deleted or a new
// one inserted, and the whole feed is re-fetched. like_count is maintained
// by the store's reaction bookkeeping, so no local increment happens here.
func (s *Service) ToggleReaction(ctx context.Context, talentID, viewerID string) ([]models.TalentView, error) {
	if viewerID == "" {
		return nil, apperr.ErrAuthRequired
	}

	if s.isLiked(talentID) {
		if err := s.reactions.Delete(ctx, talentID, viewerID); err != nil {
			return nil, err
		}
	} else {
		if err := s.reactions.Create(ctx, talentID, viewerID); err != nil {
			return nil, err
		}
	}

	return s.reload(ctx, viewerID)
}

// DeleteTalent removes a talent after an explicit confirmation from the
// caller, then re-fetches the feed.
func (s *Service) DeleteTalent(ctx context.Context, talentID string, confirmed bool) ([]models.TalentView, error) {
	if !confirmed {
		return nil, apperr.Validation("deletion requires confirmation")
	}

	if err := s.remover.Remove(ctx, talentID); err != nil {
		return nil, err
	}

	return s.reload(ctx, s.lastViewerID())
}

// Thread loads one talent's comment thread with author profiles attached,
// independent of the feed snapshot.
func (s *Service) Thread(ctx context.Context, talentID string) ([]models.CommentView, error) {
	comments, err := s.comments.ListByTalent(ctx, talentID)
	if err != nil {
		return nil, err
	}

	views := make([]models.CommentView, len(comments))
	for i := range comments {
		views[i] = models.CommentView{Comment: comments[i]}
	}

	err = attachByKey(ctx, views,
		func(v models.CommentView) string { return v.AuthorID },
		s.profiles.GetByIDs,
		func(p models.Profile) string { return p.ProfileID },
		func(v *models.CommentView, p *models.Profile) { v.Author = p },
	)
	if err != nil {
		return nil, err
	}

	return views, nil
}

// PostComment appends to a talent's thread and re-fetches that thread only;
// the feed snapshot is untouched.
func (s *Service) PostComment(ctx context.Context, talentID, viewerID, body string) ([]models.CommentView, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperr.Validation("comment body is empty")
	}
	if viewerID == "" {
		return nil, apperr.ErrAuthRequired
	}

	comment := &models.Comment{
		TalentID: talentID,
		AuthorID: viewerID,
		Body:     strings.TrimSpace(body),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.Thread(ctx, talentID)
}

func (s *Service) reload(ctx context.Context, viewerID string) ([]models.TalentView, error) {
	s.mu.Lock()
	sortKey, filterText := s.lastSort, s.lastFilter
	s.mu.Unlock()
	if sortKey == "" {
		sortKey = models.SortRecent
	}
	return s.Load(ctx, sortKey, filterText, viewerID)
}

func (s *Service) isLiked(talentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.current {
		if s.current[i].TalentID == talentID {
			return s.current[i].IsLiked
		}
	}
	return false
}

func (s *Service) lastViewerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastViewer
}

func (s *Service) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

func (s *Service) setError(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}
