package feed

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"talenthub/internal/models"
)

type MockTalentRepository struct {
	mock.Mock
}

func (m *MockTalentRepository) Create(ctx context.Context, talent *models.Talent) error {
	args := m.Called(ctx, talent)
	return args.Error(0)
}

func (m *MockTalentRepository) GetByID(ctx context.Context, talentID string) (*models.Talent, error) {
	args := m.Called(ctx, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Talent), args.Error(1)
}

func (m *MockTalentRepository) List(ctx context.Context, sortKey string) ([]models.Talent, error) {
	args := m.Called(ctx, sortKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Talent), args.Error(1)
}

func (m *MockTalentRepository) Delete(ctx context.Context, talentID string) error {
	args := m.Called(ctx, talentID)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile, password string) error {
	args := m.Called(ctx, profile, password)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, profileID string) (*models.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByIDs(ctx context.Context, profileIDs []string) ([]models.Profile, error) {
	args := m.Called(ctx, profileIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateRole(ctx context.Context, profileID, role string) error {
	args := m.Called(ctx, profileID, role)
	return args.Error(0)
}

func (m *MockProfileRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Profile, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateRefreshToken(ctx context.Context, profileID, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, profileID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) ListByViewer(ctx context.Context, viewerID string) ([]models.Reaction, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reaction), args.Error(1)
}

func (m *MockReactionRepository) Create(ctx context.Context, talentID, viewerID string) error {
	args := m.Called(ctx, talentID, viewerID)
	return args.Error(0)
}

func (m *MockReactionRepository) Delete(ctx context.Context, talentID, viewerID string) error {
	args := m.Called(ctx, talentID, viewerID)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListByTalent(ctx context.Context, talentID string) ([]models.Comment, error) {
	args := m.Called(ctx, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, request *models.ServiceRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) List(ctx context.Context) ([]models.ServiceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceRequest), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, requestID, status string) error {
	args := m.Called(ctx, requestID, status)
	return args.Error(0)
}

type MockRemover struct {
	mock.Mock
}

func (m *MockRemover) Remove(ctx context.Context, talentID string) error {
	args := m.Called(ctx, talentID)
	return args.Error(0)
}

// fakeReactionRepository keeps reactions in memory so toggle sequences can
// be exercised end to end, including the store-side uniqueness invariant.
type fakeReactionRepository struct {
	reactions map[string]map[string]bool // viewerID -> talentID -> liked
}

func newFakeReactionRepository() *fakeReactionRepository {
	return &fakeReactionRepository{reactions: map[string]map[string]bool{}}
}

func (f *fakeReactionRepository) ListByViewer(ctx context.Context, viewerID string) ([]models.Reaction, error) {
	var result []models.Reaction
	for talentID := range f.reactions[viewerID] {
		result = append(result, models.Reaction{TalentID: talentID, ProfileID: viewerID})
	}
	return result, nil
}

func (f *fakeReactionRepository) Create(ctx context.Context, talentID, viewerID string) error {
	if f.reactions[viewerID] == nil {
		f.reactions[viewerID] = map[string]bool{}
	}
	f.reactions[viewerID][talentID] = true
	return nil
}

func (f *fakeReactionRepository) Delete(ctx context.Context, talentID, viewerID string) error {
	delete(f.reactions[viewerID], talentID)
	return nil
}

func (f *fakeReactionRepository) count(viewerID, talentID string) int {
	if f.reactions[viewerID][talentID] {
		return 1
	}
	return 0
}
