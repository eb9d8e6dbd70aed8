package moderation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"talenthub/internal/apperr"
	"talenthub/internal/models"
)

type mockProfileRepository struct {
	mock.Mock
}

func (m *mockProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile, password string) error {
	args := m.Called(ctx, profile, password)
	return args.Error(0)
}

func (m *mockProfileRepository) GetByID(ctx context.Context, profileID string) (*models.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *mockProfileRepository) GetByIDs(ctx context.Context, profileIDs []string) ([]models.Profile, error) {
	args := m.Called(ctx, profileIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *mockProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *mockProfileRepository) List(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *mockProfileRepository) UpdateRole(ctx context.Context, profileID, role string) error {
	args := m.Called(ctx, profileID, role)
	return args.Error(0)
}

func (m *mockProfileRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Profile, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *mockProfileRepository) UpdateRefreshToken(ctx context.Context, profileID, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, profileID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *mockProfileRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func TestMachine_CheckRole(t *testing.T) {
	machine := NewMachine([]string{"root-admin", "founder"})

	t.Run("protected identities are refused", func(t *testing.T) {
		err := machine.CheckRole("root-admin", models.RoleUser)
		assert.ErrorIs(t, err, apperr.ErrForbiddenTransition)

		err = machine.CheckRole("founder", models.RoleAdmin)
		assert.ErrorIs(t, err, apperr.ErrForbiddenTransition)
	})

	t.Run("unknown role is a validation failure", func(t *testing.T) {
		err := machine.CheckRole("someone", "superadmin")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("any role is directly settable on unprotected profiles", func(t *testing.T) {
		assert.NoError(t, machine.CheckRole("someone", models.RoleAdmin))
		assert.NoError(t, machine.CheckRole("someone", models.RoleUser))
	})
}

func TestMachine_CheckStatus(t *testing.T) {
	machine := NewMachine(nil)

	for _, status := range []string{models.StatusPending, models.StatusInProgress, models.StatusCompleted} {
		assert.NoError(t, machine.CheckStatus(status))
	}
	assert.ErrorIs(t, machine.CheckStatus("Done"), apperr.ErrValidation)
}

func TestService_SetRole(t *testing.T) {
	ctx := context.Background()

	t.Run("protected identity change never reaches the store", func(t *testing.T) {
		profiles := new(mockProfileRepository)
		svc := NewService(NewMachine([]string{"root-admin"}), profiles)

		err := svc.SetRole(ctx, "root-admin", models.RoleUser)

		assert.ErrorIs(t, err, apperr.ErrForbiddenTransition)
		profiles.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unprotected profile role is updated", func(t *testing.T) {
		profiles := new(mockProfileRepository)
		svc := NewService(NewMachine([]string{"root-admin"}), profiles)

		profiles.On("UpdateRole", ctx, "alice", models.RoleAdmin).Return(nil).Once()

		err := svc.SetRole(ctx, "alice", models.RoleAdmin)

		require.NoError(t, err)
		profiles.AssertExpectations(t)
	})
}
