package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"talenthub/internal/apperr"
	"talenthub/internal/config"
	"talenthub/internal/models"
	"talenthub/internal/repository"
)

// AuthService is the session collaborator: it mints and validates the
// tokens that supply viewer identity to the aggregation layer.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.Profile, error)
	Login(ctx context.Context, email, password string) (*models.Profile, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.Profile, string, string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
}

type RegisterRequest struct {
	Name       string
	Email      string
	Password   string
	Department string
	Year       string
}

type authService struct {
	profiles repository.ProfileRepository
	cfg      *config.Config
}

func NewAuthService(profiles repository.ProfileRepository, cfg *config.Config) AuthService {
	return &authService{profiles: profiles, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.Profile, error) {
	existing, err := s.profiles.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, apperr.Validation("profile with email %s already exists", req.Email)
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	profile := &models.Profile{
		Name:                   req.Name,
		Email:                  req.Email,
		Role:                   models.RoleUser,
		Department:             req.Department,
		Year:                   req.Year,
		RefreshToken:           refreshToken,
		RefreshTokenExpiryTime: refreshTokenExpiry,
	}

	if err := s.profiles.CreateProfile(ctx, profile, req.Password); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Profile, string, string, error) {
	profile, err := s.profiles.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", fmt.Errorf("authenticating: %w", err)
	}

	accessToken, err := s.generateAccessToken(profile)
	if err != nil {
		return nil, "", "", err
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	if err := s.profiles.UpdateRefreshToken(ctx, profile.ProfileID, refreshToken, refreshTokenExpiry); err != nil {
		return nil, "", "", err
	}

	return profile, accessToken, refreshToken, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*models.Profile, string, string, error) {
	profile, err := s.profiles.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, err := s.generateAccessToken(profile)
	if err != nil {
		return nil, "", "", err
	}

	newRefreshToken, refreshTokenExpiry := s.generateRefreshToken()

	if err := s.profiles.UpdateRefreshToken(ctx, profile.ProfileID, newRefreshToken, refreshTokenExpiry); err != nil {
		return nil, "", "", err
	}

	return profile, accessToken, newRefreshToken, nil
}

func (s *authService) generateAccessToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"profileId": profile.ProfileID,
		"email":     profile.Email,
		"role":      profile.Role,
		"exp":       time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) generateRefreshToken() (string, time.Time) {
	return uuid.New().String(), time.Now().Add(s.cfg.RefreshTokenDuration)
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return token, nil
}
