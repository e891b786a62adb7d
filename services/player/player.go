package player

import (
	"context"
	"fmt"
	"time"

	"goodrunss/database/repository/player"
	"goodrunss/models"
	"goodrunss/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// DefaultPlayerService is the production implementation.
type DefaultPlayerService struct {
	Repo playerRepo.PlayerRepository
}

// Register creates a player account and signs them in.
func (s *DefaultPlayerService) Register(req RegisterRequest) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	p := &models.Player{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Email:          req.Email,
		City:           req.City,
		FavoriteSports: req.FavoriteSports,
		SkillLevel:     req.SkillLevel,
		Security:       models.PlayerSecurity{PasswordHash: string(hash)},
		LastActiveAt:   time.Now(),
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return s.issueToken(p)
}

// Authenticate verifies credentials and issues a fresh session token.
func (s *DefaultPlayerService) Authenticate(email, password string) (*AuthResponse, error) {
	p, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch player", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if p == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.Security.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := s.Repo.TouchLastActive(p.ID); err != nil {
		utils.GetLogger().Warn("Authenticate: failed to touch last active", zap.Error(err))
	}

	return s.issueToken(p)
}

// issueToken signs a JWT, persists its hash, and primes the auth cache.
func (s *DefaultPlayerService) issueToken(p *models.Player) (*AuthResponse, error) {
	token, err := utils.GenerateToken(p.ID, p.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(p.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to persist token hash: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + p.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	out := *p
	out.Security = models.PlayerSecurity{}
	return &AuthResponse{Player: out, Token: token}, nil
}

func (s *DefaultPlayerService) GetByID(id string) (*models.Player, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("player %s not found", id)
	}
	return p, nil
}

func (s *DefaultPlayerService) UpdateFCMToken(id, token string) error {
	if err := s.Repo.UpdateFCMToken(id, token); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	return nil
}
