package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tastemap/internal/config"
	"tastemap/internal/model"
)

type mockRefreshTokenRepository struct {
	tokens map[string]*model.RefreshToken // keyed by token hash

	revokeAllCalls []int64
}

func newMockRefreshTokenRepository() *mockRefreshTokenRepository {
	return &mockRefreshTokenRepository{tokens: map[string]*model.RefreshToken{}}
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	token.ID = token.TokenHash[:8]
	m.tokens[token.TokenHash] = token
	return nil
}

func (m *mockRefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	token, ok := m.tokens[tokenHash]
	if !ok {
		return nil, model.ErrRefreshTokenNotFound
	}
	return token, nil
}

func (m *mockRefreshTokenRepository) Revoke(ctx context.Context, id string, replacedBy *string) error {
	for _, token := range m.tokens {
		if token.ID == id {
			now := time.Now()
			token.RevokedAt = &now
			token.ReplacedBy = replacedBy
			return nil
		}
	}
	return model.ErrRefreshTokenNotFound
}

func (m *mockRefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	m.revokeAllCalls = append(m.revokeAllCalls, userID)
	now := time.Now()
	for _, token := range m.tokens {
		if token.UserID == userID && token.RevokedAt == nil {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (m *mockRefreshTokenRepository) DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		AccessTokenMaxAge:  900,
		RefreshTokenMaxAge: 3600,
	}
}

func TestAuthService_GenerateTokenPair(t *testing.T) {
	repo := newMockRefreshTokenRepository()
	svc := NewAuthService(repo, testAuthConfig())

	pair, err := svc.GenerateTokenPair(context.Background(), 42, "test-agent", "10.0.0.1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be set")
	}
	if pair.ExpiresIn != 900 {
		t.Errorf("expires_in = %d, want 900", pair.ExpiresIn)
	}

	// Access token must carry the user id claim
	token, err := jwt.Parse(pair.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("access token should parse and validate: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if int64(claims["user_id"].(float64)) != 42 {
		t.Errorf("user_id claim = %v, want 42", claims["user_id"])
	}

	// Refresh token is stored hashed, never raw
	if len(repo.tokens) != 1 {
		t.Fatalf("stored %d refresh tokens, want 1", len(repo.tokens))
	}
	for hash := range repo.tokens {
		if hash == pair.RefreshToken {
			t.Error("refresh token must be stored as a hash")
		}
	}
}

func TestAuthService_RefreshTokens_Rotates(t *testing.T) {
	repo := newMockRefreshTokenRepository()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, 42, "", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	newPair, userID, err := svc.RefreshTokens(ctx, pair.RefreshToken, "", "")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
	if newPair.RefreshToken == pair.RefreshToken {
		t.Error("rotation should issue a different refresh token")
	}

	// The old token is revoked; using it again trips reuse detection
	_, _, err = svc.RefreshTokens(ctx, pair.RefreshToken, "", "")
	if !errors.Is(err, model.ErrRefreshTokenReused) {
		t.Fatalf("expected ErrRefreshTokenReused, got: %v", err)
	}
	if len(repo.revokeAllCalls) != 1 || repo.revokeAllCalls[0] != 42 {
		t.Error("reuse should revoke the whole token family")
	}
}

func TestAuthService_RefreshTokens_Expired(t *testing.T) {
	repo := newMockRefreshTokenRepository()
	cfg := testAuthConfig()
	cfg.RefreshTokenMaxAge = -1 // already expired at issue time
	svc := NewAuthService(repo, cfg)
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, 42, "", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, _, err = svc.RefreshTokens(ctx, pair.RefreshToken, "", "")
	if !errors.Is(err, model.ErrRefreshTokenExpired) {
		t.Fatalf("expected ErrRefreshTokenExpired, got: %v", err)
	}
}

func TestAuthService_RefreshTokens_Unknown(t *testing.T) {
	svc := NewAuthService(newMockRefreshTokenRepository(), testAuthConfig())

	_, _, err := svc.RefreshTokens(context.Background(), "never-issued", "", "")
	if !errors.Is(err, model.ErrRefreshTokenNotFound) {
		t.Fatalf("expected ErrRefreshTokenNotFound, got: %v", err)
	}
}
