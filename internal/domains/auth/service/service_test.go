package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"cabwise/config"
	jwtInfra "cabwise/infras/jwt"
	"cabwise/infras/otel/mocks"
	"cabwise/internal/domains/auth/model/dto"
	"cabwise/internal/domains/auth/service"
	"cabwise/shared/password"
)

func newAuthService(t *testing.T) service.Auth {
	t.Helper()

	hash, err := password.Hash("s3cret-pass")
	assert.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Owner.Email = "owner@example.com"
	cfg.App.Owner.PasswordHash = hash
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return service.New(cfg, mocks.NewOtel(), jwtInfra.New(cfg))
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService(t)

	tests := []struct {
		name    string
		req     dto.LoginRequest
		wantErr bool
	}{
		{
			name:    "successful login",
			req:     dto.LoginRequest{Email: "owner@example.com", Password: "s3cret-pass"},
			wantErr: false,
		},
		{
			name:    "email compared case-insensitively",
			req:     dto.LoginRequest{Email: "Owner@Example.com", Password: "s3cret-pass"},
			wantErr: false,
		},
		{
			name:    "wrong password",
			req:     dto.LoginRequest{Email: "owner@example.com", Password: "nope"},
			wantErr: true,
		},
		{
			name:    "unknown email",
			req:     dto.LoginRequest{Email: "someone@example.com", Password: "s3cret-pass"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.AccessToken)
			assert.NotEmpty(t, res.RefreshToken)
			assert.Positive(t, res.ExpiresIn)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc := newAuthService(t)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "owner@example.com",
		Password: "s3cret-pass",
	})
	assert.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: login.RefreshToken,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("garbage refresh token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: "not-a-token",
		})

		assert.Error(t, err)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: login.AccessToken,
		})

		assert.Error(t, err)
	})
}
