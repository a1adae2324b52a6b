package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"uobsurvey/internal/config"
	"uobsurvey/internal/models/request_models"
	resp "uobsurvey/internal/models/response_models"
	"uobsurvey/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*resp.AccountLoginResponse, error)
}

type account struct {
	role         string
	passwordHash string
}

// AccountService checks credentials against the two built-in accounts.
type AccountService struct {
	accounts map[string]account
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

func NewAccountService(cfg config.AuthConfig, logger *zap.Logger) (AccountServiceInterface, error) {
	userHash, err := utils.HashPassword(cfg.UserPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing user password: %w", err)
	}
	adminHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}

	return &AccountService{
		accounts: map[string]account{
			"user":  {role: utils.RoleUser, passwordHash: userHash},
			"admin": {role: utils.RoleAdmin, passwordHash: adminHash},
		},
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
		logger:   logger,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*resp.AccountLoginResponse, error) {
	startTime := time.Now()

	acc, ok := a.accounts[request.Username]
	if !ok {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(acc.passwordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(a.secret, request.Username, acc.role, a.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("creating token: %w", err)
	}

	a.logger.Info("login succeeded",
		zap.String("username", request.Username),
		zap.String("role", acc.role),
		zap.Duration("took", time.Since(startTime)))

	return &resp.AccountLoginResponse{
		Token:     token,
		Username:  request.Username,
		Role:      acc.role,
		ExpiresAt: startTime.Add(a.tokenTTL).UTC(),
	}, nil
}
