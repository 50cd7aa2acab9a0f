// Package session establishes and tracks the console's authenticated session.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"wastedesk/internal/api"
	"wastedesk/internal/credstore"
	"wastedesk/internal/models"
	"wastedesk/internal/token"
)

// TokenExchanger trades credentials for a bearer token.
type TokenExchanger interface {
	ExchangeToken(ctx context.Context, username, password string) (string, error)
}

// TokenIdentity is the identity hint embedded in the token. It is decoded
// without verification and must not drive access-control decisions beyond
// optimistic UI hints.
type TokenIdentity struct {
	ID   string
	Role models.Role
}

type Service interface {
	// Login exchanges credentials for a token and persists it. Declined
	// credentials return (false, nil); transport and server errors are
	// returned for the caller to surface.
	Login(ctx context.Context, email, password string) (bool, error)

	// Logout clears the persisted credential and runs the teardown hook.
	// It is idempotent.
	Logout()

	// HasValidToken reports whether a stored token decodes and has not
	// expired at the moment of the call. A missing, malformed, or expired
	// token is simply "not authenticated", never an error. This says
	// nothing about whether a profile was resolved; see Context.Established.
	HasValidToken() bool

	// TokenHint returns the identity embedded in the stored token, or nil
	// when no usable token is present.
	TokenHint() *TokenIdentity
}

type service struct {
	exchanger TokenExchanger
	creds     *credstore.Store
	teardown  func()
	logger    *zap.Logger
}

// NewService creates the session service. teardown runs after each Logout
// once the credential is cleared; callers use it to discard session-scoped
// state (the console resets its views, a UI would redirect). It may be nil.
func NewService(exchanger TokenExchanger, creds *credstore.Store, teardown func(), logger *zap.Logger) Service {
	return &service{
		exchanger: exchanger,
		creds:     creds,
		teardown:  teardown,
		logger:    logger,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (bool, error) {
	tok, err := s.exchanger.ExchangeToken(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrAuthRejected) {
			s.logger.Info("Login rejected", zap.String("email", email))
			return false, nil
		}
		s.logger.Error("Login failed", zap.Error(err))
		return false, fmt.Errorf("failed to login: %w", err)
	}

	if err := s.creds.Save(tok); err != nil {
		s.logger.Error("Failed to persist token", zap.Error(err))
		return false, fmt.Errorf("failed to persist token: %w", err)
	}
	return true, nil
}

func (s *service) Logout() {
	if err := s.creds.Clear(); err != nil {
		s.logger.Error("Failed to clear credential", zap.Error(err))
	}
	if s.teardown != nil {
		s.teardown()
	}
	s.logger.Info("Logged out")
}

func (s *service) HasValidToken() bool {
	raw, ok := s.creds.Read()
	if !ok {
		return false
	}
	claims, err := token.Decode(raw)
	if err != nil {
		return false
	}
	return claims.ExpiresAt > time.Now().Unix()
}

func (s *service) TokenHint() *TokenIdentity {
	raw, ok := s.creds.Read()
	if !ok {
		return nil
	}
	claims, err := token.Decode(raw)
	if err != nil {
		return nil
	}
	return &TokenIdentity{ID: claims.Subject, Role: claims.Role}
}
