package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"wastedesk/internal/models"
)

// IdentityResolver fetches the authoritative profile for the current token.
type IdentityResolver interface {
	CurrentUser(ctx context.Context) (*models.UserProfile, error)
}

// Context is the application-wide session state every view reads from.
// One instance is constructed at startup and passed to consumers explicitly;
// there is no ambient global.
type Context struct {
	mu       sync.RWMutex
	user     *models.UserProfile
	loading  bool
	initOnce sync.Once

	svc      Service
	resolver IdentityResolver
	logger   *zap.Logger
}

// NewContext creates the session context in its initial state: no user,
// loading until Init has run.
func NewContext(svc Service, resolver IdentityResolver, logger *zap.Logger) *Context {
	return &Context{
		loading:  true,
		svc:      svc,
		resolver: resolver,
		logger:   logger,
	}
}

// Init resolves the session from any persisted token. It runs its work
// exactly once per process; later calls are no-ops. A token that cannot be
// turned into a profile is unusable and the session is torn down rather than
// left half-authenticated. loading becomes false after the attempt, in every
// outcome.
func (c *Context) Init(ctx context.Context) {
	c.initOnce.Do(func() {
		if c.svc.HasValidToken() {
			profile, err := c.resolver.CurrentUser(ctx)
			if err != nil {
				c.logger.Error("Failed to resolve identity, discarding session", zap.Error(err))
				c.svc.Logout()
			} else {
				c.mu.Lock()
				c.user = profile
				c.mu.Unlock()
			}
		}
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	})
}

// Login authenticates and resolves the profile before reporting success, so
// a true return guarantees User is non-nil. Every failure mode reports
// false; no error escapes to the caller.
func (c *Context) Login(ctx context.Context, email, password string) bool {
	ok, err := c.svc.Login(ctx, email, password)
	if err != nil {
		c.logger.Error("Login error", zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	profile, err := c.resolver.CurrentUser(ctx)
	if err != nil {
		c.logger.Error("Failed to resolve profile after login", zap.Error(err))
		return false
	}

	c.mu.Lock()
	c.user = profile
	c.mu.Unlock()
	return true
}

// Logout clears the in-memory user as well as the persisted credential.
// Calling it without an active session is harmless.
func (c *Context) Logout() {
	c.svc.Logout()
	c.mu.Lock()
	c.user = nil
	c.mu.Unlock()
}

// Established reports whether a profile was successfully resolved. This is a
// different signal from Service.HasValidToken: a token can still be
// structurally usable while no profile has been fetched, and vice versa.
func (c *Context) Established() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil
}

// User returns the resolved profile, or nil.
func (c *Context) User() *models.UserProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// Loading reports whether the initial resolution is still in flight.
// Consumers must not render role-gated output while it is true.
func (c *Context) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// IsAdmin reports whether the current user holds the admin role. Safe to
// call with no user; it simply returns false.
func (c *Context) IsAdmin() bool {
	return c.hasRole(models.RoleAdmin)
}

// IsCollector reports whether the current user holds the collector role.
func (c *Context) IsCollector() bool {
	return c.hasRole(models.RoleCollector)
}

func (c *Context) hasRole(role models.Role) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil && c.user.Role == role
}
