// Package auth decides whether a caller is an authenticated teacher. Credential
// material never leaves this package.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/pkg/utils"
)

// Session is the result of a successful login.
type Session struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expires_at"`
	Teacher   models.TeacherPublic `json:"teacher"`
}

// Gate issues, checks and revokes teacher sessions.
type Gate struct {
	teachers  TeacherStore
	sessions  SessionStore
	jwt       *JWTService
	timeout   time.Duration
	dummyHash string
	logger    *zap.Logger
}

// NewGate creates an AuthGate. timeout bounds each store call.
func NewGate(teachers TeacherStore, sessions SessionStore, jwt *JWTService, timeout time.Duration, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	// Compared against when the username is unknown so both failure paths cost one bcrypt check.
	dummy, _ := utils.HashPassword(uuid.NewString(), 0)
	return &Gate{
		teachers:  teachers,
		sessions:  sessions,
		jwt:       jwt,
		timeout:   timeout,
		dummyHash: dummy,
		logger:    logger,
	}
}

func (g *Gate) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

// Login verifies credentials and opens a session. Unknown usernames and wrong
// passwords both yield ErrUnauthorized.
func (g *Gate) Login(ctx context.Context, username, password string) (*Session, error) {
	ctx, cancel := g.bound(ctx)
	defer cancel()

	t, err := g.teachers.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, models.ErrTeacherNotFound) {
		return nil, models.StorageError(err)
	}
	if t == nil {
		utils.CheckPassword(password, g.dummyHash)
		g.logger.Debug("login rejected", zap.String("username", username))
		return nil, models.ErrUnauthorized
	}
	if !utils.CheckPassword(password, t.PasswordHash) {
		g.logger.Debug("login rejected", zap.String("username", username))
		return nil, models.ErrUnauthorized
	}

	sessionID := uuid.NewString()
	token, expiresAt, err := g.jwt.Generate(t.Username, string(t.Role), sessionID)
	if err != nil {
		return nil, err
	}
	if err := g.sessions.Create(ctx, sessionID, t.Username, g.jwt.TTL()); err != nil {
		return nil, models.StorageError(err)
	}

	g.logger.Info("teacher logged in", zap.String("username", t.Username))
	return &Session{Token: token, ExpiresAt: expiresAt, Teacher: t.ToPublic()}, nil
}

// CheckSession returns the claims of a live session, or false when the token is
// invalid, expired, revoked or cannot be verified right now.
func (g *Gate) CheckSession(ctx context.Context, token string) (*Claims, bool) {
	if token == "" {
		return nil, false
	}
	claims, err := g.jwt.Validate(token)
	if err != nil {
		return nil, false
	}
	ctx, cancel := g.bound(ctx)
	defer cancel()
	username, err := g.sessions.Lookup(ctx, claims.ID)
	if err != nil {
		g.logger.Warn("session lookup failed", zap.Error(err))
		return nil, false
	}
	if username == "" || username != claims.Username {
		return nil, false
	}
	return claims, true
}

// Teacher returns the public profile of a session owner.
func (g *Gate) Teacher(ctx context.Context, username string) (*models.TeacherPublic, error) {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	t, err := g.teachers.GetByUsername(ctx, username)
	if err != nil {
		return nil, models.StorageError(err)
	}
	p := t.ToPublic()
	return &p, nil
}

// Logout revokes the session carried by token. Revoking an unknown or invalid token is a no-op.
func (g *Gate) Logout(ctx context.Context, token string) error {
	claims, err := g.jwt.Validate(token)
	if err != nil {
		return nil
	}
	ctx, cancel := g.bound(ctx)
	defer cancel()
	if err := g.sessions.Delete(ctx, claims.ID); err != nil {
		return models.StorageError(err)
	}
	g.logger.Info("teacher logged out", zap.String("username", claims.Username))
	return nil
}
