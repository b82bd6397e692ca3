// Package session keeps the local login between CLI invocations and
// revalidates it against the store on every operation.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/model"
)

type actorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Actor, error)
	GetByEmail(ctx context.Context, email string) (*model.Actor, error)
}

type roleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	ListPermissions(ctx context.Context, roleID uuid.UUID) ([]model.Permission, error)
}

var errBadCredentials = model.NotAuthorized("invalid email or password")

// Manager owns the current session.
type Manager struct {
	actors actorRepo
	roles  roleRepo
	store  Store
	ttl    time.Duration
	log    *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	rec     *Record
	current *access.Principal
}

// NewManager creates a Manager. Call Start before use.
func NewManager(logger *slog.Logger, actors actorRepo, roles roleRepo, store Store, ttl time.Duration) *Manager {
	return &Manager{
		actors: actors,
		roles:  roles,
		store:  store,
		ttl:    ttl,
		log:    logger.With("service", "session"),
		now:    time.Now,
	}
}

// Start loads the persisted session, if any. It does not touch the database.
func (m *Manager) Start(ctx context.Context) error {
	rec, err := m.store.Load()
	if err != nil {
		return fmt.Errorf("session.Start: %w", err)
	}
	if rec != nil && rec.Expired(m.now()) {
		m.log.InfoContext(ctx, "stored session expired", slog.String("actor_id", rec.ActorID.String()))
		rec = nil
		if err := m.store.Clear(); err != nil {
			return fmt.Errorf("session.Start clear: %w", err)
		}
	}

	m.mu.Lock()
	m.rec = rec
	m.current = nil
	m.mu.Unlock()
	return nil
}

// Login authenticates by email and password and persists the session.
// Unknown emails, wrong passwords and inactive actors or roles all fail the same way.
func (m *Manager) Login(ctx context.Context, email, password string) (*access.Principal, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, model.Validation("email", "is required")
	}
	if password == "" {
		return nil, model.Validation("password", "is required")
	}

	actor, err := m.actors.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, fmt.Errorf("session.Login get actor: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(actor.PasswordHash), []byte(password)); err != nil {
		return nil, errBadCredentials
	}

	p, err := m.resolve(ctx, actor)
	if err != nil {
		if errors.Is(err, model.ErrSessionInvalid) {
			return nil, errBadCredentials
		}
		return nil, fmt.Errorf("session.Login: %w", err)
	}

	now := m.now()
	rec := Record{ActorID: actor.ID, Email: actor.Email, IssuedAt: now, ExpiresAt: now.Add(m.ttl)}
	if err := m.store.Save(rec); err != nil {
		return nil, fmt.Errorf("session.Login save: %w", err)
	}

	m.mu.Lock()
	m.rec = &rec
	m.current = p
	m.mu.Unlock()

	m.log.InfoContext(ctx, "actor logged in",
		slog.String("actor_id", actor.ID.String()),
		slog.String("role", p.RoleName))

	return p, nil
}

// Logout clears the session.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	rec := m.rec
	m.rec = nil
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("session.Logout: %w", err)
	}
	if rec != nil {
		m.log.InfoContext(ctx, "actor logged out", slog.String("actor_id", rec.ActorID.String()))
	}
	return nil
}

// Validate re-reads the session's actor, role and permissions from the
// store. Any invalidity clears the session and returns SessionInvalid.
func (m *Manager) Validate(ctx context.Context) (*access.Principal, error) {
	m.mu.RLock()
	rec := m.rec
	m.mu.RUnlock()

	if rec == nil {
		return nil, model.SessionInvalid("not logged in")
	}
	if rec.Expired(m.now()) {
		m.Invalidate()
		return nil, model.SessionInvalid("session expired")
	}

	actor, err := m.actors.GetByID(ctx, rec.ActorID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			m.Invalidate()
			return nil, model.SessionInvalid("actor no longer exists")
		}
		return nil, fmt.Errorf("session.Validate get actor: %w", err)
	}

	p, err := m.resolve(ctx, actor)
	if err != nil {
		if errors.Is(err, model.ErrSessionInvalid) {
			m.Invalidate()
		}
		return nil, err
	}

	m.mu.Lock()
	m.current = p
	m.mu.Unlock()
	return p, nil
}

// Invalidate drops the session from memory and from the store.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	m.rec = nil
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		m.log.Warn("clear session store", slog.String("error", err.Error()))
	}
}

// Current returns the principal from the last successful Validate or Login.
func (m *Manager) Current() (*access.Principal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, m.current != nil
}

func (m *Manager) resolve(ctx context.Context, actor *model.Actor) (*access.Principal, error) {
	if !actor.IsActive {
		return nil, model.SessionInvalid("actor is inactive")
	}

	role, err := m.roles.GetByID(ctx, actor.RoleID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, model.SessionInvalid("role no longer exists")
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	if !role.IsActive {
		return nil, model.SessionInvalid("role is inactive")
	}

	perms, err := m.roles.ListPermissions(ctx, role.ID)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}

	p := access.NewPrincipal(*actor, *role, perms)
	return &p, nil
}
