// Package session exposes the signed-in user to handlers and services.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/user"
	"github.com/linskybing/clubhub/pkg/utils"
	"go.uber.org/zap"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// User is the session view of a profile.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
}

func FromModel(u user.User) User {
	return User{ID: u.ID, Email: u.Email, Name: u.Name, AvatarURL: u.AvatarURL, IsAdmin: u.IsAdmin}
}

type EventKind string

const (
	EventLogin   EventKind = "login"
	EventLogout  EventKind = "logout"
	EventUpdated EventKind = "updated"
)

type Event struct {
	Kind   EventKind
	UserID uuid.UUID
}

// Provider is the session capability passed to components that need identity.
type Provider interface {
	// Current returns the user carried by the verified request token.
	Current(c *gin.Context) (User, error)
	// Refresh reloads the profile, going through the cache.
	Refresh(ctx context.Context, id uuid.UUID) (User, error)
	// Subscribe registers fn for session changes until cancel is called.
	Subscribe(fn func(Event)) (cancel func())
}

type Publisher interface {
	Publish(ctx context.Context, e Event)
}

type UserLoader interface {
	GetUserByID(id uuid.UUID) (user.User, error)
}

type JWTProvider struct {
	users UserLoader
	cache Cache

	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Event)
}

func NewJWTProvider(users UserLoader, cache Cache) *JWTProvider {
	if cache == nil {
		cache = NopCache{}
	}
	return &JWTProvider{users: users, cache: cache, subs: make(map[int]func(Event))}
}

func (p *JWTProvider) Current(c *gin.Context) (User, error) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		return User{}, ErrNotAuthenticated
	}
	return User{ID: claims.UserID, Email: claims.Email, Name: claims.Name, IsAdmin: claims.IsAdmin}, nil
}

func (p *JWTProvider) Refresh(ctx context.Context, id uuid.UUID) (User, error) {
	if u, ok, err := p.cache.Get(ctx, id); err != nil {
		zap.L().Warn("session cache read failed", zap.String("user_id", id.String()), zap.Error(err))
	} else if ok {
		return u, nil
	}

	m, err := p.users.GetUserByID(id)
	if err != nil {
		return User{}, fmt.Errorf("load user %s: %w", id, err)
	}
	u := FromModel(m)
	if err := p.cache.Set(ctx, u); err != nil {
		zap.L().Warn("session cache write failed", zap.String("user_id", id.String()), zap.Error(err))
	}
	return u, nil
}

func (p *JWTProvider) Subscribe(fn func(Event)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
}

// Publish drops the cached profile and notifies subscribers.
func (p *JWTProvider) Publish(ctx context.Context, e Event) {
	if err := p.cache.Delete(ctx, e.UserID); err != nil {
		zap.L().Warn("session cache invalidate failed", zap.String("user_id", e.UserID.String()), zap.Error(err))
	}

	p.mu.RLock()
	fns := make([]func(Event), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}
