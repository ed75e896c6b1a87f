package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"webux_bd/internal/domain/entities"
	"webux_bd/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password too weak")
	ErrInvalidAuthInput   = errors.New("invalid auth input")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// minPasswordLen mirrors the identity provider the original site used.
const minPasswordLen = 6

const revocationOp = "auth:revoked"

// AuthConfig carries the signing and role-derivation settings.
type AuthConfig struct {
	// AdminEmail is the single account granted the admin role.
	AdminEmail string
	JWTSecret  string
	TokenTTL   time.Duration
}

// IAuthUseCase is the session-token auth surface consumed by the HTTP layer.
//
// Subscribe fires its callback immediately with the current session state and
// again on every login/register/logout; the caller owns the returned
// unsubscribe.

type IAuthUseCase interface {
	Register(ctx context.Context, email, password, name string) (entities.User, string, error)
	Login(ctx context.Context, email, password string) (entities.User, string, error)
	Logout(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (entities.User, error)
	Subscribe(fn func(*entities.User)) (unsubscribe func())
}

type AuthUseCase struct {
	users interfaces.IUserRepository
	// cache backs the token revocation list; nil disables revocation.
	cache interfaces.ICache
	cfg   AuthConfig

	mu        sync.Mutex
	listeners map[int]func(*entities.User)
	nextID    int
	current   *entities.User
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, cache interfaces.ICache, cfg AuthConfig) *AuthUseCase {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 72 * time.Hour
	}
	return &AuthUseCase{
		users:     users,
		cache:     cache,
		cfg:       cfg,
		listeners: make(map[int]func(*entities.User)),
	}
}

func (u *AuthUseCase) Register(ctx context.Context, email, password, name string) (entities.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return entities.User{}, "", fmt.Errorf("%w: malformed email", ErrInvalidAuthInput)
	}
	if len(password) < minPasswordLen {
		return entities.User{}, "", ErrWeakPassword
	}

	if existing, err := u.users.GetByEmail(ctx, email); err != nil {
		return entities.User{}, "", err
	} else if existing.ID != "" {
		return entities.User{}, "", ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, "", err
	}

	rec := entities.UserRecord{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := u.users.Create(ctx, rec); err != nil {
		return entities.User{}, "", err
	}

	user := u.mapUser(rec)
	token, err := u.sign(user)
	if err != nil {
		return entities.User{}, "", err
	}
	u.notify(&user)
	return user, token, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}

	rec, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	// Missing account and wrong password are indistinguishable to the caller.
	if rec.ID == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	user := u.mapUser(rec)
	token, err := u.sign(user)
	if err != nil {
		return entities.User{}, "", err
	}
	u.notify(&user)
	return user, token, nil
}

// Logout revokes the token for the remainder of its lifetime. Without a
// cache backend revocation is skipped; the session listeners still fire.
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	claims, err := u.parse(token)
	if err != nil {
		return err
	}

	if u.cache != nil {
		ttl := time.Until(claimExpiry(claims))
		if ttl > 0 {
			jti, _ := claims["jti"].(string)
			if err := u.cache.Set(ctx, u.cache.GenerateKey(revocationOp, jti), "1", ttl); err != nil {
				log.Printf("[auth][logout] revocation store failed err=%v", err)
				return err
			}
		}
	}
	u.notify(nil)
	return nil
}

func (u *AuthUseCase) Verify(ctx context.Context, token string) (entities.User, error) {
	claims, err := u.parse(token)
	if err != nil {
		return entities.User{}, err
	}

	if u.cache != nil {
		jti, _ := claims["jti"].(string)
		if revoked, err := u.cache.Get(ctx, u.cache.GenerateKey(revocationOp, jti)); err == nil && revoked != "" {
			return entities.User{}, ErrInvalidToken
		}
	}

	id, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if id == "" || email == "" {
		return entities.User{}, ErrInvalidToken
	}
	return u.mapUser(entities.UserRecord{ID: id, Email: email, Name: name}), nil
}

func (u *AuthUseCase) Subscribe(fn func(*entities.User)) func() {
	u.mu.Lock()
	id := u.nextID
	u.nextID++
	u.listeners[id] = fn
	current := u.current
	u.mu.Unlock()

	// Fires immediately with the current session state.
	fn(current)

	return func() {
		u.mu.Lock()
		delete(u.listeners, id)
		u.mu.Unlock()
	}
}

func (u *AuthUseCase) notify(user *entities.User) {
	u.mu.Lock()
	u.current = user
	fns := make([]func(*entities.User), 0, len(u.listeners))
	for _, fn := range u.listeners {
		fns = append(fns, fn)
	}
	u.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}

// mapUser derives the presentation identity, falling back to the email local
// part when no display name was set. Admin is a plain email match.
func (u *AuthUseCase) mapUser(rec entities.UserRecord) entities.User {
	name := rec.Name
	if name == "" {
		name = strings.SplitN(rec.Email, "@", 2)[0]
	}
	return entities.User{
		ID:      rec.ID,
		Email:   rec.Email,
		Name:    name,
		IsAdmin: rec.Email != "" && rec.Email == normalizeEmail(u.cfg.AdminEmail),
	}
}

func (u *AuthUseCase) sign(user entities.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(u.cfg.TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JWTSecret))
}

func (u *AuthUseCase) parse(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(strings.TrimSpace(token), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(u.cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func claimExpiry(claims jwt.MapClaims) time.Time {
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
