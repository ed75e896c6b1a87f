package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"webux_bd/internal/domain/entities"
	mock_interfaces "webux_bd/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func authConfig() AuthConfig {
	return AuthConfig{AdminEmail: "admin@webuxbd.com", JWTSecret: "test-secret", TokenTTL: time.Hour}
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("malformed email", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, authConfig())
		_, _, err := uc.Register(context.Background(), "not-an-email", "secret123", "X")
		if !errors.Is(err, ErrInvalidAuthInput) {
			t.Fatalf("expected ErrInvalidAuthInput, got %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, authConfig())
		_, _, err := uc.Register(context.Background(), "a@b.com", "12345", "X")
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("email in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, authConfig())

		users.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").Return(entities.UserRecord{ID: "u1"}, nil)

		_, _, err := uc.Register(context.Background(), "Taken@Example.com", "secret123", "X")
		if !errors.Is(err, ErrEmailInUse) {
			t.Fatalf("expected ErrEmailInUse, got %v", err)
		}
	})

	t.Run("success issues verifiable token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, authConfig())

		users.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(entities.UserRecord{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.UserRecord{})).DoAndReturn(
			func(_ context.Context, rec entities.UserRecord) (entities.UserRecord, error) {
				if rec.ID == "" || rec.Email != "new@example.com" || rec.PasswordHash == "" {
					t.Fatalf("unexpected record: %+v", rec)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte("secret123")); err != nil {
					t.Fatalf("stored hash does not match password: %v", err)
				}
				return rec, nil
			},
		)

		user, token, err := uc.Register(context.Background(), "New@example.com", "secret123", "Newbie")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.IsAdmin {
			t.Fatal("regular registration must not grant admin")
		}

		verified, err := uc.Verify(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if verified.ID != user.ID || verified.Email != "new@example.com" {
			t.Fatalf("unexpected verified user: %+v", verified)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)

	t.Run("unknown account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, authConfig())

		users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(entities.UserRecord{}, nil)

		_, _, err := uc.Login(context.Background(), "ghost@example.com", "secret123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, authConfig())

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.UserRecord{ID: "u1", Email: "a@b.com", PasswordHash: string(hash)}, nil)

		_, _, err := uc.Login(context.Background(), "a@b.com", "wrong-pass")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("admin email gets admin role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, authConfig())

		users.EXPECT().GetByEmail(gomock.Any(), "admin@webuxbd.com").Return(
			entities.UserRecord{ID: "admin-1", Email: "admin@webuxbd.com", PasswordHash: string(hash)}, nil)

		user, _, err := uc.Login(context.Background(), "Admin@WebUXBD.com", "secret123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !user.IsAdmin {
			t.Fatal("expected admin role")
		}
	})

	t.Run("name falls back to email local part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, authConfig())

		users.EXPECT().GetByEmail(gomock.Any(), "rahim@example.com").Return(
			entities.UserRecord{ID: "u2", Email: "rahim@example.com", PasswordHash: string(hash)}, nil)

		user, _, err := uc.Login(context.Background(), "rahim@example.com", "secret123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Name != "rahim" {
			t.Fatalf("expected fallback name, got %q", user.Name)
		}
	})
}

func TestAuthUseCase_Verify(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, authConfig())
		_, err := uc.Verify(context.Background(), "not.a.token")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewAuthUseCase(nil, nil, AuthConfig{JWTSecret: "other", TokenTTL: time.Hour})
		token, err := other.sign(entities.User{ID: "u1", Email: "a@b.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewAuthUseCase(nil, nil, authConfig())
		if _, err := uc.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockICache(ctrl)
		uc := NewAuthUseCase(nil, cache, authConfig())

		token, err := uc.sign(entities.User{ID: "u1", Email: "a@b.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cache.EXPECT().GenerateKey(revocationOp, gomock.Any()).Return("auth:revoked:jti").Times(2)
		cache.EXPECT().Set(gomock.Any(), "auth:revoked:jti", "1", gomock.Any()).Return(nil)
		cache.EXPECT().Get(gomock.Any(), "auth:revoked:jti").Return("1", nil)

		if err := uc.Logout(context.Background(), token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestAuthUseCase_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewAuthUseCase(users, nil, authConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(
		entities.UserRecord{ID: "u1", Email: "a@b.com", PasswordHash: string(hash)}, nil).AnyTimes()

	var events []*entities.User
	unsubscribe := uc.Subscribe(func(u *entities.User) { events = append(events, u) })

	if len(events) != 1 || events[0] != nil {
		t.Fatalf("expected immediate nil session event, got %v", events)
	}

	if _, _, err := uc.Login(context.Background(), "a@b.com", "secret123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 || events[1] == nil || events[1].ID != "u1" {
		t.Fatalf("expected login event, got %v", events)
	}

	unsubscribe()
	if _, _, err := uc.Login(context.Background(), "a@b.com", "secret123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("unsubscribed listener must not fire, got %d events", len(events))
	}
}
