package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"webux_bd/internal/domain/entities"
	mock_interfaces "webux_bd/internal/usecase/interfaces/mocks"
)

func noResolve(ctx context.Context, host string) ([]string, error) {
	return nil, errors.New("no such host")
}

func TestDomainUseCase_CheckAvailability_EmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	advisor := mock_interfaces.NewMockIDomainAdvisor(ctrl)
	uc := NewDomainUseCase(advisor, nil, noResolve)

	if _, err := uc.CheckAvailability(context.Background(), "   "); !errors.Is(err, ErrInvalidDomainQuery) {
		t.Errorf("expected ErrInvalidDomainQuery, got %v", err)
	}
}

func TestDomainUseCase_CheckAvailability_ExactQueryFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	advisor := mock_interfaces.NewMockIDomainAdvisor(ctrl)
	advisor.EXPECT().Suggest(gomock.Any(), "shop03.com").Return([]entities.DomainResult{
		{Name: "shop03.com", IsAvailable: true, Price: "$11.99"},
		{Name: "shop03.store", IsAvailable: true, Price: "$4.99"},
	}, nil)

	uc := NewDomainUseCase(advisor, nil, noResolve)

	results, err := uc.CheckAvailability(context.Background(), "  Shop03.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "shop03.com" {
		t.Errorf("expected first result to answer the query, got %q", results[0].Name)
	}
	if !results[0].IsAvailable {
		t.Error("expected queried domain to stay available when it does not resolve")
	}
}

func TestDomainUseCase_CheckAvailability_ResolvingHostOverridesVerdict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	advisor := mock_interfaces.NewMockIDomainAdvisor(ctrl)
	advisor.EXPECT().Suggest(gomock.Any(), "taken.com").Return([]entities.DomainResult{
		{Name: "taken.com", IsAvailable: true, Price: "$11.99"},
		{Name: "taken.store", IsAvailable: true, Price: "$4.99"},
	}, nil)

	resolver := func(ctx context.Context, host string) ([]string, error) {
		return []string{"203.0.113.7"}, nil
	}
	uc := NewDomainUseCase(advisor, nil, resolver)

	results, err := uc.CheckAvailability(context.Background(), "taken.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].IsAvailable {
		t.Error("expected resolving host to override the provider verdict")
	}
	if !results[1].IsAvailable {
		t.Error("expected alternatives to keep the provider verdict")
	}
}

func TestDomainUseCase_CheckAvailability_AdvisorFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	advisor := mock_interfaces.NewMockIDomainAdvisor(ctrl)
	advisor.EXPECT().Suggest(gomock.Any(), "newshop.com").Return(nil, errors.New("provider down"))

	uc := NewDomainUseCase(advisor, nil, noResolve)

	results, err := uc.CheckAvailability(context.Background(), "newshop.com")
	if err != nil {
		t.Fatalf("expected graceful fallback, got error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 fallback results, got %d", len(results))
	}
	if results[0].Name != "newshop.com" || results[0].IsAvailable {
		t.Errorf("expected queried domain marked unavailable in fallback, got %+v", results[0])
	}
	if results[0].Reasoning != "Service temporarily unavailable." {
		t.Errorf("expected fallback reasoning, got %q", results[0].Reasoning)
	}
}

func TestDomainUseCase_CheckAvailability_CacheHitSkipsAdvisor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached := []entities.DomainResult{
		{Name: "hit.com", IsAvailable: true, Price: "$11.99"},
	}
	payload, _ := json.Marshal(cached)

	advisor := mock_interfaces.NewMockIDomainAdvisor(ctrl)
	cache := mock_interfaces.NewMockICache(ctrl)
	cache.EXPECT().GenerateKey(domainCacheOp, "hit.com").Return("domains:check:hit.com")
	cache.EXPECT().Get(gomock.Any(), "domains:check:hit.com").Return(string(payload), nil)

	uc := NewDomainUseCase(advisor, cache, noResolve)

	results, err := uc.CheckAvailability(context.Background(), "hit.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Name != "hit.com" {
		t.Errorf("expected cached results, got %+v", results)
	}
}

func TestDomainUseCase_CheckAvailability_CacheMissStoresResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	advisor := mock_interfaces.NewMockIDomainAdvisor(ctrl)
	advisor.EXPECT().Suggest(gomock.Any(), "miss.com").Return([]entities.DomainResult{
		{Name: "miss.com", IsAvailable: true, Price: "$11.99"},
	}, nil)

	cache := mock_interfaces.NewMockICache(ctrl)
	cache.EXPECT().GenerateKey(domainCacheOp, "miss.com").Return("domains:check:miss.com")
	cache.EXPECT().Get(gomock.Any(), "domains:check:miss.com").Return("", errors.New("cache miss"))
	cache.EXPECT().Set(gomock.Any(), "domains:check:miss.com", gomock.Any(), domainCacheTTL).Return(nil)

	uc := NewDomainUseCase(advisor, cache, noResolve)

	if _, err := uc.CheckAvailability(context.Background(), "miss.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
