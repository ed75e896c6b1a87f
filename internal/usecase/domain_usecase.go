package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"strings"
	"time"

	"webux_bd/internal/domain/entities"
	"webux_bd/internal/usecase/interfaces"
)

var (
	ErrInvalidDomainQuery = errors.New("invalid domain query")
)

const (
	domainCacheOp  = "domains:check"
	domainCacheTTL = 15 * time.Minute
)

type IDomainUseCase interface {
	CheckAvailability(ctx context.Context, domainName string) ([]entities.DomainResult, error)
}

// HostResolver performs an advisory DNS lookup. Failures are never
// treated as errors; a host that does not resolve proves nothing.
type HostResolver func(ctx context.Context, host string) ([]string, error)

type DomainUseCase struct {
	advisor  interfaces.IDomainAdvisor
	cache    interfaces.ICache
	resolver HostResolver
}

var _ IDomainUseCase = (*DomainUseCase)(nil)

func NewDomainUseCase(advisor interfaces.IDomainAdvisor, cache interfaces.ICache, resolver HostResolver) *DomainUseCase {
	if resolver == nil {
		resolver = func(ctx context.Context, host string) ([]string, error) {
			return net.DefaultResolver.LookupHost(ctx, host)
		}
	}
	return &DomainUseCase{
		advisor:  advisor,
		cache:    cache,
		resolver: resolver,
	}
}

// CheckAvailability returns availability for the queried domain followed by
// alternative suggestions. Results are cached; the provider's verdict on the
// exact query is overridden when the host already resolves.
func (u *DomainUseCase) CheckAvailability(ctx context.Context, domainName string) ([]entities.DomainResult, error) {
	query := strings.ToLower(strings.TrimSpace(domainName))
	if query == "" {
		return nil, ErrInvalidDomainQuery
	}

	cacheKey := ""
	if u.cache != nil {
		cacheKey = u.cache.GenerateKey(domainCacheOp, query)
		if raw, err := u.cache.Get(ctx, cacheKey); err == nil && raw != "" {
			var cached []entities.DomainResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	results, err := u.advisor.Suggest(ctx, query)
	if err != nil || len(results) == 0 {
		if err != nil {
			log.Printf("domain advisor unavailable for %q: %v", query, err)
		}
		results = entities.FallbackDomainResults(query)
	}

	// The first element always answers the exact query.
	results[0].Name = query
	if addrs, lookupErr := u.resolver(ctx, query); lookupErr == nil && len(addrs) > 0 {
		results[0].IsAvailable = false
		results[0].Reasoning = "Domain already resolves to a live host."
	}

	if u.cache != nil {
		if payload, marshalErr := json.Marshal(results); marshalErr == nil {
			if cacheErr := u.cache.Set(ctx, cacheKey, string(payload), domainCacheTTL); cacheErr != nil {
				log.Printf("failed to cache domain results for %q: %v", query, cacheErr)
			}
		}
	}
	return results, nil
}
