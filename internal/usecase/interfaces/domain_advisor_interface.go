package interfaces

import (
	"context"

	"webux_bd/internal/domain/entities"
)

// IDomainAdvisor produces availability suggestions for a domain name query.
// The first result answers the exact query; the remainder are alternatives.
//
// Implementations are best-effort: when the underlying provider is down or
// unconfigured they return a clearly-marked fallback set rather than an error
// the caller would have to invent one from.

type IDomainAdvisor interface {
	Suggest(ctx context.Context, domainName string) ([]entities.DomainResult, error)
}
