package interfaces

import (
	"context"

	"webux_bd/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Listing is sorted by created_at descending at this layer; callers never
// re-sort. ApplyUpdate merges only the non-nil fields of the update into the
// stored record and returns the post-update state (empty ID when the order
// does not exist).

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	ApplyUpdate(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error)
}
