package interfaces

import (
	"context"

	"webux_bd/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for user accounts.
//
// GetByEmail resolves through the email GSI and returns a zero record when no
// account exists (no error).

type IUserRepository interface {
	Create(ctx context.Context, u entities.UserRecord) (entities.UserRecord, error)
	GetByID(ctx context.Context, id string) (entities.UserRecord, error)
	GetByEmail(ctx context.Context, email string) (entities.UserRecord, error)
}
