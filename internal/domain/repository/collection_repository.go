package repository

import (
	"context"

	"github.com/greenloop/greencycle/internal/domain/entity"
)

// CollectionRepository defines persistence for collection requests.
// List operations return records ordered by creation time, newest first.
type CollectionRepository interface {
	Create(ctx context.Context, c *entity.CollectionRequest) error
	ListAll(ctx context.Context) ([]entity.CollectionRequest, error)
	ListByUser(ctx context.Context, userID string) ([]entity.CollectionRequest, error)
}
