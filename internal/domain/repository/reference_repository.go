package repository

import (
	"context"

	"github.com/greenloop/greencycle/internal/domain/entity"
)

// CenterRepository persists recycling centers (read-mostly reference data).
type CenterRepository interface {
	List(ctx context.Context) ([]entity.Center, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, centers []entity.Center) error
}

// TutorialRepository persists educational tutorials.
type TutorialRepository interface {
	List(ctx context.Context) ([]entity.Tutorial, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, tutorials []entity.Tutorial) error
}
