// Package inmem provides in-memory repository implementations used by tests
// and local development without a running MongoDB.
package inmem

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/greenloop/greencycle/internal/domain/entity"
	"github.com/greenloop/greencycle/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]*entity.User{}}
}

// Create enforces email uniqueness under the lock, mirroring the unique
// index the Mongo implementation relies on.
func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID().Hex()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type CollectionRepository struct {
	mu   sync.Mutex
	recs []entity.CollectionRequest
}

func NewCollectionRepository() *CollectionRepository {
	return &CollectionRepository{}
}

func (r *CollectionRepository) Create(_ context.Context, c *entity.CollectionRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = primitive.NewObjectID().Hex()
	r.recs = append(r.recs, *c)
	return nil
}

func (r *CollectionRepository) ListAll(_ context.Context) ([]entity.CollectionRequest, error) {
	return r.list(func(entity.CollectionRequest) bool { return true }), nil
}

func (r *CollectionRepository) ListByUser(_ context.Context, userID string) ([]entity.CollectionRequest, error) {
	return r.list(func(c entity.CollectionRequest) bool { return c.UserID == userID }), nil
}

func (r *CollectionRepository) list(keep func(entity.CollectionRequest) bool) []entity.CollectionRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.CollectionRequest, 0, len(r.recs))
	for _, c := range r.recs {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

var (
	_ repository.UserRepository       = (*UserRepository)(nil)
	_ repository.CollectionRepository = (*CollectionRepository)(nil)
)
