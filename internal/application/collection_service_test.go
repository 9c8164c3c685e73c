package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/greencycle/internal/domain/entity"
	"github.com/greenloop/greencycle/internal/infrastructure/inmem"
)

func newCollectionService() *CollectionService {
	return NewCollectionService(inmem.NewCollectionRepository(), nil, nil, "")
}

func TestCollectionService_Create(t *testing.T) {
	svc := newCollectionService()
	start := time.Now().UTC()

	rec, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, entity.StatusPending, rec.Status)
	assert.False(t, rec.CreatedAt.Before(start))
}

func TestCollectionService_CreateValidationFailure(t *testing.T) {
	svc := newCollectionService()
	in := validInput()
	in.Kilograms = nil

	_, err := svc.Create(context.Background(), in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Missing, "kilograms")

	// nothing was persisted
	recs, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestCollectionService_ListAllOrdering(t *testing.T) {
	svc := newCollectionService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		in := validInput()
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	recs, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 5)
	for i := 1; i < len(recs); i++ {
		assert.False(t, recs[i].CreatedAt.After(recs[i-1].CreatedAt),
			"records must be in non-increasing creation order")
	}
}

func TestCollectionService_ListByUser(t *testing.T) {
	svc := newCollectionService()
	ctx := context.Background()

	for _, uid := range []string{"u1", "u2", "u1", "u3", "u1"} {
		in := validInput()
		in.UserID = uid
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)

	mine, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 3)

	// exactly the u1 subset of ListAll, in the same relative order
	var want []string
	for _, r := range all {
		if r.UserID == "u1" {
			want = append(want, r.ID)
		}
	}
	var got []string
	for _, r := range mine {
		assert.Equal(t, "u1", r.UserID)
		got = append(got, r.ID)
	}
	assert.Equal(t, want, got)
}

func TestCollectionService_SearchWithoutES(t *testing.T) {
	svc := newCollectionService()
	hits, err := svc.Search(context.Background(), "plastic", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
