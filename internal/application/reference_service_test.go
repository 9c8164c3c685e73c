package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/greencycle/internal/domain/entity"
)

type fakeCenterRepo struct {
	centers []entity.Center
	inserts int
}

func (f *fakeCenterRepo) List(context.Context) ([]entity.Center, error) { return f.centers, nil }
func (f *fakeCenterRepo) Count(context.Context) (int64, error)          { return int64(len(f.centers)), nil }
func (f *fakeCenterRepo) InsertMany(_ context.Context, cs []entity.Center) error {
	f.centers = append(f.centers, cs...)
	f.inserts++
	return nil
}

type fakeTutorialRepo struct {
	tutorials []entity.Tutorial
	inserts   int
}

func (f *fakeTutorialRepo) List(context.Context) ([]entity.Tutorial, error) { return f.tutorials, nil }
func (f *fakeTutorialRepo) Count(context.Context) (int64, error) {
	return int64(len(f.tutorials)), nil
}
func (f *fakeTutorialRepo) InsertMany(_ context.Context, ts []entity.Tutorial) error {
	f.tutorials = append(f.tutorials, ts...)
	f.inserts++
	return nil
}

func TestReferenceService_SeedsOnFirstRead(t *testing.T) {
	centers := &fakeCenterRepo{}
	tutorials := &fakeTutorialRepo{}
	svc := NewReferenceService(centers, tutorials, nil)
	ctx := context.Background()

	got, err := svc.ListCenters(ctx)
	require.NoError(t, err)
	assert.Len(t, got, len(DefaultCenters))
	assert.Equal(t, 1, centers.inserts)

	// second read does not seed again
	got, err = svc.ListCenters(ctx)
	require.NoError(t, err)
	assert.Len(t, got, len(DefaultCenters))
	assert.Equal(t, 1, centers.inserts)

	tuts, err := svc.ListTutorials(ctx)
	require.NoError(t, err)
	assert.Len(t, tuts, len(DefaultTutorials))
	assert.Equal(t, 1, tutorials.inserts)
}

func TestReferenceService_SeedIsIdempotent(t *testing.T) {
	centers := &fakeCenterRepo{}
	tutorials := &fakeTutorialRepo{}
	svc := NewReferenceService(centers, tutorials, nil)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))
	assert.Equal(t, 1, centers.inserts)
	assert.Equal(t, 1, tutorials.inserts)
}
