package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/greencycle/internal/application"
	"github.com/greenloop/greencycle/internal/domain/entity"
)

type memCenterRepo struct{ centers []entity.Center }

func (f *memCenterRepo) List(context.Context) ([]entity.Center, error) { return f.centers, nil }
func (f *memCenterRepo) Count(context.Context) (int64, error)          { return int64(len(f.centers)), nil }
func (f *memCenterRepo) InsertMany(_ context.Context, cs []entity.Center) error {
	f.centers = append(f.centers, cs...)
	return nil
}

type memTutorialRepo struct{ tutorials []entity.Tutorial }

func (f *memTutorialRepo) List(context.Context) ([]entity.Tutorial, error) { return f.tutorials, nil }
func (f *memTutorialRepo) Count(context.Context) (int64, error) {
	return int64(len(f.tutorials)), nil
}
func (f *memTutorialRepo) InsertMany(_ context.Context, ts []entity.Tutorial) error {
	f.tutorials = append(f.tutorials, ts...)
	return nil
}

func TestReferenceHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := application.NewReferenceService(&memCenterRepo{}, &memTutorialRepo{}, nil)
	h := NewReferenceHandler(svc)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/centers", h.ListCenters)
	api.GET("/tutorials", h.ListTutorials)

	w, res := doJSON(t, r, http.MethodGet, "/api/centers", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	centers, ok := res["centers"].([]any)
	require.True(t, ok)
	assert.Len(t, centers, len(application.DefaultCenters))

	w, res = doJSON(t, r, http.MethodGet, "/api/tutorials", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	tutorials, ok := res["tutorials"].([]any)
	require.True(t, ok)
	assert.Len(t, tutorials, len(application.DefaultTutorials))
}
