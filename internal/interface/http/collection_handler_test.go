package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/greencycle/internal/application"
	"github.com/greenloop/greencycle/internal/infrastructure/inmem"
)

func newCollectionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := application.NewCollectionService(inmem.NewCollectionRepository(), nil, nil, "")
	h := NewCollectionHandler(svc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/collections", h.Create)
	api.GET("/collections", h.ListAll)
	api.GET("/collections/user/:userId", h.ListByUser)
	api.GET("/collections/search", h.Search)
	return r
}

func collectionBody(userID string) string {
	return fmt.Sprintf(`{
		"userId": %q,
		"userName": "Ada",
		"wasteType": "plastic",
		"location": "Northside",
		"address": "14 Elm Street",
		"dateTime": "2026-09-01T10:30:00Z",
		"kilograms": 2.5,
		"rewardPoints": 25
	}`, userID)
}

func TestCreateCollectionHandler(t *testing.T) {
	r := newCollectionRouter()

	w, res := doJSON(t, r, http.MethodPost, "/api/collections", collectionBody("u1"), nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, res["success"])

	rec, ok := res["collection"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pending", rec["status"])
	assert.NotEmpty(t, rec["id"])
	assert.Equal(t, 2.5, rec["kilograms"])
}

func TestCreateCollectionHandler_MissingField(t *testing.T) {
	r := newCollectionRouter()

	body := `{
		"userId": "u1",
		"userName": "Ada",
		"wasteType": "plastic",
		"location": "Northside",
		"address": "14 Elm Street",
		"dateTime": "2026-09-01T10:30:00Z"
	}`
	w, res := doJSON(t, r, http.MethodPost, "/api/collections", body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, res["success"])

	// the payload is echoed back for debuggability
	received, ok := res["receivedData"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u1", received["userId"])
	msg, _ := res["message"].(string)
	assert.Contains(t, msg, "kilograms")
}

func TestListCollectionsHandler(t *testing.T) {
	r := newCollectionRouter()

	for _, uid := range []string{"u1", "u2", "u1"} {
		w, _ := doJSON(t, r, http.MethodPost, "/api/collections", collectionBody(uid), nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, res := doJSON(t, r, http.MethodGet, "/api/collections", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	all, ok := res["collections"].([]any)
	require.True(t, ok)
	assert.Len(t, all, 3)

	w, res = doJSON(t, r, http.MethodGet, "/api/collections/user/u1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	mine, ok := res["collections"].([]any)
	require.True(t, ok)
	assert.Len(t, mine, 2)
	for _, item := range mine {
		rec := item.(map[string]any)
		assert.Equal(t, "u1", rec["userId"])
	}
}

func TestSearchCollectionsHandler(t *testing.T) {
	r := newCollectionRouter()

	// q is required
	w, _ := doJSON(t, r, http.MethodGet, "/api/collections/search", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// without an ES client the endpoint degrades to empty results
	w, res := doJSON(t, r, http.MethodGet, "/api/collections/search?q=plastic", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	results, ok := res["results"].([]any)
	require.True(t, ok)
	assert.Empty(t, results)
}
