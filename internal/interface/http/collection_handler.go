package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/greenloop/greencycle/internal/application"
	"github.com/greenloop/greencycle/pkg/response"
)

type CollectionHandler struct {
	Svc    *application.CollectionService
	Logger *logrus.Logger
}

func NewCollectionHandler(svc *application.CollectionService, logger *logrus.Logger) *CollectionHandler {
	return &CollectionHandler{Svc: svc, Logger: logger}
}

// Create POST /api/collections
func (h *CollectionHandler) Create(c *gin.Context) {
	var in application.CreateCollectionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload")
		return
	}

	rec, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			response.ValidationError(c, verr.Error(), verr.Received)
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "collection", rec, "collection request created")
}

// ListAll GET /api/collections
func (h *CollectionHandler) ListAll(c *gin.Context) {
	recs, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, http.StatusOK, "collections", recs, "")
}

// ListByUser GET /api/collections/user/:userId
func (h *CollectionHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")
	recs, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, http.StatusOK, "collections", recs, "")
}

// Search GET /api/collections/search?q=
func (h *CollectionHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "q is required")
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, 10)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("collection search failed")
		}
		response.Error(c, http.StatusInternalServerError, "search failed")
		return
	}
	response.Success(c, http.StatusOK, "results", hits, "")
}
