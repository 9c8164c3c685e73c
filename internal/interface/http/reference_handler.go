package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/greencycle/internal/application"
	"github.com/greenloop/greencycle/pkg/response"
)

type ReferenceHandler struct {
	Svc *application.ReferenceService
}

func NewReferenceHandler(svc *application.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{Svc: svc}
}

// ListCenters GET /api/centers
func (h *ReferenceHandler) ListCenters(c *gin.Context) {
	centers, err := h.Svc.ListCenters(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, http.StatusOK, "centers", centers, "")
}

// ListTutorials GET /api/tutorials
func (h *ReferenceHandler) ListTutorials(c *gin.Context) {
	tutorials, err := h.Svc.ListTutorials(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, http.StatusOK, "tutorials", tutorials, "")
}
