package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/mentor-hub-api/internal/dto"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
	"github.com/noah-isme/mentor-hub-api/pkg/response"
)

type learningPathService interface {
	List(ctx context.Context, params navigation.Params) (*dto.LearningPathListResponse, error)
}

// LearningPathHandler serves the learning path page.
type LearningPathHandler struct {
	service learningPathService
}

// NewLearningPathHandler constructs a LearningPathHandler.
func NewLearningPathHandler(service learningPathService) *LearningPathHandler {
	return &LearningPathHandler{service: service}
}

// List godoc
// @Summary List learning paths
// @Tags LearningPaths
// @Produce json
// @Param path query int false "Path to highlight"
// @Success 200 {object} response.Envelope
// @Router /learning-paths [get]
func (h *LearningPathHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), navigation.ParseParams(c.Request.URL.Query()))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}
