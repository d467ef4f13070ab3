package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/mentor-hub-api/internal/dto"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
	"github.com/noah-isme/mentor-hub-api/pkg/response"
)

type searchService interface {
	Create(ctx context.Context) dto.SearchSessionResponse
	Submit(ctx context.Context, id, query string) (*dto.SearchSessionResponse, error)
	Flush(ctx context.Context, id string) (*dto.SearchSessionResponse, error)
	Resolve(ctx context.Context, id string) (*dto.SearchSessionResponse, error)
	Close(ctx context.Context, id string) error
}

type keystrokeRequest struct {
	Query *string `json:"query"`
}

// SearchHandler exposes debounced typeahead sessions.
type SearchHandler struct {
	service searchService
}

// NewSearchHandler constructs a SearchHandler.
func NewSearchHandler(service searchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Create godoc
// @Summary Open a typeahead search session
// @Tags Search
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /search/sessions [post]
func (h *SearchHandler) Create(c *gin.Context) {
	response.Created(c, h.service.Create(c.Request.Context()))
}

// Keystroke godoc
// @Summary Submit the current search box contents
// @Description Keystrokes are debounced; only the last query of a burst settles.
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body keystrokeRequest true "Current query"
// @Success 202 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /search/sessions/{id}/keystrokes [post]
func (h *SearchHandler) Keystroke(c *gin.Context) {
	var req keystrokeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "query is required"))
		return
	}
	resp, err := h.service.Submit(c.Request.Context(), c.Param("id"), *req.Query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, resp)
}

// Flush godoc
// @Summary Settle pending keystrokes immediately
// @Tags Search
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /search/sessions/{id}/flush [post]
func (h *SearchHandler) Flush(c *gin.Context) {
	resp, err := h.service.Flush(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// Resolve godoc
// @Summary Get the settled destination of a session
// @Tags Search
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /search/sessions/{id} [get]
func (h *SearchHandler) Resolve(c *gin.Context) {
	resp, err := h.service.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Close godoc
// @Summary Close a search session
// @Tags Search
// @Param id path string true "Session ID"
// @Success 204
// @Router /search/sessions/{id} [delete]
func (h *SearchHandler) Close(c *gin.Context) {
	if err := h.service.Close(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
