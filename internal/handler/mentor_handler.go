package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/mentor-hub-api/internal/dto"
	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
	"github.com/noah-isme/mentor-hub-api/internal/service"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
	"github.com/noah-isme/mentor-hub-api/pkg/response"
)

type mentorService interface {
	List(ctx context.Context, req service.MentorListRequest) (*dto.MentorListResponse, *models.Pagination, bool, error)
	Get(ctx context.Context, id int) (*dto.MentorDetailResponse, error)
	Skills(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]dto.CategorySummary, error)
	Export(ctx context.Context, req service.MentorListRequest, format string) (*dto.ExportFile, error)
}

type connectionService interface {
	Request(ctx context.Context, mentorID int, input service.ConnectionRequestInput) (*models.ConnectionRequest, error)
	List(ctx context.Context, mentorID int) []models.ConnectionRequest
}

// MentorHandler serves the mentor catalog endpoints.
type MentorHandler struct {
	mentors     mentorService
	connections connectionService
}

// NewMentorHandler constructs a MentorHandler.
func NewMentorHandler(mentors mentorService, connections connectionService) *MentorHandler {
	return &MentorHandler{mentors: mentors, connections: connections}
}

// List godoc
// @Summary List mentors
// @Description Filter, sort and page the mentor catalog. Navigation params mentor and category are applied to a fresh listing state; search is echoed back as a hint.
// @Tags Mentors
// @Produce json
// @Param q query string false "Free-text query over name, title, company and skills"
// @Param skills query []string false "Selected skills (repeatable or comma separated)" collectionFormat(multi)
// @Param availability query string false "all, available or limited"
// @Param sort query string false "rating, students, experience or name"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param mentor query int false "Mentor to open"
// @Param category query int false "Category whose skills replace the selection"
// @Param search query string false "Search hint"
// @Success 200 {object} response.Envelope
// @Router /mentors [get]
func (h *MentorHandler) List(c *gin.Context) {
	start := time.Now()
	resp, pagination, hit, err := h.mentors.List(c.Request.Context(), listRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, pagination, responseMeta(c, hit, start))
}

// Get godoc
// @Summary Get mentor
// @Tags Mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /mentors/{id} [get]
func (h *MentorHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	mentor, err := h.mentors.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, mentor)
}

// Export godoc
// @Summary Export mentors
// @Description Render the filtered listing as CSV or PDF.
// @Tags Mentors
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 406 {object} response.Envelope
// @Router /mentors/export [get]
func (h *MentorHandler) Export(c *gin.Context) {
	file, err := h.mentors.Export(c.Request.Context(), listRequest(c), c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Content)
}

// Skills godoc
// @Summary List skills
// @Tags Mentors
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /skills [get]
func (h *MentorHandler) Skills(c *gin.Context) {
	skills, err := h.mentors.Skills(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, skills)
}

// Categories godoc
// @Summary List skill categories
// @Tags Mentors
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /categories [get]
func (h *MentorHandler) Categories(c *gin.Context) {
	categories, err := h.mentors.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, categories)
}

// Connect godoc
// @Summary Request a connection with a mentor
// @Tags Mentors
// @Accept json
// @Produce json
// @Param id path int true "Mentor ID"
// @Param payload body service.ConnectionRequestInput true "Connection request"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /mentors/{id}/connections [post]
func (h *MentorHandler) Connect(c *gin.Context) {
	if h.connections == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input service.ConnectionRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid connection payload"))
		return
	}
	req, err := h.connections.Request(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, req)
}

// Connections godoc
// @Summary List connection requests for a mentor
// @Tags Mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} response.Envelope
// @Router /mentors/{id}/connections [get]
func (h *MentorHandler) Connections(c *gin.Context) {
	if h.connections == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.connections.List(c.Request.Context(), id))
}

func listRequest(c *gin.Context) service.MentorListRequest {
	return service.MentorListRequest{
		Criteria: models.MentorCriteria{
			Query:          c.Query("q"),
			SelectedSkills: skillsQuery(c),
			Availability:   c.Query("availability"),
			SortBy:         c.Query("sort"),
		},
		Params:   navigation.ParseParams(c.Request.URL.Query()),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "limit"),
	}
}

func skillsQuery(c *gin.Context) []string {
	var skills []string
	for _, raw := range c.QueryArray("skills") {
		for _, skill := range strings.Split(raw, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				skills = append(skills, skill)
			}
		}
	}
	return skills
}
