package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
	"github.com/noah-isme/mentor-hub-api/internal/repository"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
	"github.com/noah-isme/mentor-hub-api/pkg/jobs"
)

type mentorFinder interface {
	FindByID(ctx context.Context, id int) (*models.Mentor, error)
}

type connectionDispatcher interface {
	Enqueue(job jobs.Job[string]) error
}

// ConnectionRequestInput is the payload of a connection request.
type ConnectionRequestInput struct {
	Option  string `json:"option" validate:"required,oneof=message schedule"`
	Message string `json:"message" validate:"required,max=2000"`
}

// ConnectionService accepts connection requests and delivers them asynchronously.
type ConnectionService struct {
	mentors    mentorFinder
	inbox      notificationPoster
	dispatcher connectionDispatcher
	validator  *validator.Validate
	metrics    *MetricsService
	logger     *zap.Logger
	now        func() time.Time

	mu       sync.RWMutex
	requests map[string]*models.ConnectionRequest
}

// NewConnectionService constructs a ConnectionService. Call Bind with the
// dispatch queue before accepting requests.
func NewConnectionService(mentors mentorFinder, inbox notificationPoster, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ConnectionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConnectionService{
		mentors:   mentors,
		inbox:     inbox,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
		requests:  make(map[string]*models.ConnectionRequest),
	}
}

// Bind attaches the queue that delivers accepted requests.
func (s *ConnectionService) Bind(dispatcher connectionDispatcher) {
	s.dispatcher = dispatcher
}

// Request validates and queues a connection request for a mentor.
func (s *ConnectionService) Request(ctx context.Context, mentorID int, input ConnectionRequestInput) (*models.ConnectionRequest, error) {
	input.Option = strings.ToLower(strings.TrimSpace(input.Option))
	input.Message = strings.TrimSpace(input.Message)
	if err := s.validator.Struct(input); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}

	mentor, err := s.mentors.FindByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "mentor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mentor")
	}
	if s.dispatcher == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "connection dispatcher not configured")
	}

	now := s.now().UTC()
	req := &models.ConnectionRequest{
		ID:         uuid.NewString(),
		MentorID:   mentor.ID,
		MentorName: mentor.Name,
		Option:     input.Option,
		Message:    input.Message,
		Status:     models.ConnectionStatusQueued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.mu.Lock()
	s.requests[req.ID] = req
	s.mu.Unlock()

	if err := s.dispatcher.Enqueue(jobs.Job[string]{ID: req.ID, Payload: req.ID}); err != nil {
		s.setStatus(req.ID, models.ConnectionStatusFailed)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue connection request")
	}
	s.metrics.IncConnection(string(models.ConnectionStatusQueued))
	s.logger.Info("connection request queued", zap.String("request_id", req.ID), zap.Int("mentor_id", mentor.ID))

	out := *req
	return &out, nil
}

// Get returns a connection request by id.
func (s *ConnectionService) Get(ctx context.Context, id string) (*models.ConnectionRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "connection request not found")
	}
	out := *req
	return &out, nil
}

// List returns every connection request for a mentor, oldest first.
func (s *ConnectionService) List(ctx context.Context, mentorID int) []models.ConnectionRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ConnectionRequest, 0)
	for _, req := range s.requests {
		if req.MentorID == mentorID {
			out = append(out, *req)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Deliver is the queue handler: it marks the request delivered and posts
// a mentor notification to the inbox.
func (s *ConnectionService) Deliver(ctx context.Context, job jobs.Job[string]) error {
	req, err := s.Get(ctx, job.Payload)
	if err != nil {
		return err
	}
	if req.Status == models.ConnectionStatusDelivered {
		return nil
	}

	if s.inbox != nil {
		verb := "sent a message to"
		if req.Option == models.ConnectionOptionSchedule {
			verb = "requested a session with"
		}
		s.inbox.Push(ctx, models.NotificationMentor,
			fmt.Sprintf("Request sent to %s", req.MentorName),
			fmt.Sprintf("You %s %s. They will get back to you soon.", verb, req.MentorName),
			navigation.MentorLink(req.MentorID))
	}

	s.setStatus(req.ID, models.ConnectionStatusDelivered)
	s.metrics.IncConnection(string(models.ConnectionStatusDelivered))
	return nil
}

// Fail is the queue failure handler.
func (s *ConnectionService) Fail(ctx context.Context, job jobs.Job[string], err error) {
	s.setStatus(job.Payload, models.ConnectionStatusFailed)
	s.metrics.IncConnection(string(models.ConnectionStatusFailed))
	s.logger.Error("connection request failed", zap.String("request_id", job.Payload), zap.Error(err))
}

func (s *ConnectionService) setStatus(id string, status models.ConnectionRequestStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req, ok := s.requests[id]; ok {
		req.Status = status
		req.UpdatedAt = s.now().UTC()
	}
}
