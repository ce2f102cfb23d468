package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/ucsb-cslas/cslas-api/internal/models"
	appErrors "github.com/ucsb-cslas/cslas-api/pkg/errors"
)

type officeHourRepository interface {
	FindAll(ctx context.Context) ([]models.OnlineOfficeHour, error)
	FindByID(ctx context.Context, id int64) (*models.OnlineOfficeHour, error)
	Save(ctx context.Context, oh *models.OnlineOfficeHour) (*models.OnlineOfficeHour, error)
	DeleteByID(ctx context.Context, id int64) error
}

// OnlineOfficeHourService exposes office hour CRUD with domain errors.
type OnlineOfficeHourService struct {
	repo    officeHourRepository
	metrics *MetricsService
	logger  *zap.Logger
}

// NewOnlineOfficeHourService constructs an OnlineOfficeHourService.
func NewOnlineOfficeHourService(repo officeHourRepository, metrics *MetricsService, logger *zap.Logger) *OnlineOfficeHourService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OnlineOfficeHourService{repo: repo, metrics: metrics, logger: logger}
}

// List returns every office hour. The result is never nil.
func (s *OnlineOfficeHourService) List(ctx context.Context) ([]models.OnlineOfficeHour, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list office hours")
	}
	if items == nil {
		items = []models.OnlineOfficeHour{}
	}
	return items, nil
}

// Get returns one office hour.
func (s *OnlineOfficeHourService) Get(ctx context.Context, id int64) (*models.OnlineOfficeHour, error) {
	oh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err)
	}
	return oh, nil
}

// Create stores the office hour as given and returns the stored copy.
func (s *OnlineOfficeHourService) Create(ctx context.Context, oh *models.OnlineOfficeHour) (*models.OnlineOfficeHour, error) {
	saved, err := s.repo.Save(ctx, oh)
	if err != nil {
		s.metrics.ObserveOfficeHourMutation("create", "error")
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save office hour")
	}
	s.metrics.ObserveOfficeHourMutation("create", "ok")
	s.logger.Info("office hour saved", zap.Int64("id", saved.ID), zap.String("day_of_week", saved.DayOfWeek))
	return saved, nil
}

// Delete looks the id up and then deletes it. The two calls are not atomic, so
// a concurrent delete of the same id makes the second caller see NotFound.
func (s *OnlineOfficeHourService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		s.metrics.ObserveOfficeHourMutation("delete", outcomeOf(err))
		return mapLookupError(err)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.metrics.ObserveOfficeHourMutation("delete", outcomeOf(err))
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "office hour not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete office hour")
	}
	s.metrics.ObserveOfficeHourMutation("delete", "ok")
	s.logger.Info("office hour deleted", zap.Int64("id", id))
	return nil
}

func mapLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, "office hour not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load office hour")
}

func outcomeOf(err error) string {
	if errors.Is(err, sql.ErrNoRows) {
		return "not_found"
	}
	return "error"
}
