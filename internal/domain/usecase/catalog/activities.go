package catalog

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/usecase"
)

// CreateActivity validates and stores a new activity with every seat free
func (s *Service) CreateActivity(ctx context.Context, req usecase.CreateActivityRequest) (*entity.Activity, error) {
	category, err := entity.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	award := entity.DefaultPointsAward
	if req.PointsAward != nil {
		award = *req.PointsAward
	}

	activity, err := entity.NewActivity(
		req.Title,
		req.Description,
		category,
		req.ScheduledAt,
		req.Location,
		req.TotalSeats,
		award,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetActivityRepository(ctx).Create(ctx, activity); err != nil {
		s.logger.Error("Failed to create activity", map[string]any{
			"title": activity.Title,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Activity created", map[string]any{
		"activity_id": activity.ID,
		"category":    activity.Category,
		"seats":       activity.TotalSeats,
	})
	return activity, nil
}

// GetActivity retrieves an activity by ID
func (s *Service) GetActivity(ctx context.Context, id uint64) (*entity.Activity, error) {
	if id == 0 {
		return nil, errs.ErrInvalidID
	}
	return s.uow.GetActivityRepository(ctx).GetByID(ctx, id)
}

// ListActivities returns open activities ordered by schedule
func (s *Service) ListActivities(ctx context.Context, category string) ([]*entity.Activity, error) {
	filter := persistence.ActivityFilter{OnlyOpen: true}

	if strings.TrimSpace(category) != "" {
		parsed, err := entity.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		filter.Category = parsed
	}

	return s.uow.GetActivityRepository(ctx).List(ctx, filter)
}
