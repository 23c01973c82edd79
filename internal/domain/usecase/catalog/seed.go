package catalog

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/persistence"
)

const (
	seedSeats    = 20
	seedLocation = "Main Hall"
	seedLeadTime = 72 * time.Hour
)

// defaultActivities are created by SeedDefaultActivities when missing
var defaultActivities = []struct {
	title    string
	category entity.Category
}{
	{"Guitar Lessons", entity.CategoryMusic},
	{"Drum Lessons", entity.CategoryMusic},
	{"Piano Lessons", entity.CategoryMusic},
	{"Dance Class", entity.CategoryDance},
	{"Arts", entity.CategoryArt},
	{"Football", entity.CategorySport},
	{"Basketball", entity.CategorySport},
	{"Handball", entity.CategorySport},
}

// SeedDefaultActivities creates the default activities that don't exist yet.
// Existence is matched on the title, so running it twice creates nothing the second time.
func (s *Service) SeedDefaultActivities(ctx context.Context) (int, error) {
	created := 0

	err := s.uow.Execute(ctx, "seed_activities", func(txCtx context.Context) error {
		created = 0
		activities := s.uow.GetActivityRepository(txCtx)
		scheduledAt := s.timeProvider.Now().Add(seedLeadTime)

		for _, template := range defaultActivities {
			existing, err := activities.List(txCtx, persistence.ActivityFilter{TitleEqual: template.title})
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				continue
			}

			activity, err := entity.NewActivity(
				template.title,
				template.title+" for beginners.",
				template.category,
				scheduledAt,
				seedLocation,
				seedSeats,
				entity.DefaultPointsAward,
				s.timeProvider,
			)
			if err != nil {
				return err
			}
			if err := activities.Create(txCtx, activity); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to seed default activities", map[string]any{"error": err.Error()})
		return 0, err
	}

	s.logger.Info("Default activities seeded", map[string]any{
		"created":  created,
		"defaults": len(defaultActivities),
	})
	return created, nil
}
