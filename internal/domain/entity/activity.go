package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
)

// Category classifies an activity
type Category string

// Activity categories
const (
	CategorySport      Category = "sport"
	CategoryMusic      Category = "music"
	CategoryDance      Category = "dance"
	CategoryArt        Category = "art"
	CategoryStretching Category = "stretching"
)

// Categories lists every valid category in display order
var Categories = []Category{CategorySport, CategoryMusic, CategoryDance, CategoryArt, CategoryStretching}

// ParseCategory validates a category name
func ParseCategory(value string) (Category, error) {
	candidate := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, c := range Categories {
		if c == candidate {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errs.ErrInvalidCategory, value)
}

// Activity is a scheduled event with a pool of seats
type Activity struct {
	ID             uint64
	Title          string
	Description    string
	Category       Category
	ScheduledAt    time.Time
	Location       string
	TotalSeats     int
	AvailableSeats int
	PointsAward    int64
	Active         bool
	CreatedAt      time.Time
}

// NewActivity creates an active activity with every seat available
func NewActivity(
	title, description string,
	category Category,
	scheduledAt time.Time,
	location string,
	totalSeats int,
	pointsAward int64,
	timeProvider coreport.TimeProvider,
) (*Activity, error) {
	activity := &Activity{
		Title:          strings.TrimSpace(title),
		Description:    strings.TrimSpace(description),
		Category:       category,
		ScheduledAt:    scheduledAt,
		Location:       strings.TrimSpace(location),
		TotalSeats:     totalSeats,
		AvailableSeats: totalSeats,
		PointsAward:    pointsAward,
		Active:         true,
		CreatedAt:      timeProvider.Now(),
	}
	if err := activity.Validate(); err != nil {
		return nil, err
	}
	return activity, nil
}

// Validate checks the activity invariants
func (a *Activity) Validate() error {
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", errs.ErrInvalidRequest)
	}
	if _, err := ParseCategory(string(a.Category)); err != nil {
		return err
	}
	if a.TotalSeats < 1 {
		return fmt.Errorf("%w: total seats must be at least 1", errs.ErrInvalidSeats)
	}
	if a.AvailableSeats < 0 || a.AvailableSeats > a.TotalSeats {
		return fmt.Errorf("%w: available seats %d outside [0, %d]", errs.ErrInvalidSeats, a.AvailableSeats, a.TotalSeats)
	}
	return ValidatePointsAward(a.PointsAward)
}

// IsOpen reports whether the activity accepts enrollments
func (a *Activity) IsOpen() bool {
	return a.Active && a.AvailableSeats > 0
}

// TakeSeat reserves one seat
func (a *Activity) TakeSeat() error {
	if a.AvailableSeats <= 0 {
		return errs.ErrNoSeatsAvailable
	}
	a.AvailableSeats--
	return nil
}

// ReleaseSeat returns one seat to the pool, never above the total
func (a *Activity) ReleaseSeat() {
	if a.AvailableSeats < a.TotalSeats {
		a.AvailableSeats++
	}
}
