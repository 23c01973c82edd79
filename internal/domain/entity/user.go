package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
)

// User represents a community member with a point balance
type User struct {
	ID        uint64    // Unique identifier for the user
	Username  string    // Unique login name
	Email     string    // Unique contact address
	points    int64     // Point balance, never negative (private)
	CreatedAt time.Time // When the user was created
	UpdatedAt time.Time // When the user was last updated
}

// NewUser creates a new user with a zero balance
func NewUser(id uint64, username, email string, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Username:  username,
		Email:     strings.ToLower(email),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreUser rebuilds a persisted user, including its balance
func RestoreUser(id uint64, username, email string, points int64, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:        id,
		Username:  username,
		Email:     email,
		points:    points,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Points returns the current point balance
func (u *User) Points() int64 {
	return u.points
}

// CanSpend checks if the balance covers the given amount
func (u *User) CanSpend(amount int64) bool {
	return amount >= 0 && u.points >= amount
}

// Credit adds points to the balance
func (u *User) Credit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount < 0 {
		return errs.ErrInvalidPoints
	}
	balance, err := AddPoints(u.points, amount)
	if err != nil {
		return err
	}
	u.points = balance
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit subtracts points from the balance
// Returns InsufficientPointsError when the balance does not cover the amount
func (u *User) Debit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount < 0 {
		return errs.ErrInvalidPoints
	}
	if !u.CanSpend(amount) {
		return errs.NewInsufficientPointsError(u.ID, amount, u.points)
	}
	u.points -= amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}
