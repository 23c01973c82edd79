package dto

import (
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/usecase"
)

// CreateUserRequest represents the API request for registering a user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email"`
}

// UserResponse represents a user with their current balance
type UserResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Points    int64     `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserResponse carries the new user and a bearer token for them
type CreateUserResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// DashboardResponse represents the GET /me payload
type DashboardResponse struct {
	User          UserResponse          `json:"user"`
	Enrollments   []EnrollmentResponse  `json:"enrollments"`
	Redemptions   []RedemptionResponse  `json:"redemptions"`
	RecentEntries []LedgerEntryResponse `json:"recentEntries"`
	// AvailableActivities lists open activities without a confirmed seat for this user
	AvailableActivities []ActivityResponse `json:"availableActivities"`
}

// NewUserResponse maps a user entity
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Points:    user.Points(),
		CreatedAt: user.CreatedAt,
	}
}

// NewDashboardResponse maps a dashboard
func NewDashboardResponse(d *usecase.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		User:                NewUserResponse(d.User),
		Enrollments:         make([]EnrollmentResponse, 0, len(d.Enrollments)),
		Redemptions:         make([]RedemptionResponse, 0, len(d.Redemptions)),
		RecentEntries:       make([]LedgerEntryResponse, 0, len(d.RecentEntries)),
		AvailableActivities: NewActivityList(d.AvailableActivities),
	}
	for _, e := range d.Enrollments {
		resp.Enrollments = append(resp.Enrollments, NewEnrollmentResponse(e))
	}
	for _, r := range d.Redemptions {
		resp.Redemptions = append(resp.Redemptions, NewRedemptionResponse(r))
	}
	for _, e := range d.RecentEntries {
		resp.RecentEntries = append(resp.RecentEntries, NewLedgerEntryResponse(e))
	}
	return resp
}
