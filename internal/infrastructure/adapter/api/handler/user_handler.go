package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// TokenIssuer signs bearer tokens
type TokenIssuer interface {
	Issue(userID uint64, role string) (string, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	tokens      TokenIssuer
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	tokens TokenIssuer,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		tokens:      tokens,
		logger:      logger,
	}
}

// CreateUser handles the POST /users endpoint
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}

	token, err := h.tokens.Issue(user.ID, auth.RoleUser)
	if err != nil {
		h.logger.Error("Failed to issue token", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateUserResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	})
}

// Me handles the GET /me endpoint
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	dashboard, err := h.userUseCase.Dashboard(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(dashboard))
}
