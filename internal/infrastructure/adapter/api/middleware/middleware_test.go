package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerr "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/community-ledger/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		err    error
		status int
	}{
		{domainerr.ErrNotFound, http.StatusNotFound},
		{domainerr.ErrForbidden, http.StatusForbidden},
		{domainerr.ErrInvalidState, http.StatusConflict},
		{domainerr.ErrAlreadyEnrolled, http.StatusConflict},
		{domainerr.ErrNoSeatsAvailable, http.StatusConflict},
		{domainerr.ErrOutOfStock, http.StatusConflict},
		{domainerr.NewInsufficientPointsError(1, 10, 5), http.StatusUnprocessableEntity},
		{domainerr.NewConflictError("enroll", 3, nil), http.StatusServiceUnavailable},
		{fmt.Errorf("%w: bad body", domainerr.ErrInvalidRequest), http.StatusBadRequest},
		{domainerr.ErrInvalidCategory, http.StatusBadRequest},
		{domainerr.ErrUnauthenticated, http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.status, StatusFor(tc.err))
		})
	}
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()

	router := gin.New()
	router.Use(ErrorHandler(mockLogger))
	router.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, w.Body.String())
}

func TestErrorHandlerHidesInternalDetail(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Error("Request failed", mock.Anything).Once()

	router := gin.New()
	router.Use(ErrorHandler(mockLogger))
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: password authentication failed"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRequestID(t *testing.T) {
	var seen string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		seen = coreport.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://club.example"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://club.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "https://club.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://club.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLoggerLevelFollowsStatus(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info("Request completed", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["route"] == "/ok/:id" && fields["status"] == http.StatusOK && fields["user_id"] == uint64(7)
	})).Once()
	mockLogger.EXPECT().Warn("Request completed with server error", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == http.StatusServiceUnavailable
	})).Once()
	mockLogger.EXPECT().Debug("Unknown route", mock.Anything).Once()

	router := gin.New()
	router.Use(Logger(mockLogger))
	router.GET("/ok/:id", func(c *gin.Context) {
		c.Request = c.Request.WithContext(coreport.WithActorID(c.Request.Context(), 7))
		c.Status(http.StatusOK)
	})
	router.GET("/busy", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	for _, path := range []string{"/ok/1", "/busy", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
}
