package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/metrics"
	timeadapter "github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/community-ledger/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type healthStub struct{ err error }

func (h healthStub) Check(context.Context) error { return h.err }

type apiFixture struct {
	t       *testing.T
	router  *gin.Engine
	tokens  *auth.TokenService
	users   *usecasemocks.MockUserUseCase
	catalog *usecasemocks.MockCatalogUseCase
	ledger  *usecasemocks.MockLedgerUseCase
}

func newAPIFixture(t *testing.T, health error) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	tokens := auth.NewTokenService("test-secret", "community-ledger", time.Hour, timeadapter.NewRealTimeProvider())
	f := &apiFixture{
		t:       t,
		router:  gin.New(),
		tokens:  tokens,
		users:   usecasemocks.NewMockUserUseCase(t),
		catalog: usecasemocks.NewMockCatalogUseCase(t),
		ledger:  usecasemocks.NewMockLedgerUseCase(t),
	}

	SetupMiddlewares(f.router, log, metrics.NewNoopMetrics(), Options{})
	SetupRoutes(f.router, Handlers{
		User:    handler.NewUserHandler(f.users, tokens, log),
		Catalog: handler.NewCatalogHandler(f.catalog, log),
		Ledger:  handler.NewLedgerHandler(f.ledger, log),
		Health:  handler.NewHealthHandler(healthStub{err: health}, log),
		Metrics: http.NotFoundHandler(),
	}, tokens, Options{})
	return f
}

func (f *apiFixture) token(userID uint64, role string) string {
	f.t.Helper()
	token, err := f.tokens.Issue(userID, role)
	require.NoError(f.t, err)
	return token
}

func (f *apiFixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	f.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthz(t *testing.T) {
	f := newAPIFixture(t, nil)
	w := f.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	down := newAPIFixture(t, errors.New("dial tcp: refused"))
	w = down.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateUser(t *testing.T) {
	t.Run("Returns the user and a usable token", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		now := time.Now()
		f.users.EXPECT().CreateUser(mock.Anything, "ana", "ana@example.com").
			Return(entity.RestoreUser(7, "ana", "ana@example.com", 0, now, now), nil).Once()

		w := f.do(http.MethodPost, "/users", "", dto.CreateUserRequest{Username: "ana", Email: "ana@example.com"})

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.CreateUserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(7), resp.User.ID)
		assert.Equal(t, int64(0), resp.User.Points)

		claims, err := f.tokens.Parse(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), claims.UserID)
		assert.False(t, claims.IsAdmin())
	})

	t.Run("Invalid body", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		w := f.do(http.MethodPost, "/users", "", map[string]string{"username": "ana", "email": "nope"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, w).Code)
	})

	t.Run("Duplicate", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.users.EXPECT().CreateUser(mock.Anything, "ana", "ana@example.com").Return(nil, errs.ErrDuplicateUser).Once()

		w := f.do(http.MethodPost, "/users", "", dto.CreateUserRequest{Username: "ana", Email: "ana@example.com"})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, errs.CodeDuplicateUser, decodeError(t, w).Code)
	})
}

func TestAuthentication(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, errs.CodeUnauthenticated, decodeError(t, w).Code)

	w = f.do(http.MethodGet, "/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodPost, "/admin/products", f.token(3, auth.RoleUser), dto.CreateProductRequest{Name: "Mug", PointsRequired: 5})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, errs.CodeForbidden, decodeError(t, w).Code)
}

func TestDashboard(t *testing.T) {
	f := newAPIFixture(t, nil)
	now := time.Now()
	f.users.EXPECT().Dashboard(mock.Anything, uint64(5)).Return(&usecase.Dashboard{
		User:        entity.RestoreUser(5, "ana", "ana@example.com", 6, now, now),
		Enrollments: []*entity.Enrollment{{ID: 1, UserID: 5, ActivityID: 2, Status: entity.EnrollmentConfirmed, PointsAwarded: 10}},
		Redemptions: []*entity.Redemption{{ID: 3, UserID: 5, ProductID: 4, PointsSpent: 4}},
		AvailableActivities: []*entity.Activity{
			{ID: 7, Title: "Yoga", Category: entity.CategorySport, TotalSeats: 10, AvailableSeats: 3, Active: true},
		},
	}, nil).Once()

	w := f.do(http.MethodGet, "/me", f.token(5, auth.RoleUser), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(6), resp.User.Points)
	require.Len(t, resp.Enrollments, 1)
	assert.Equal(t, "confirmed", resp.Enrollments[0].Status)
	require.Len(t, resp.Redemptions, 1)
	assert.Empty(t, resp.RecentEntries)
	require.Len(t, resp.AvailableActivities, 1)
	assert.Equal(t, uint64(7), resp.AvailableActivities[0].ID)
	assert.Equal(t, 3, resp.AvailableActivities[0].AvailableSeats)
}

func TestEnrollErrors(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
		code   int
	}{
		{"no seats", errs.NewLedgerError("enroll", 5, "activity", 2, errs.ErrNoSeatsAvailable), http.StatusConflict, errs.CodeNoSeatsAvailable},
		{"already enrolled", errs.NewLedgerError("enroll", 5, "activity", 2, errs.ErrAlreadyEnrolled), http.StatusConflict, errs.CodeAlreadyEnrolled},
		{"missing activity", errs.NewLedgerError("enroll", 5, "activity", 2, errs.ErrNotFound), http.StatusNotFound, errs.CodeNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, errs.CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAPIFixture(t, nil)
			f.ledger.EXPECT().Enroll(mock.Anything, uint64(5), uint64(2)).Return(nil, tc.err).Once()

			w := f.do(http.MethodPost, "/activities/2/enrollments", f.token(5, auth.RoleUser), nil)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, decodeError(t, w).Code)
		})
	}
}

func TestConflictAdvertisesRetry(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.ledger.EXPECT().Redeem(mock.Anything, uint64(5), uint64(9)).
		Return(nil, errs.NewLedgerError("redeem", 5, "product", 9, errs.NewConflictError("redeem", 5, errs.ErrConflict))).Once()

	w := f.do(http.MethodPost, "/products/9/redemptions", f.token(5, auth.RoleUser), nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, errs.CodeConflict, decodeError(t, w).Code)
}

func TestRedeemInsufficientPoints(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.ledger.EXPECT().Redeem(mock.Anything, uint64(5), uint64(9)).
		Return(nil, errs.NewLedgerError("redeem", 5, "product", 9, errs.NewInsufficientPointsError(5, 50, 20))).Once()

	w := f.do(http.MethodPost, "/products/9/redemptions", f.token(5, auth.RoleUser), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, errs.CodeInsufficientPoints, resp.Code)
	assert.Contains(t, resp.Message, "required 50, available 20")
}

func TestCancel(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.ledger.EXPECT().Cancel(mock.Anything, uint64(5), uint64(4)).
		Return(&entity.Enrollment{ID: 4, UserID: 5, ActivityID: 2, Status: entity.EnrollmentCancelled}, nil).Once()

	w := f.do(http.MethodPost, "/enrollments/4/cancel", f.token(5, auth.RoleUser), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.EnrollmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)

	w = f.do(http.MethodPost, "/enrollments/abc/cancel", f.token(5, auth.RoleUser), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkActions(t *testing.T) {
	admin := func(f *apiFixture) string { return f.token(1, auth.RoleAdmin) }

	t.Run("Attendance reports requested and transitioned", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.ledger.EXPECT().RecordAttendanceBatch(mock.Anything, []uint64{1, 2, 3}).Return(2, nil).Once()

		w := f.do(http.MethodPost, "/admin/enrollments/attendance", admin(f), dto.BulkRequest{IDs: []uint64{1, 2, 3}})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.BulkResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.BulkResponse{Requested: 3, Transitioned: 2}, resp)
	})

	t.Run("Absence", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.ledger.EXPECT().MarkAbsent(mock.Anything, []uint64{4}).Return(1, nil).Once()

		w := f.do(http.MethodPost, "/admin/enrollments/absence", admin(f), dto.BulkRequest{IDs: []uint64{4}})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delivery aborted by a conflict", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.ledger.EXPECT().MarkDelivered(mock.Anything, []uint64{7, 8}).
			Return(1, errs.NewConflictError("mark_delivered", 5, errs.ErrConflict)).Once()

		w := f.do(http.MethodPost, "/admin/redemptions/delivery", admin(f), dto.BulkRequest{IDs: []uint64{7, 8}})
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))

		var resp struct {
			Code    int              `json:"code"`
			Details dto.BulkResponse `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeConflict, resp.Code)
		assert.Equal(t, dto.BulkResponse{Requested: 2, Transitioned: 1}, resp.Details)
	})

	t.Run("Duplicate ids are requested once", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.ledger.EXPECT().MarkAbsent(mock.Anything, []uint64{5, 5, 6, 5}).Return(2, nil).Once()

		w := f.do(http.MethodPost, "/admin/enrollments/absence", admin(f), dto.BulkRequest{IDs: []uint64{5, 5, 6, 5}})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.BulkResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.BulkResponse{Requested: 2, Transitioned: 2}, resp)
	})

	t.Run("Missing ids", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		w := f.do(http.MethodPost, "/admin/redemptions/delivery", admin(f), map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogEndpoints(t *testing.T) {
	scheduled := time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC)

	t.Run("List activities by category", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.catalog.EXPECT().ListActivities(mock.Anything, "music").Return([]*entity.Activity{
			{ID: 1, Title: "Piano Lessons", Category: entity.CategoryMusic, TotalSeats: 20, AvailableSeats: 19, PointsAward: 10},
		}, nil).Once()

		w := f.do(http.MethodGet, "/activities?category=music", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp []dto.ActivityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, 19, resp[0].AvailableSeats)
	})

	t.Run("Unknown category", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.catalog.EXPECT().ListActivities(mock.Anything, "cooking").Return(nil, errs.ErrInvalidCategory).Once()

		w := f.do(http.MethodGet, "/activities?category=cooking", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeInvalidCategory, decodeError(t, w).Code)
	})

	t.Run("Admin creates an activity", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		award := int64(25)
		f.catalog.EXPECT().CreateActivity(mock.Anything, mock.MatchedBy(func(req usecase.CreateActivityRequest) bool {
			return req.Title == "Chess" && req.TotalSeats == 8 && req.PointsAward != nil && *req.PointsAward == 25 && req.ScheduledAt.Equal(scheduled)
		})).Return(&entity.Activity{ID: 9, Title: "Chess", Category: entity.CategorySport, TotalSeats: 8, AvailableSeats: 8, PointsAward: 25, ScheduledAt: scheduled}, nil).Once()

		w := f.do(http.MethodPost, "/admin/activities", f.token(1, auth.RoleAdmin), dto.CreateActivityRequest{
			Title: "Chess", Category: "sport", ScheduledAt: scheduled, TotalSeats: 8, PointsAward: &award,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Admin seeds activities", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.catalog.EXPECT().SeedDefaultActivities(mock.Anything).Return(8, nil).Once()

		w := f.do(http.MethodPost, "/admin/activities/seed", f.token(1, auth.RoleAdmin), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"created":8}`, w.Body.String())
	})

	t.Run("Get product", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.catalog.EXPECT().GetProduct(mock.Anything, uint64(3)).Return(nil, errs.ErrNotFound).Once()

		w := f.do(http.MethodGet, "/products/3", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
