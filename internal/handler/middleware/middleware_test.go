//go:build unit

package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"cleanspace/internal/handler/middleware"
	"cleanspace/internal/pkg/config"
	"cleanspace/internal/pkg/cookie"
	"cleanspace/internal/pkg/errs"
	"cleanspace/internal/pkg/metrics"
	"cleanspace/internal/testutil/httptest"
	usecasemock "cleanspace/internal/testutil/mock/usecase"
	"cleanspace/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	validator *usecasemock.MockTokenValidator
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.validator = usecasemock.NewMockTokenValidator(gomock.NewController(s.T()))

	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	s.router.GET("/me", middleware.NewAuthMiddleware(s.validator).RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		email, _ := middleware.GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "email": email})
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	principal := usecase.Principal{UserID: uuid.New(), Email: "jane@example.com"}

	s.Run("bearer token", func() {
		s.validator.EXPECT().ValidateToken("header-token").Return(principal, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "header-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(principal.UserID.String(), body["id"])
		s.Equal("jane@example.com", body["email"])
	})

	s.Run("cookie wins over header", func() {
		s.validator.EXPECT().ValidateToken("cookie-token").Return(principal, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}, "header-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("invalid token", func() {
		s.validator.EXPECT().ValidateToken("bad").Return(usecase.Principal{}, errors.New("token expired"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "bad")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := middleware.NewRateLimiter(0.001, 2, time.Minute)

	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for range 2 {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/login", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	rec := httptest.PerformRequest(t, router, http.MethodPost, "/login", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")

	assert.True(t, limiter.Allow("198.51.100.7"), "other clients keep their own bucket")
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics.HTTPRequestsTotal.Reset()

	router := gin.New()
	router.Use(middleware.MetricsMiddleware())
	router.GET("/workspaces/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	httptest.PerformRequest(t, router, http.MethodGet, "/workspaces/1", nil, "")
	httptest.PerformRequest(t, router, http.MethodGet, "/workspaces/2", nil, "")
	httptest.PerformRequest(t, router, http.MethodGet, "/nope", nil, "")

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/workspaces/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestErrorHandler_MapsRecordedErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/full", func(c *gin.Context) {
		_ = c.Error(errs.Mark(errs.New("workspace is fully booked"), errs.ErrWorkspaceFull))
	})
	router.GET("/broken", func(c *gin.Context) {
		_ = c.Error(errors.New("connection reset"))
	})
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/full", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "fully booked")

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/broken", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(middleware.LoggingMiddleware(logger, config.LogConfig{}))
	router.GET("/id", func(c *gin.Context) {
		id, _ := middleware.RequestIDFrom(c.Request.Context())
		c.String(http.StatusOK, id)
	})

	t.Run("propagates the caller's id", func(t *testing.T) {
		buf.Reset()
		req := nethttptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", rec.Body.String())
		assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), "request completed")
	})

	t.Run("generates one when missing", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/id", nil, "")

		id := rec.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})
}
