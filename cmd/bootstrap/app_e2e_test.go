//go:build e2e

package bootstrap_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cleanspace/cmd/bootstrap"
	"cleanspace/cmd/bootstrap/components"
	reqdto "cleanspace/internal/handler/dto/request"
	resdto "cleanspace/internal/handler/dto/response"
	"cleanspace/internal/pkg/config"
	"cleanspace/internal/testutil/dbtest"
	"cleanspace/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-password"
)

type appSuite struct {
	suite.Suite
	storage string
	router  *gin.Engine
	token   string
}

func TestAppSuite_Memory(t *testing.T) {
	suite.Run(t, &appSuite{storage: config.StorageMemory})
}

func TestAppSuite_Postgres(t *testing.T) {
	suite.Run(t, &appSuite{storage: config.StoragePostgres})
}

func (s *appSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.Storage.Driver = s.storage
	cfg.Booking.TimeZone = "Europe/Berlin"
	cfg.Seed = config.SeedConfig{
		AdminEmail:     adminEmail,
		AdminPassword:  adminPassword,
		AdminFirstName: "Ada",
		AdminLastName:  "Admin",
	}
	if s.storage == config.StoragePostgres {
		_, cfg.DB = dbtest.NewDatabase(s.T())
		cfg.DB.MigrateOnBoot = true
	}

	s.router = buildApp(s.T(), cfg)
	s.token = s.login(adminEmail, adminPassword)
}

func buildApp(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Provide(
			func() config.Config { return cfg },
			bootstrap.NewBookingLocation,
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.PersistenceModule,
		bootstrap.EventsModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.SeedModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	})
	return router
}

func (s *appSuite) login(email, password string) string {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().NotEmpty(response.AccessToken)
	return response.AccessToken
}

func (s *appSuite) createWorkspace(name string, capacity int) {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/workspaces", reqdto.CreateWorkspaceRequest{
		Name:       name,
		Open:       "08:00",
		Close:      "18:00",
		Capacity:   capacity,
		Properties: []reqdto.PropertyRequest{{Key: "floor", Value: "3"}},
	}, s.token)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *appSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *appSuite) TestLoginRejectsWrongPassword() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: adminEmail, Password: "not-the-password"}, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid email or password")
}

func (s *appSuite) TestWorkspaceLifecycle() {
	s.createWorkspace("Room A", 1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/workspaces", reqdto.CreateWorkspaceRequest{
		Name: "ROOM A", Open: "08:00", Close: "18:00", Capacity: 1,
	}, s.token)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/workspaces", reqdto.CreateWorkspaceRequest{
		Name: "Room B", Open: "18:00", Close: "08:00", Capacity: 1,
	}, s.token)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/workspaces", reqdto.CreateWorkspaceRequest{
		Name: "Room C", Open: "08:00", Close: "18:00", Capacity: 1,
	}, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/workspaces", nil, "")
	var all []resdto.WorkspaceResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &all)
	s.Require().Len(all, 1)
	s.Equal("Room A", all[0].Name)
	s.Equal("08:00:00", all[0].Open)
}

func (s *appSuite) TestBookingFlow() {
	s.createWorkspace("Room A", 1)
	s.createWorkspace("Room B", 2)

	// 10:00 in Berlin during winter
	const start = "2030-01-07T09:00:00Z"

	available := func() []string {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/workspaces/available?start="+start+"&durationInMinutes=60&requiredProperties=floor:3", nil, "")
		var list []resdto.WorkspaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		names := make([]string, 0, len(list))
		for _, w := range list {
			names = append(names, w.Name)
		}
		return names
	}
	s.Equal([]string{"Room A", "Room B"}, available())

	book := func(workspace, slotStart string) int {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", reqdto.CreateReservationRequest{
			WorkspaceName:     workspace,
			Start:             slotStart,
			DurationInMinutes: 60,
		}, s.token)
		return rec.Code
	}

	s.Equal(http.StatusCreated, book("Room A", start))
	s.Equal([]string{"Room B"}, available(), "a full workspace drops out of availability")

	s.Equal(http.StatusConflict, book("Room B", start), "one user cannot hold overlapping reservations")
	s.Equal(http.StatusCreated, book("Room A", "2030-01-07T10:00:00Z"), "back-to-back slots do not overlap")
	s.Equal(http.StatusNotFound, book("Room Z", "2030-01-07T12:00:00Z"))
	s.Equal(http.StatusBadRequest, book("Room A", "2030-01-07T20:00:00Z"), "outside opening hours")

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/user", nil, s.token)
	var mine []resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &mine)
	s.Require().Len(mine, 2)
	s.Equal(10, mine[0].Start.Hour(), "times are rendered in the booking timezone")
	s.Equal(11, mine[1].Start.Hour())

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/user", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
}
