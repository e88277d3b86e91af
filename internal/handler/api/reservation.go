package api

import (
	"net/http"
	"time"

	reqdto "cleanspace/internal/handler/dto/request"
	resdto "cleanspace/internal/handler/dto/response"
	"cleanspace/internal/handler/httperr"
	"cleanspace/internal/handler/middleware"
	"cleanspace/internal/usecase/commands"
	"cleanspace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
	loc  *time.Location
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, loc *time.Location) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Create reservation
// @Description Book a seat in a workspace for the authenticated user
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Create reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.ValidationDetails(err))
		return
	}

	cmd, err := req.ToCommand(email, h.loc)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	res, err := h.cmds.CreateReservation(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(res, h.loc))
}

// @Summary List my reservations
// @Description Reservations of the authenticated user ordered by start time
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /api/reservations/user [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	list, err := h.q.FindByUser(c.Request.Context(), queries.FindUserReservationsQuery{UserEmail: email})
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(list, h.loc))
}
