package api

import (
	"net/http"
	"time"

	reqdto "cleanspace/internal/handler/dto/request"
	resdto "cleanspace/internal/handler/dto/response"
	"cleanspace/internal/handler/httperr"
	"cleanspace/internal/usecase/commands"
	"cleanspace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WorkspaceHandler struct {
	cmds commands.WorkspaceCommands
	q    queries.WorkspaceQueries
	loc  *time.Location
}

func NewWorkspaceHandler(cmds commands.WorkspaceCommands, q queries.WorkspaceQueries, loc *time.Location) *WorkspaceHandler {
	return &WorkspaceHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Create workspace
// @Description Create a bookable workspace. Names are unique regardless of case.
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateWorkspaceRequest true "Create workspace request"
// @Success 201 {object} resdto.WorkspaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/workspaces [post]
func (h *WorkspaceHandler) Create(c *gin.Context) {
	var req reqdto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.ValidationDetails(err))
		return
	}

	ws, err := h.cmds.CreateWorkspace(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWorkspace(ws))
}

// @Summary List workspaces
// @Tags workspaces
// @Produce json
// @Success 200 {array} resdto.WorkspaceResponse
// @Router /api/workspaces [get]
func (h *WorkspaceHandler) List(c *gin.Context) {
	all, err := h.q.FindAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWorkspaceList(all))
}

// @Summary Find available workspaces
// @Description Workspaces with at least one free seat during the requested slot
// @Tags workspaces
// @Produce json
// @Param start query string true "Slot start, RFC 3339 or local wall-clock time"
// @Param durationInMinutes query int true "Slot length in minutes"
// @Param minCapacity query int false "Minimum capacity"
// @Param requiredProperties query []string false "Required key:value properties" collectionFormat(multi)
// @Success 200 {array} resdto.WorkspaceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/workspaces/available [get]
func (h *WorkspaceHandler) FindAvailable(c *gin.Context) {
	var req reqdto.AvailableWorkspacesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.ValidationDetails(err))
		return
	}

	query, err := req.ToQuery(h.loc)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	available, err := h.q.FindAvailable(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWorkspaceList(available))
}
