package api

import (
	"context"
	"net/http"

	reqdto "seller-catalog/internal/handler/dto/request"
	"seller-catalog/internal/handler/httperr"
	"seller-catalog/internal/usecase/commands"
	"seller-catalog/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ExclusionHandler struct {
	cmds commands.ExclusionCommands
	q    queries.EligibilityQueries
}

func NewExclusionHandler(cmds commands.ExclusionCommands, q queries.EligibilityQueries) *ExclusionHandler {
	return &ExclusionHandler{cmds: cmds, q: q}
}

type replacedResponse struct {
	Count int64 `json:"count"`
}

// @Summary Exclusion lists
// @Tags exclusions
// @Produce json
// @Success 200 {object} queries.ExclusionsView
// @Failure 500 {object} httperr.Response
// @Router /api/exclusions [get]
func (h *ExclusionHandler) List(c *gin.Context) {
	view, err := h.q.Exclusions(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load exclusions")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Replace invalid spec ids
// @Description Replaces the whole list. Spec ids are matched case-insensitively.
// @Tags exclusions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ExclusionListRequest true "Spec IDs"
// @Success 200 {object} replacedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/exclusions/invalid-spec-ids [put]
func (h *ExclusionHandler) ReplaceInvalidSpecIDs(c *gin.Context) {
	h.replace(c, h.cmds.ReplaceInvalidSpecIDs)
}

// @Summary Replace enabled SKUs
// @Description Replaces the whole list. SKUs are matched case-sensitively.
// @Tags exclusions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ExclusionListRequest true "SKUs"
// @Success 200 {object} replacedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/exclusions/enabled-skus [put]
func (h *ExclusionHandler) ReplaceEnabledSKUs(c *gin.Context) {
	h.replace(c, h.cmds.ReplaceEnabledSKUs)
}

type replaceFunc func(ctx context.Context, actor commands.Actor, values []string) (int64, error)

func (h *ExclusionHandler) replace(c *gin.Context, fn replaceFunc) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ExclusionListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	n, err := fn(c.Request.Context(), actor, req.Values)
	if err != nil {
		httperr.Abort(c, err, "Replace exclusions failed")
		return
	}
	c.JSON(http.StatusOK, replacedResponse{Count: n})
}
