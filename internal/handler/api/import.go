package api

import (
	"net/http"

	reqdto "seller-catalog/internal/handler/dto/request"
	"seller-catalog/internal/handler/httperr"
	"seller-catalog/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	cmds commands.ImportCommands
}

func NewImportHandler(cmds commands.ImportCommands) *ImportHandler {
	return &ImportHandler{cmds: cmds}
}

// @Summary Import catalog
// @Description Replaces both exclusion lists, drops the rows they exclude and upserts the rest in one transaction. Requires a token covering every shop.
// @Tags imports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ImportRequest true "Parsed spreadsheet rows and lists"
// @Success 200 {object} commands.ImportSummary
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/imports [post]
func (h *ImportHandler) Import(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	summary, err := h.cmds.Import(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Import failed")
		return
	}
	c.JSON(http.StatusOK, summary)
}
