package api

import (
	"net/http"
	"strconv"

	"seller-catalog/internal/handler/httperr"
	"seller-catalog/internal/handler/middleware"
	"seller-catalog/internal/pkg/errs"
	"seller-catalog/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var (
	errMissingActor  = errs.New("authenticated actor missing from context")
	errNegativePrice = errs.New("price cannot be negative")
)

// requireActor must run behind RequireAuth.
func requireActor(c *gin.Context) (commands.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return commands.Actor{}, false
	}
	return actor, true
}

func intQuery(c *gin.Context, key string, def int) (int, bool) {
	v := c.Query(key)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+key, nil)
		return 0, false
	}
	return n, true
}
