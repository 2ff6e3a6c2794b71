package api

import (
	"net/http"
	"strconv"

	reqdto "seller-catalog/internal/handler/dto/request"
	resdto "seller-catalog/internal/handler/dto/response"
	"seller-catalog/internal/handler/httperr"
	"seller-catalog/internal/usecase/commands"
	"seller-catalog/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary List coupons
// @Tags coupons
// @Produce json
// @Success 200 {array} resdto.CouponResponse
// @Failure 500 {object} httperr.Response
// @Router /api/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list coupons")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponList(views))
}

// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Param id path int true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := couponID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Coupon not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Coupon statistics
// @Description Total, currently active and expired coupon counts
// @Tags coupons
// @Produce json
// @Success 200 {object} queries.CouponStats
// @Failure 500 {object} httperr.Response
// @Router /api/coupons/stats [get]
func (h *CouponHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load coupon stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Active coupons of a shop
// @Description Coupons active today, highest amount first
// @Tags coupons
// @Produce json
// @Param shop path string true "Shop"
// @Success 200 {array} resdto.CouponResponse
// @Failure 500 {object} httperr.Response
// @Router /api/shops/{shop}/coupons/active [get]
func (h *CouponHandler) ListActiveForShop(c *gin.Context) {
	views, err := h.q.ListActiveForShop(c.Request.Context(), c.Param("shop"))
	if err != nil {
		httperr.Abort(c, err, "Failed to list active coupons")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponList(views))
}

// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	attrs, err := req.ToAttributes()
	if err != nil {
		httperr.Abort(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actor, attrs)
	if err != nil {
		httperr.Abort(c, err, "Create coupon failed")
		return
	}
	h.respondWithCoupon(c, http.StatusCreated, result.CouponID)
}

// @Summary Replace coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := couponID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	attrs, err := req.ToAttributes()
	if err != nil {
		httperr.Abort(c, err, "Invalid request")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actor, id, attrs); err != nil {
		httperr.Abort(c, err, "Update coupon failed")
		return
	}
	h.respondWithCoupon(c, http.StatusOK, id)
}

// @Summary Delete coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := couponID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err, "Delete coupon failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CouponHandler) respondWithCoupon(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon", nil)
		return
	}
	if status == http.StatusCreated {
		c.Header("Location", "/api/coupons/"+strconv.FormatInt(id, 10))
	}
	c.JSON(status, resdto.FromCouponView(view))
}

func couponID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
