package api

import (
	"net/http"
	"net/url"

	reqdto "seller-catalog/internal/handler/dto/request"
	resdto "seller-catalog/internal/handler/dto/response"
	"seller-catalog/internal/handler/httperr"
	"seller-catalog/internal/usecase/commands"
	"seller-catalog/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary List products
// @Description Page through products, or search name, spec name, product id and sku when q is set. Rows carry their final price.
// @Tags products
// @Produce json
// @Param q query string false "Substring filter"
// @Param limit query int false "Page size (default from config)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	limit, ok := intQuery(c, "limit", 0)
	if !ok {
		return
	}
	offset, ok := intQuery(c, "offset", 0)
	if !ok {
		return
	}
	page, err := h.q.ListPage(c.Request.Context(), c.Query("q"), limit, offset)
	if err != nil {
		httperr.Abort(c, err, "Invalid page")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductPage(page))
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param spec_id path string true "Spec ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /api/products/{spec_id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	view, err := h.q.GetBySpecID(c.Request.Context(), c.Param("spec_id"))
	if err != nil {
		httperr.Abort(c, err, "Failed to load product")
		return
	}
	if view == nil {
		httperr.AbortWithError(c, http.StatusNotFound, queries.ErrProductNotFound, "Product not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Product pricing
// @Description Final price after the best applicable coupon, with the margin breakdown when a purchase price is known
// @Tags products
// @Produce json
// @Param spec_id path string true "Spec ID"
// @Success 200 {object} resdto.PricingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/products/{spec_id}/pricing [get]
func (h *ProductHandler) Pricing(c *gin.Context) {
	view, err := h.q.GetPricing(c.Request.Context(), c.Param("spec_id"))
	if err != nil {
		httperr.Abort(c, err, "Failed to price product")
		return
	}
	if view == nil {
		httperr.AbortWithError(c, http.StatusNotFound, queries.ErrProductNotFound, "Product not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingView(view))
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProductRequest true "Product"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	attrs := req.ToAttributes()
	if err := h.cmds.Create(c.Request.Context(), actor, attrs); err != nil {
		httperr.Abort(c, err, "Create product failed")
		return
	}
	h.respondWithProduct(c, http.StatusCreated, attrs.SpecID)
}

// @Summary Replace product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param spec_id path string true "Spec ID"
// @Param request body reqdto.ProductRequest true "Product"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{spec_id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	specID := c.Param("spec_id")
	if err := h.cmds.Update(c.Request.Context(), actor, specID, req.ToAttributes()); err != nil {
		httperr.Abort(c, err, "Update product failed")
		return
	}
	h.respondWithProduct(c, http.StatusOK, specID)
}

// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param spec_id path string true "Spec ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{spec_id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, c.Param("spec_id")); err != nil {
		httperr.Abort(c, err, "Delete product failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upsert products
// @Description Insert or replace a batch of products keyed by spec id, in one transaction
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertProductsRequest true "Products"
// @Success 200 {object} shared.UpsertResult
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/products/batch [post]
func (h *ProductHandler) UpsertBatch(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpsertProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.UpsertBatch(c.Request.Context(), actor, req.ToAttributes())
	if err != nil {
		httperr.Abort(c, err, "Batch upsert failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) respondWithProduct(c *gin.Context, status int, specID string) {
	view, err := h.q.GetBySpecID(c.Request.Context(), specID)
	if err != nil || view == nil {
		if err == nil {
			err = queries.ErrProductNotFound
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	if status == http.StatusCreated {
		c.Header("Location", "/api/products/"+url.PathEscape(specID))
	}
	c.JSON(status, resdto.FromProductView(view))
}
