package api

import (
	"net/http"

	resdto "seller-catalog/internal/handler/dto/response"
	"seller-catalog/internal/handler/httperr"
	"seller-catalog/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ShopHandler serves the per-shop views: sellable products and ad hoc pricing.
type ShopHandler struct {
	eligibility queries.EligibilityQueries
	pricing     queries.PricingEngine
}

func NewShopHandler(eligibility queries.EligibilityQueries, pricing queries.PricingEngine) *ShopHandler {
	return &ShopHandler{eligibility: eligibility, pricing: pricing}
}

// @Summary Eligible products
// @Description One entry per sellable product of the shop after the exclusion lists are applied, sorted by name
// @Tags shops
// @Produce json
// @Param shop path string true "Shop"
// @Success 200 {array} queries.EligibleProductView
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/shops/{shop}/eligible-products [get]
func (h *ShopHandler) EligibleProducts(c *gin.Context) {
	items, err := h.eligibility.ListEligibleProducts(c.Request.Context(), c.Param("shop"))
	if err != nil {
		httperr.Abort(c, err, "Invalid shop")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Final price
// @Description Lowest price reachable with one coupon of the shop active today
// @Tags shops
// @Produce json
// @Param shop path string true "Shop"
// @Param price query string true "List price"
// @Param product_id query string false "Product ID, for product-scoped coupons"
// @Success 200 {object} resdto.FinalPriceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/shops/{shop}/final-price [get]
func (h *ShopHandler) FinalPrice(c *gin.Context) {
	price, err := decimal.NewFromString(c.Query("price"))
	if err != nil || price.IsNegative() {
		if err == nil {
			err = errNegativePrice
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price", nil)
		return
	}
	shop, productID := c.Param("shop"), c.Query("product_id")
	c.JSON(http.StatusOK, resdto.FinalPriceResponse{
		Shop:       shop,
		ProductID:  productID,
		Price:      price,
		FinalPrice: h.pricing.CalculateFinalPrice(c.Request.Context(), price, shop, productID),
	})
}
