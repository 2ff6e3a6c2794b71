package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seller-catalog/internal/handler/api"
	"seller-catalog/internal/handler/middleware"
	"seller-catalog/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Products   *api.ProductHandler
	Coupons    *api.CouponHandler
	Shops      *api.ShopHandler
	Exclusions *api.ExclusionHandler
	Imports    *api.ImportHandler
	Changes    *api.ChangeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/products"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Products.List},
			{Method: http.MethodPost, Path: "", Handler: h.Products.Create, Mw: requireAuth},
			{Method: http.MethodPost, Path: "/batch", Handler: h.Products.UpsertBatch, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/:spec_id", Handler: h.Products.Get},
			{Method: http.MethodPut, Path: "/:spec_id", Handler: h.Products.Update, Mw: requireAuth},
			{Method: http.MethodDelete, Path: "/:spec_id", Handler: h.Products.Delete, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/:spec_id/pricing", Handler: h.Products.Pricing},
		})

		addRoutes(apiGroup.Group("/coupons"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Coupons.List},
			{Method: http.MethodPost, Path: "", Handler: h.Coupons.Create, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Coupons.Stats},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Coupons.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Coupons.Update, Mw: requireAuth},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Coupons.Delete, Mw: requireAuth},
		})

		addRoutes(apiGroup.Group("/shops/:shop"), []route{
			{Method: http.MethodGet, Path: "/eligible-products", Handler: h.Shops.EligibleProducts},
			{Method: http.MethodGet, Path: "/final-price", Handler: h.Shops.FinalPrice},
			{Method: http.MethodGet, Path: "/coupons/active", Handler: h.Coupons.ListActiveForShop},
		})

		addRoutes(apiGroup.Group("/exclusions"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Exclusions.List},
			{Method: http.MethodPut, Path: "/invalid-spec-ids", Handler: h.Exclusions.ReplaceInvalidSpecIDs, Mw: requireAuth},
			{Method: http.MethodPut, Path: "/enabled-skus", Handler: h.Exclusions.ReplaceEnabledSKUs, Mw: requireAuth},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/imports", Handler: h.Imports.Import, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/changes", Handler: h.Changes.Stream},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
