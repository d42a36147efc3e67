package httpserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// buildRouter wires routes for the storefront API.
func buildRouter(logger logrus.FieldLogger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestID(), requestLogger(logger), gin.Recovery())

	if len(deps.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	api.GET("/get-cart-id", getCartIDHandler(deps))
	api.POST("/revalidate", revalidateHandler(deps))
	api.POST("/zonos/revalidate", revalidateHandler(deps))

	api.GET("/cart", getCartHandler(deps))
	api.POST("/cart/items", addItemHandler(deps))
	api.PUT("/cart/items", updateItemHandler(deps))
	api.DELETE("/cart/items/:id", removeItemHandler(deps))
	api.POST("/cart/checkout", checkoutHandler(deps))
	api.POST("/cart/preview", previewHandler())

	api.GET("/products", listProductsHandler(deps))
	api.GET("/products/:handle", getProductHandler(deps))
	api.GET("/products/:handle/recommendations", recommendationsHandler(deps))
	api.GET("/search", listProductsHandler(deps))
	api.GET("/collections", listCollectionsHandler(deps))
	api.GET("/collections/:handle", getCollectionHandler(deps))
	api.GET("/collections/:handle/products", collectionProductsHandler(deps))
	api.GET("/menus/:handle", getMenuHandler(deps))
	api.GET("/pages", listPagesHandler(deps))
	api.GET("/pages/:handle", getPageHandler(deps))

	return router
}
