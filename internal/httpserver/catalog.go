package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zonos-storefront/internal/domain"
)

func respondCatalogError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func listProductsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := deps.Catalog.Products(
			c.Request.Context(),
			c.Query("q"),
			c.Query("sort"),
			c.Query("reverse") == "true",
		)
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := deps.Catalog.Product(c.Request.Context(), c.Param("handle"))
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func recommendationsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := deps.Catalog.Recommendations(c.Request.Context(), c.Param("handle"))
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func listCollectionsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		collections, err := deps.Catalog.Collections(c.Request.Context())
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"collections": collections})
	}
}

func getCollectionHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		collection, err := deps.Catalog.Collection(c.Request.Context(), c.Param("handle"))
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, collection)
	}
}

func collectionProductsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := deps.Catalog.CollectionProducts(
			c.Request.Context(),
			c.Param("handle"),
			c.Query("sort"),
			c.Query("reverse") == "true",
		)
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getMenuHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		menu, err := deps.Catalog.Menu(c.Request.Context(), c.Param("handle"))
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"menu": menu})
	}
}

func listPagesHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		pages, err := deps.Catalog.Pages(c.Request.Context())
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"pages": pages})
	}
}

func getPageHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := deps.Catalog.Page(c.Request.Context(), c.Param("handle"))
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
