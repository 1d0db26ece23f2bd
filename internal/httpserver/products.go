package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zouqly-storefront/internal/catalog"
	"zouqly-storefront/internal/domain"
)

func listProductsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := cat.List()
		if category := c.Query("category"); category != "" {
			filtered := products[:0]
			for _, p := range products {
				if p.Category == category {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}
		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"total":    len(products),
		})
	}
}

func getProductHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := cat.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func listCategoriesHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": cat.Categories()})
	}
}
