package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cycleworks/salesdesk/internal/dto"
)

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.products.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) searchProducts(c *gin.Context) {
	products, err := s.products.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listActiveProducts(c *gin.Context) {
	products, err := s.products.Active()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listDiscontinuedProducts(c *gin.Context) {
	products, err := s.products.Discontinued()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listLowStockProducts(c *gin.Context) {
	products, err := s.products.LowStock()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listProductsToReorder(c *gin.Context) {
	products, err := s.products.ToReorder()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listProductsByPriceRange(c *gin.Context) {
	min, err := decimal.NewFromString(c.DefaultQuery("min", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min"})
		return
	}
	max, err := decimal.NewFromString(c.DefaultQuery("max", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max"})
		return
	}

	products, err := s.products.ByPriceRange(min, max)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listProductsByCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	products, err := s.products.ByCategory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listProductsBySubcategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	products, err := s.products.BySubcategory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := s.products.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) getProductDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := s.products.GetWithDetails(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) getProductStock(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	level, err := s.products.GetStockLevel(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": id, "stock_level": level})
}

func (s *Server) updateProductStock(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var d struct {
		Quantity int `json:"quantity" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.products.UpdateStock(id, d.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "product has no inventory rows"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": id, "stock_level": d.Quantity})
}

func (s *Server) createProduct(c *gin.Context) {
	var d dto.ProductCreateDto
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := s.products.Create(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var d dto.ProductUpdateDto
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.ProductID = id

	product, err := s.products.Update(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	removed, err := s.products.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		respondRefusal(c, "product is referenced by orders and cannot be deleted")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) discontinueProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := s.products.Discontinue(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) reactivateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := s.products.Reactivate(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.products.GetCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) listSubcategories(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	subcategories, err := s.products.GetSubcategories(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategories)
}
