package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cycleworks/salesdesk/internal/dto"
)

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.sales.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) listRecentOrders(c *gin.Context) {
	orders, err := s.sales.Recent(queryCount(c, 10))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) listOrdersByDateRange(c *gin.Context) {
	start, err := queryDate(c, "start")
	if err != nil || start == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	end, err := queryDate(c, "end")
	if err != nil || end == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return
	}

	orders, err := s.sales.ByDateRange(*start, *end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) listOrdersByStatus(c *gin.Context) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	orders, err := s.sales.ByStatus(status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) listOrdersBySalesPerson(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	orders, err := s.sales.BySalesPerson(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := s.sales.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) getOrderDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := s.sales.GetWithDetails(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) createOrder(c *gin.Context) {
	var d dto.SalesOrderCreateDto
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.sales.Create(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (s *Server) updateOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var d dto.SalesOrderUpdateDto
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.SalesOrderID = id

	order, err := s.sales.Update(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	removed, err := s.sales.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		respondRefusal(c, "shipped orders cannot be deleted")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) shipOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var d struct {
		ShipDate *time.Time `json:"ship_date"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	shipped, err := s.sales.Ship(id, d.ShipDate)
	if err != nil {
		respondError(c, err)
		return
	}
	if !shipped {
		respondRefusal(c, "order cannot be shipped in its current status")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) cancelOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cancelled, err := s.sales.Cancel(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !cancelled {
		respondRefusal(c, "shipped orders cannot be cancelled")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) addOrderLine(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var d dto.SalesOrderDetailCreateDto
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := s.sales.AddDetail(id, d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

func (s *Server) updateOrderLine(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lineID, ok := pathID(c, "lineId")
	if !ok {
		return
	}

	var d dto.SalesOrderDetailUpdateDto
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.SalesOrderID = id
	d.SalesOrderDetailID = lineID

	line, err := s.sales.UpdateDetail(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (s *Server) removeOrderLine(c *gin.Context) {
	lineID, ok := pathID(c, "lineId")
	if !ok {
		return
	}

	removed, err := s.sales.RemoveDetail(lineID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "order line not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getSalesSummary(c *gin.Context) {
	start, err := queryDate(c, "start")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	end, err := queryDate(c, "end")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return
	}

	summary, err := s.sales.GetSalesSummary(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) getTotalSales(c *gin.Context) {
	start, err := queryDate(c, "start")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	end, err := queryDate(c, "end")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return
	}

	total, err := s.sales.GetTotalSales(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_sales": total})
}

func (s *Server) listTopSellingProducts(c *gin.Context) {
	start, err := queryDate(c, "start")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	end, err := queryDate(c, "end")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return
	}

	products, err := s.sales.GetTopSellingProducts(queryCount(c, 10), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listSalesPersonPerformance(c *gin.Context) {
	start, err := queryDate(c, "start")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	end, err := queryDate(c, "end")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return
	}

	performance, err := s.sales.GetSalesPersonPerformance(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, performance)
}

func (s *Server) listMonthlySales(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	monthly, err := s.sales.GetMonthlySales(year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, monthly)
}
