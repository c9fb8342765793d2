package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cycleworks/salesdesk/internal/dto"
)

func (s *Server) listCustomers(c *gin.Context) {
	customers, err := s.customers.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) searchCustomers(c *gin.Context) {
	customers, err := s.customers.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) listIndividualCustomers(c *gin.Context) {
	customers, err := s.customers.Individuals()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) listStoreCustomers(c *gin.Context) {
	customers, err := s.customers.Stores()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) listCustomersByTerritory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	customers, err := s.customers.ByTerritory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) listTopCustomers(c *gin.Context) {
	customers, err := s.customers.GetTopCustomers(queryCount(c, 10))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) getCustomerByAccountNumber(c *gin.Context) {
	customer, err := s.customers.GetByAccountNumber(c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) getCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	customer, err := s.customers.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) getCustomerSummary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	summary, err := s.customers.GetSummary(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) listCustomerOrders(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	orders, err := s.customers.GetOrders(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) createCustomer(c *gin.Context) {
	var d dto.CustomerCreateDto
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := s.customers.Create(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (s *Server) updateCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var d dto.CustomerUpdateDto
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.CustomerID = id

	customer, err := s.customers.Update(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) deleteCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	removed, err := s.customers.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		respondRefusal(c, "customer has orders and cannot be deleted")
		return
	}
	c.Status(http.StatusNoContent)
}
