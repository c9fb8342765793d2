package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cycleworks/salesdesk/internal/dto"
)

func (s *Server) listPersons(c *gin.Context) {
	persons, err := s.persons.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, persons)
}

func (s *Server) listPersonsPaged(c *gin.Context) {
	var params dto.PersonQueryParameters
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := s.persons.GetPaged(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) searchPersons(c *gin.Context) {
	persons, err := s.persons.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, persons)
}

func (s *Server) listPersonsByType(c *gin.Context) {
	persons, err := s.persons.ByType(c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, persons)
}

func (s *Server) getPerson(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := s.persons.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) getPersonDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := s.persons.GetWithDetails(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) createPerson(c *gin.Context) {
	var d dto.PersonCreateDto
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := s.persons.Create(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) updatePerson(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var d dto.PersonUpdateDto
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.BusinessEntityID = id

	p, err := s.persons.Update(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deletePerson(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	removed, err := s.persons.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		respondRefusal(c, "person could not be deleted")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listPersonEmails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	emails, err := s.persons.GetEmails(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emails)
}

func (s *Server) addPersonEmail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var d struct {
		EmailAddress string `json:"email_address" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, err := s.persons.AddEmail(id, d.EmailAddress)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, email)
}

func (s *Server) removePersonEmail(c *gin.Context) {
	emailID, ok := pathID(c, "emailId")
	if !ok {
		return
	}

	removed, err := s.persons.RemoveEmail(emailID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "email address not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listPersonPhones(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	phones, err := s.persons.GetPhones(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, phones)
}

func (s *Server) addPersonPhone(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var d dto.PersonPhoneDto
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.BusinessEntityID = id

	phone, err := s.persons.AddPhone(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, phone)
}

func (s *Server) removePersonPhone(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	typeID, ok := pathID(c, "typeId")
	if !ok {
		return
	}

	removed, err := s.persons.RemovePhone(id, typeID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "phone not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listPersonAddresses(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	addresses, err := s.persons.GetAddresses(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (s *Server) addPersonAddress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var d struct {
		AddressID     int64 `json:"address_id" binding:"required"`
		AddressTypeID int64 `json:"address_type_id"`
	}
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := s.persons.AddAddress(id, d.AddressID, d.AddressTypeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (s *Server) removePersonAddress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	addressID, ok := pathID(c, "addressId")
	if !ok {
		return
	}

	removed, err := s.persons.RemoveAddress(id, addressID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "address link not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
