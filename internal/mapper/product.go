package mapper

import (
	"time"

	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/google/uuid"
)

func ProductToDto(p models.Product) dto.ProductDto {
	out := dto.ProductDto{
		ProductID:            p.ProductID,
		Name:                 p.Name,
		ProductNumber:        p.ProductNumber,
		Color:                deref(p.Color),
		StandardCost:         p.StandardCost,
		ListPrice:            p.ListPrice,
		Size:                 deref(p.Size),
		Weight:               p.Weight,
		SafetyStockLevel:     p.SafetyStockLevel,
		ReorderPoint:         p.ReorderPoint,
		ProductSubcategoryID: p.ProductSubcategoryID,
		ProductModelID:       p.ProductModelID,
		SellStartDate:        p.SellStartDate,
		SellEndDate:          p.SellEndDate,
		DiscontinuedDate:     p.DiscontinuedDate,
		ModifiedDate:         p.ModifiedDate,
	}
	if p.Subcategory != nil {
		out.SubcategoryName = p.Subcategory.Name
		if p.Subcategory.Category != nil {
			out.CategoryName = p.Subcategory.Category.Name
		}
	}
	for _, inv := range p.Inventories {
		out.StockLevel += inv.Quantity
	}
	return out
}

func ProductToListDto(p models.Product) dto.ProductListDto {
	out := dto.ProductListDto{
		ProductID:     p.ProductID,
		Name:          p.Name,
		ProductNumber: p.ProductNumber,
		ListPrice:     p.ListPrice,
		Color:         deref(p.Color),
		IsActive:      p.SellEndDate == nil || p.SellEndDate.After(time.Now()),
	}
	if p.Subcategory != nil {
		out.SubcategoryName = p.Subcategory.Name
		if p.Subcategory.Category != nil {
			out.CategoryName = p.Subcategory.Category.Name
		}
	}
	return out
}

func ProductsToListDto(products []models.Product) []dto.ProductListDto {
	out := make([]dto.ProductListDto, 0, len(products))
	for _, p := range products {
		out = append(out, ProductToListDto(p))
	}
	return out
}

// ProductFromCreate builds a new product entity. A zero sell-start date
// defaults to now; the standard-cost default is applied by the service.
func ProductFromCreate(d dto.ProductCreateDto) models.Product {
	sellStart := time.Now()
	if d.SellStartDate != nil {
		sellStart = *d.SellStartDate
	}
	return models.Product{
		Name:                 d.Name,
		ProductNumber:        d.ProductNumber,
		MakeFlag:             d.MakeFlag,
		FinishedGoodsFlag:    d.FinishedGoodsFlag,
		Color:                optional(d.Color),
		SafetyStockLevel:     d.SafetyStockLevel,
		ReorderPoint:         d.ReorderPoint,
		StandardCost:         d.StandardCost,
		ListPrice:            d.ListPrice,
		Size:                 optional(d.Size),
		Weight:               d.Weight,
		DaysToManufacture:    d.DaysToManufacture,
		ProductSubcategoryID: d.ProductSubcategoryID,
		ProductModelID:       d.ProductModelID,
		SellStartDate:        sellStart,
		SellEndDate:          d.SellEndDate,
		Rowguid:              uuid.NewString(),
		ModifiedDate:         time.Now(),
	}
}

// ApplyProductUpdate copies the mutable fields onto the loaded entity.
func ApplyProductUpdate(d dto.ProductUpdateDto, p *models.Product) {
	p.Name = d.Name
	p.ProductNumber = d.ProductNumber
	p.MakeFlag = d.MakeFlag
	p.FinishedGoodsFlag = d.FinishedGoodsFlag
	p.Color = optional(d.Color)
	p.SafetyStockLevel = d.SafetyStockLevel
	p.ReorderPoint = d.ReorderPoint
	p.StandardCost = d.StandardCost
	p.ListPrice = d.ListPrice
	p.Size = optional(d.Size)
	p.Weight = d.Weight
	p.DaysToManufacture = d.DaysToManufacture
	p.ProductSubcategoryID = d.ProductSubcategoryID
	p.ProductModelID = d.ProductModelID
	if d.SellStartDate != nil {
		p.SellStartDate = *d.SellStartDate
	}
	p.SellEndDate = d.SellEndDate
	p.ModifiedDate = time.Now()
}
