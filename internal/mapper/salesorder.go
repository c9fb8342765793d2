package mapper

import (
	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/models"
)

func OrderToDto(o models.SalesOrderHeader) dto.SalesOrderHeaderDto {
	out := dto.SalesOrderHeaderDto{
		SalesOrderID:        o.SalesOrderID,
		RevisionNumber:      o.RevisionNumber,
		OrderDate:           o.OrderDate,
		DueDate:             o.DueDate,
		ShipDate:            o.ShipDate,
		Status:              o.Status,
		OnlineOrderFlag:     o.OnlineOrderFlag,
		SalesOrderNumber:    o.SalesOrderNumber,
		PurchaseOrderNumber: deref(o.PurchaseOrderNumber),
		AccountNumber:       deref(o.AccountNumber),
		CustomerID:          o.CustomerID,
		SalesPersonID:       o.SalesPersonID,
		TerritoryID:         o.TerritoryID,
		BillToAddressID:     o.BillToAddressID,
		ShipToAddressID:     o.ShipToAddressID,
		ShipMethodID:        o.ShipMethodID,
		SubTotal:            o.SubTotal,
		TaxAmt:              o.TaxAmt,
		Freight:             o.Freight,
		TotalDue:            o.TotalDue,
		Comment:             deref(o.Comment),
		ModifiedDate:        o.ModifiedDate,
	}
	if o.Customer != nil {
		c := CustomerToDto(*o.Customer)
		out.Customer = &c
	}
	for _, d := range o.Details {
		out.OrderDetails = append(out.OrderDetails, DetailToDto(d))
	}
	return out
}

func OrdersToDto(orders []models.SalesOrderHeader) []dto.SalesOrderHeaderDto {
	out := make([]dto.SalesOrderHeaderDto, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderToDto(o))
	}
	return out
}

func DetailToDto(d models.SalesOrderDetail) dto.SalesOrderDetailDto {
	return dto.SalesOrderDetailDto{
		SalesOrderID:          d.SalesOrderID,
		SalesOrderDetailID:    d.SalesOrderDetailID,
		CarrierTrackingNumber: deref(d.CarrierTrackingNumber),
		OrderQty:              d.OrderQty,
		ProductID:             d.ProductID,
		SpecialOfferID:        d.SpecialOfferID,
		UnitPrice:             d.UnitPrice,
		UnitPriceDiscount:     d.UnitPriceDiscount,
		LineTotal:             d.LineTotal,
		ProductName:           d.ProductName,
		ProductNumber:         d.ProductNumber,
		ModifiedDate:          d.ModifiedDate,
	}
}

func DetailsToDto(details []models.SalesOrderDetail) []dto.SalesOrderDetailDto {
	out := make([]dto.SalesOrderDetailDto, 0, len(details))
	for _, d := range details {
		out = append(out, DetailToDto(d))
	}
	return out
}
