package services

import "warung/internal/models"

// BuildInvoice maps a persisted order with its joined user and line items
// into the read-only invoice view. Pure mapping, no I/O.
//
// Each line's MenuPrice and Subtotal come from the menu record as loaded at
// projection time, while Total is the value stored when the order was
// created; after a catalog price change the two can diverge.
func BuildInvoice(order *models.Order) models.Invoice {
	items := make([]models.InvoiceItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.InvoiceItem{
			ID:        item.ID,
			MenuName:  item.Menu.Name,
			MenuPrice: item.Menu.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Menu.Price * float64(item.Quantity),
		})
	}

	return models.Invoice{
		ID:        order.ID,
		OrderDate: order.CreatedAt,
		Status:    order.Status,
		Customer: models.Customer{
			ID:    order.User.ID,
			Name:  order.User.Name,
			Email: order.User.Email,
		},
		Items: items,
		Total: order.Total,
	}
}
