package request

import "mecanica_workflow/internal/domain/entities"

type QuotationItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateQuotationRequest carries product ids and quantities only. Prices are
// always read from the catalog.
type CreateQuotationRequest struct {
	WorkOrderID string                 `json:"work_order_id" binding:"required"`
	CustomerID  string                 `json:"customer_id"`
	Items       []QuotationItemRequest `json:"items"`
}

type SetQuotationStatusRequest struct {
	StatusID int    `json:"status_id" binding:"required"`
	AuthorID string `json:"author_id"`
}

func (r SetQuotationStatusRequest) ResolveStatus() (entities.QuotationStatus, error) {
	return quotationStatus(r.StatusID)
}
