package response

import (
	"mecanica_workflow/internal/domain/entities"
	"time"
)

type QuotationItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Brand     string `json:"brand,omitempty"`
	Category  string `json:"category,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	LineTotal string `json:"line_total"`
}

type QuotationResponse struct {
	ID           string                  `json:"id"`
	Code         string                  `json:"code"`
	WorkOrderID  string                  `json:"work_order_id"`
	StatusID     int                     `json:"status_id"`
	Status       string                  `json:"status"`
	ApproveBy    string                  `json:"approve_by,omitempty"`
	Items        []QuotationItemResponse `json:"items"`
	Total        string                  `json:"total"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
	DecidedAt    *time.Time              `json:"decided_at,omitempty"`
	AuditWarning string                  `json:"audit_warning,omitempty"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	items := make([]QuotationItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuotationItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Brand:     it.Brand,
			Category:  it.Category,
			Unit:      it.Unit,
			Quantity:  it.Quantity,
			Price:     money(it.Price),
			LineTotal: money(it.LineTotal()),
		})
	}
	return QuotationResponse{
		ID:          q.ID,
		Code:        q.Code,
		WorkOrderID: q.WorkOrderID,
		StatusID:    q.Status.ID(),
		Status:      string(q.Status),
		ApproveBy:   q.ApproveBy,
		Items:       items,
		Total:       money(q.Total()),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
		DecidedAt:   q.DecidedAt,
	}
}

func FromQuotations(list []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(list))
	for _, q := range list {
		out = append(out, FromQuotation(q))
	}
	return out
}
