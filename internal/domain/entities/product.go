package entities

import "github.com/shopspring/decimal"

// Product is a catalog entry (part or labour service) owned by the catalog
// collaborator. The workflow only reads it when pricing a quotation.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand,omitempty"`
	Category string          `json:"category,omitempty"`
	Unit     string          `json:"unit,omitempty"`
	Price    decimal.Decimal `json:"price"`
}
