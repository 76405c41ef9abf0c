package entities

import "time"

type WorkLogType string

const (
	WorkLogTypeNote         WorkLogType = "NOTE"
	WorkLogTypeDiagnosis    WorkLogType = "DIAGNOSIS"
	WorkLogTypeProgress     WorkLogType = "PROGRESS"
	WorkLogTypeIssue        WorkLogType = "ISSUE"
	WorkLogTypeCustomerNote WorkLogType = "CUSTOMER_NOTE"
)

const (
	MaxWorkLogNoteLength = 2000
	MaxWorkLogHours      = 24
)

func (t WorkLogType) IsValid() bool {
	switch t {
	case WorkLogTypeNote, WorkLogTypeDiagnosis, WorkLogTypeProgress, WorkLogTypeIssue, WorkLogTypeCustomerNote:
		return true
	}
	return false
}

// WorkLog is an append-only ledger entry on a work order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
type WorkLog struct {
	ID          string      `json:"id"`
	WorkOrderID string      `json:"work_order_id"`
	AuthorID    string      `json:"autor_id"`
	LogType     WorkLogType `json:"log_type"`
	Note        string      `json:"note"`
	Hours       float64     `json:"hours"`
	CreatedAt   time.Time   `json:"log_created_at"`
}
