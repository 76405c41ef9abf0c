package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type QuotationItemInput struct {
	ProductID string
	Quantity  int
}

type CreateQuotationInput struct {
	WorkOrderID string
	CustomerID  string
	Items       []QuotationItemInput
}

// IQuotationUseCase is the quotation & authorization workflow.
//
// Approving a quotation issues exactly one invoice; the client decision is
// forwarded to the work order state machine.

type IQuotationUseCase interface {
	Create(ctx context.Context, in CreateQuotationInput) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Quotation, error)
	SetStatus(ctx context.Context, id string, status entities.QuotationStatus, authorID string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo     interfaces.IQuotationRepository
	catalog  interfaces.IProductCatalog
	orders   IWorkOrderUseCase
	invoices IInvoiceUseCase
	workLogs IWorkLogUseCase
	locker   interfaces.ILocker
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	catalog interfaces.IProductCatalog,
	orders IWorkOrderUseCase,
	invoices IInvoiceUseCase,
	workLogs IWorkLogUseCase,
	locker interfaces.ILocker,
) *QuotationUseCase {
	return &QuotationUseCase{
		repo:     repo,
		catalog:  catalog,
		orders:   orders,
		invoices: invoices,
		workLogs: workLogs,
		locker:   locker,
	}
}

func quotationLockKey(id string) string {
	return "quotation:" + id
}

func (u *QuotationUseCase) Create(ctx context.Context, in CreateQuotationInput) (entities.Quotation, error) {
	in.WorkOrderID = strings.TrimSpace(in.WorkOrderID)
	log.Printf("[quotation][usecase] create start work_order_id=%s items=%d", in.WorkOrderID, len(in.Items))
	if in.WorkOrderID == "" {
		return entities.Quotation{}, ruleErr(ErrValidation, "work order id is required")
	}
	if len(in.Items) == 0 {
		return entities.Quotation{}, ruleErr(ErrEmptyItems, "a quotation needs at least one item")
	}

	// Repeated products are merged into a single line.
	quantities := make(map[string]int, len(in.Items))
	order := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		productID := strings.TrimSpace(it.ProductID)
		if productID == "" {
			return entities.Quotation{}, ruleErr(ErrValidation, "product id is required on every item")
		}
		if it.Quantity < 1 {
			return entities.Quotation{}, ruleErr(ErrInvalidQuantity, "quantity for product %s must be at least 1", productID)
		}
		if _, seen := quantities[productID]; !seen {
			order = append(order, productID)
		}
		quantities[productID] += it.Quantity
	}

	wo, err := u.orders.GetByID(ctx, in.WorkOrderID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if wo.Status.IsTerminal() {
		return entities.Quotation{}, ruleErr(ErrInvalidTransition, "work order %s is %s and cannot be quoted", wo.Code, wo.Status)
	}

	items := make([]entities.QuotationItem, 0, len(order))
	for _, productID := range order {
		p, err := u.catalog.GetByID(ctx, productID)
		if err != nil {
			log.Printf("[quotation][usecase] catalog lookup failed product_id=%s err=%v", productID, err)
			return entities.Quotation{}, err
		}
		if p.ID == "" {
			return entities.Quotation{}, notFound("product", productID)
		}
		items = append(items, entities.QuotationItem{
			ProductID: p.ID,
			Name:      p.Name,
			Brand:     p.Brand,
			Category:  p.Category,
			Unit:      p.Unit,
			Quantity:  quantities[productID],
			Price:     p.Price,
		})
	}

	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		customerID = wo.CustomerID
	}
	now := time.Now().UTC()
	id := uuid.NewString()
	created, err := u.repo.Create(ctx, entities.Quotation{
		ID:          id,
		Code:        entities.HumanCode("QT", id),
		WorkOrderID: wo.ID,
		Status:      entities.QuotationStatusDraft,
		ApproveBy:   customerID,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		log.Printf("[quotation][usecase] create failed work_order_id=%s err=%v", wo.ID, err)
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] create success quotation_id=%s total=%s", created.ID, created.Total().StringFixed(2))

	note := fmt.Sprintf("quotation %s drafted with %d item(s), total %s", created.Code, len(created.Items), created.Total().StringFixed(2))
	return created, appendAudit(ctx, u.workLogs, wo.ID, SystemAuthorID, entities.WorkLogTypeNote, note)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ruleErr(ErrValidation, "quotation id is required")
	}
	return u.load(ctx, id)
}

func (u *QuotationUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Quotation, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if _, err := u.orders.GetByID(ctx, workOrderID); err != nil {
		return nil, err
	}
	list, err := u.repo.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

// SetStatus records the client decision on a quotation.
//
// Repeating the current status succeeds without side effects, except that a
// repeated approval makes sure its invoice exists, which heals a previous
// attempt that failed between the two writes.
func (u *QuotationUseCase) SetStatus(ctx context.Context, id string, status entities.QuotationStatus, authorID string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	log.Printf("[quotation][usecase] set-status start quotation_id=%s status=%s", id, status)
	if id == "" {
		return entities.Quotation{}, ruleErr(ErrValidation, "quotation id is required")
	}
	if status.ID() == 0 {
		return entities.Quotation{}, ruleErr(ErrValidation, "unknown quotation status %q", status)
	}
	if status == entities.QuotationStatusDraft {
		return entities.Quotation{}, ruleErr(ErrInvalidTransition, "a quotation cannot go back to %s", status)
	}

	var (
		updated entities.Quotation
		invoice entities.Invoice
		changed bool
	)
	err := u.locker.WithLock(ctx, quotationLockKey(id), func(ctx context.Context) error {
		q, err := u.load(ctx, id)
		if err != nil {
			return err
		}

		if q.Status == status {
			updated = q
			if status == entities.QuotationStatusApproved {
				invoice, err = u.invoices.IssueFromQuotation(ctx, q)
			}
			return err
		}
		if q.Status.IsTerminal() {
			return ruleErr(ErrInvalidTransition, "quotation %s is already %s", q.Code, q.Status)
		}
		if status == entities.QuotationStatusSent && q.Status != entities.QuotationStatusDraft {
			return ruleErr(ErrInvalidTransition, "quotation %s cannot move from %s to %s", q.Code, q.Status, status)
		}

		now := time.Now().UTC()
		var decidedAt *time.Time
		if status.IsTerminal() {
			decidedAt = &now
		}
		if status == entities.QuotationStatusApproved {
			q.Status = status
			q.DecidedAt = decidedAt
			invoice, err = u.invoices.IssueFromQuotation(ctx, q)
			if err != nil {
				return err
			}
		}

		updated, err = u.repo.UpdateStatus(ctx, id, status, decidedAt)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			return notFound("quotation", id)
		}
		changed = true
		return nil
	})
	if err != nil {
		log.Printf("[quotation][usecase] set-status failed quotation_id=%s status=%s err=%v", id, status, err)
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] set-status success quotation_id=%s status=%s changed=%t invoice_id=%s", id, status, changed, invoice.ID)

	if !status.IsTerminal() {
		if !changed {
			return updated, nil
		}
		note := fmt.Sprintf("quotation %s sent to the client", updated.Code)
		return updated, appendAudit(ctx, u.workLogs, updated.WorkOrderID, authorID, entities.WorkLogTypeCustomerNote, note)
	}

	// The outcome is re-applied on a repeated decision; it is a no-op once
	// the order has left EVALUATING.
	approved := status == entities.QuotationStatusApproved
	_, outcomeErr := u.orders.ApplyAuthorizationOutcome(ctx, updated.WorkOrderID, approved, authorID)
	if outcomeErr != nil && !IsAuditOnly(outcomeErr) {
		return entities.Quotation{}, outcomeErr
	}
	if !changed {
		return updated, outcomeErr
	}

	note := fmt.Sprintf("client rejected quotation %s", updated.Code)
	if approved {
		note = fmt.Sprintf("client approved quotation %s, invoice %s issued for %s %s",
			updated.Code, invoice.Code, invoice.Total.StringFixed(2), invoice.Currency)
	}
	return updated, errors.Join(outcomeErr, appendAudit(ctx, u.workLogs, updated.WorkOrderID, authorID, entities.WorkLogTypeCustomerNote, note))
}

func (u *QuotationUseCase) load(ctx context.Context, id string) (entities.Quotation, error) {
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, notFound("quotation", id)
	}
	return q, nil
}
