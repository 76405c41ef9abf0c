package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errGatewayNotConfigured = errors.New("payment gateway not configured")

type InvoiceConfig struct {
	Currency string
	DueDays  int
}

type RecordPaymentInput struct {
	InvoiceID      string
	MethodID       string
	Amount         decimal.Decimal
	Reference      string
	Notes          string
	AuthorID       string
	GatewayPayload json.RawMessage
}

// InvoiceView is an invoice together with its derived balance.
type InvoiceView struct {
	Invoice entities.Invoice
	Balance entities.Balance
}

// IInvoiceUseCase is the invoice & payment reconciliation engine.
//
// The outstanding balance is always derived from the payment ledger:
//   - RecordPayment checks over-payment against that derivation under a per-invoice lock
//   - GetBalance is a read-only projection
//   - the persisted invoice status is refreshed after each accepted payment

type IInvoiceUseCase interface {
	IssueFromQuotation(ctx context.Context, q entities.Quotation) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (InvoiceView, error)
	GetBalance(ctx context.Context, id string) (entities.Balance, error)
	RecordPayment(ctx context.Context, in RecordPaymentInput) (entities.Payment, error)
	ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]InvoiceView, error)
	ListPaymentsByCustomerID(ctx context.Context, customerID string) ([]entities.Payment, error)
	ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error)
	Cancel(ctx context.Context, id, reason, authorID string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo     interfaces.IInvoiceRepository
	payments interfaces.IPaymentRepository
	methods  interfaces.IPaymentMethodRepository
	gateway  interfaces.IPaymentGateway
	workLogs IWorkLogUseCase
	locker   interfaces.ILocker
	cfg      InvoiceConfig
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	payments interfaces.IPaymentRepository,
	methods interfaces.IPaymentMethodRepository,
	gateway interfaces.IPaymentGateway,
	workLogs IWorkLogUseCase,
	locker interfaces.ILocker,
	cfg InvoiceConfig,
) *InvoiceUseCase {
	if strings.TrimSpace(cfg.Currency) == "" {
		cfg.Currency = "GTQ"
	}
	return &InvoiceUseCase{
		repo:     repo,
		payments: payments,
		methods:  methods,
		gateway:  gateway,
		workLogs: workLogs,
		locker:   locker,
		cfg:      cfg,
	}
}

func invoiceLockKey(id string) string {
	return "invoice:" + id
}

func invoiceIssueLockKey(quotationID string) string {
	return "invoice_issue:" + quotationID
}

// IssueFromQuotation creates the invoice of an approved quotation. It is
// idempotent per quotation: a second call returns the invoice already issued.
func (u *InvoiceUseCase) IssueFromQuotation(ctx context.Context, q entities.Quotation) (entities.Invoice, error) {
	if strings.TrimSpace(q.ID) == "" {
		return entities.Invoice{}, ruleErr(ErrValidation, "quotation id is required")
	}
	if len(q.Items) == 0 {
		return entities.Invoice{}, ruleErr(ErrEmptyItems, "quotation %s has no items to invoice", q.Code)
	}
	if q.Status == entities.QuotationStatusRejected {
		return entities.Invoice{}, ruleErr(ErrInvalidTransition, "quotation %s was rejected and cannot be invoiced", q.Code)
	}

	var inv entities.Invoice
	err := u.locker.WithLock(ctx, invoiceIssueLockKey(q.ID), func(ctx context.Context) error {
		existing, err := u.repo.GetByQuotationID(ctx, q.ID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			log.Printf("[invoice][usecase] issue reuse quotation_id=%s invoice_id=%s", q.ID, existing.ID)
			inv = existing
			return nil
		}

		now := time.Now().UTC()
		id := uuid.NewString()
		items := make([]entities.InvoiceItem, 0, len(q.Items))
		for _, it := range q.Items {
			items = append(items, entities.InvoiceItem{
				QuotationID: q.ID,
				ProductID:   it.ProductID,
				Name:        it.Name,
				Brand:       it.Brand,
				Category:    it.Category,
				Unit:        it.Unit,
				Quantity:    it.Quantity,
				Price:       it.Price,
			})
		}
		// A zero total has nothing outstanding and starts PAID.
		total := q.Total()
		candidate := entities.Invoice{
			ID:          id,
			Code:        entities.HumanCode("FAC", id),
			WorkOrderID: q.WorkOrderID,
			QuotationID: q.ID,
			CustomerID:  q.ApproveBy,
			Status:      entities.InvoiceStatusFor(total, total),
			Total:       total,
			Currency:    u.cfg.Currency,
			IssueDate:   now,
			Items:       items,
			UpdatedAt:   now,
		}
		if u.cfg.DueDays > 0 {
			due := now.AddDate(0, 0, u.cfg.DueDays)
			candidate.DueDate = &due
		}
		inv, err = u.repo.Create(ctx, candidate)
		if errors.Is(err, interfaces.ErrQuotationAlreadyInvoiced) {
			// Another process issued it first; hand back that invoice.
			inv, err = u.repo.GetByQuotationID(ctx, q.ID)
			if err == nil && inv.ID == "" {
				err = interfaces.ErrQuotationAlreadyInvoiced
			}
			log.Printf("[invoice][usecase] issue lost reservation quotation_id=%s invoice_id=%s", q.ID, inv.ID)
		}
		return err
	})
	if err != nil {
		log.Printf("[invoice][usecase] issue failed quotation_id=%s err=%v", q.ID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] issue success quotation_id=%s invoice_id=%s total=%s", q.ID, inv.ID, inv.Total.StringFixed(2))
	return inv, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (InvoiceView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return InvoiceView{}, ruleErr(ErrValidation, "invoice id is required")
	}
	inv, err := u.load(ctx, id)
	if err != nil {
		return InvoiceView{}, err
	}
	bal, err := u.balanceOf(ctx, inv)
	if err != nil {
		return InvoiceView{}, err
	}
	return InvoiceView{Invoice: inv, Balance: bal}, nil
}

func (u *InvoiceUseCase) GetBalance(ctx context.Context, id string) (entities.Balance, error) {
	view, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Balance{}, err
	}
	return view.Balance, nil
}

func (u *InvoiceUseCase) RecordPayment(ctx context.Context, in RecordPaymentInput) (entities.Payment, error) {
	in.InvoiceID = strings.TrimSpace(in.InvoiceID)
	in.MethodID = strings.TrimSpace(in.MethodID)
	log.Printf("[payment][usecase] record start invoice_id=%s method_id=%s amount=%s", in.InvoiceID, in.MethodID, in.Amount.String())
	if in.Amount.Sign() <= 0 {
		return entities.Payment{}, ruleErr(ErrInvalidAmount, "payment amount must be greater than zero")
	}
	if !in.Amount.Equal(in.Amount.Round(2)) {
		return entities.Payment{}, ruleErr(ErrInvalidAmount, "payment amount cannot have more than 2 decimal places")
	}
	if in.InvoiceID == "" {
		return entities.Payment{}, ruleErr(ErrValidation, "invoice id is required")
	}
	if in.MethodID == "" {
		return entities.Payment{}, ruleErr(ErrValidation, "payment method id is required")
	}

	var (
		created entities.Payment
		inv     entities.Invoice
		method  entities.PaymentMethod
		after   entities.Balance
	)
	err := u.locker.WithLock(ctx, invoiceLockKey(in.InvoiceID), func(ctx context.Context) error {
		var err error
		inv, err = u.load(ctx, in.InvoiceID)
		if err != nil {
			return err
		}
		method, err = u.methods.GetByID(ctx, in.MethodID)
		if err != nil {
			return err
		}
		if method.ID == "" {
			return notFound("payment method", in.MethodID)
		}
		if inv.Status == entities.InvoiceStatusCancelled {
			return ruleErr(ErrInvoiceVoided, "invoice %s is cancelled and cannot receive payments", inv.Code)
		}

		ledger, err := u.payments.ListByInvoiceID(ctx, inv.ID)
		if err != nil {
			return err
		}
		before := entities.ComputeBalance(inv, ledger)
		if before.Outstanding.IsZero() {
			return ruleErr(ErrInvoiceAlreadyPaid, "invoice %s is already paid", inv.Code)
		}
		if in.Amount.GreaterThan(before.Outstanding) {
			return ruleErr(ErrOverPayment, "payment of %s exceeds the outstanding balance of %s on invoice %s",
				in.Amount.StringFixed(2), before.Outstanding.StringFixed(2), inv.Code)
		}

		p := entities.Payment{
			ID:        uuid.NewString(),
			InvoiceID: inv.ID,
			MethodID:  method.ID,
			Amount:    in.Amount,
			Reference: strings.TrimSpace(in.Reference),
			Notes:     strings.TrimSpace(in.Notes),
			PaidAt:    time.Now().UTC(),
		}
		if method.UsesGateway() {
			if err := u.charge(ctx, inv, &p, in.GatewayPayload); err != nil {
				return err
			}
		}

		created, err = u.payments.Create(ctx, p)
		if err != nil {
			if p.ProviderPaymentID != "" {
				log.Printf("[payment][usecase] charged but not recorded, reconcile invoice_id=%s payment_id=%s provider_payment_id=%s amount=%s err=%v",
					inv.ID, p.ID, p.ProviderPaymentID, p.Amount.StringFixed(2), err)
			}
			return err
		}

		after = entities.ComputeBalance(inv, append(ledger, created))
		if after.Status != inv.Status {
			// The ledger is the source of truth; a stale projection heals on the next payment.
			if _, err := u.repo.UpdateStatus(ctx, inv.ID, after.Status, inv.Notes); err != nil {
				log.Printf("[payment][usecase] status projection update failed invoice_id=%s status=%s err=%v", inv.ID, after.Status, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[payment][usecase] record failed invoice_id=%s err=%v", in.InvoiceID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] record success invoice_id=%s payment_id=%s outstanding=%s status=%s",
		inv.ID, created.ID, after.Outstanding.StringFixed(2), after.Status)

	note := fmt.Sprintf("payment of %s %s recorded on invoice %s via %s; outstanding %s (%s)",
		created.Amount.StringFixed(2), inv.Currency, inv.Code, method.Name, after.Outstanding.StringFixed(2), after.Status)
	return created, appendAudit(ctx, u.workLogs, inv.WorkOrderID, in.AuthorID, entities.WorkLogTypeProgress, note)
}

// charge runs a gateway-backed payment. Only an approved provider status
// lets the payment reach the ledger.
func (u *InvoiceUseCase) charge(ctx context.Context, inv entities.Invoice, p *entities.Payment, payload json.RawMessage) error {
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured invoice_id=%s", inv.ID)
		return errGatewayNotConfigured
	}

	res, err := u.gateway.Charge(ctx, interfaces.ChargeRequest{
		InvoiceID:   inv.ID,
		InvoiceCode: inv.Code,
		Amount:      p.Amount,
		Currency:    inv.Currency,
		Payload:     payload,
	})
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed invoice_id=%s err=%v", inv.ID, err)
		return mapGatewayError(err)
	}
	if !strings.EqualFold(strings.TrimSpace(res.ProviderStatus), "approved") {
		log.Printf("[payment][usecase] payment gateway declined invoice_id=%s provider_status=%s", inv.ID, res.ProviderStatus)
		return ruleErr(ErrPaymentDeclined, "payment provider answered %q for invoice %s", res.ProviderStatus, inv.Code)
	}

	p.ProviderPaymentID = res.ProviderPaymentID
	p.ProviderPayloadRaw = res.ProviderResponse
	if p.Reference == "" {
		p.Reference = res.ProviderPaymentID
	}
	return nil
}

func (u *InvoiceUseCase) ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ruleErr(ErrValidation, "invoice id is required")
	}
	if _, err := u.load(ctx, invoiceID); err != nil {
		return nil, err
	}
	payments, err := u.payments.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	sortByPaidAt(payments)
	return payments, nil
}

func (u *InvoiceUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]InvoiceView, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ruleErr(ErrValidation, "user id is required")
	}
	invoices, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].IssueDate.Before(invoices[j].IssueDate)
	})

	views := make([]InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		bal, err := u.balanceOf(ctx, inv)
		if err != nil {
			return nil, err
		}
		views = append(views, InvoiceView{Invoice: inv, Balance: bal})
	}
	return views, nil
}

func (u *InvoiceUseCase) ListPaymentsByCustomerID(ctx context.Context, customerID string) ([]entities.Payment, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ruleErr(ErrValidation, "user id is required")
	}
	invoices, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var out []entities.Payment
	for _, inv := range invoices {
		payments, err := u.payments.ListByInvoiceID(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, payments...)
	}
	sortByPaidAt(out)
	return out, nil
}

func (u *InvoiceUseCase) ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error) {
	methods, err := u.methods.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(methods, func(i, j int) bool {
		return methods[i].Code < methods[j].Code
	})
	return methods, nil
}

// Cancel voids an invoice that never received a payment. Invoices with
// payments need a compensating entry instead, which this service does not offer.
func (u *InvoiceUseCase) Cancel(ctx context.Context, id, reason, authorID string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	reason = strings.TrimSpace(reason)
	if id == "" {
		return entities.Invoice{}, ruleErr(ErrValidation, "invoice id is required")
	}
	if utf8.RuneCountInString(reason) < minReasonLength {
		return entities.Invoice{}, ruleErr(ErrValidation, "reason must have at least %d characters", minReasonLength)
	}

	var (
		cancelled entities.Invoice
		changed   bool
	)
	err := u.locker.WithLock(ctx, invoiceLockKey(id), func(ctx context.Context) error {
		inv, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		if inv.Status == entities.InvoiceStatusCancelled {
			cancelled = inv
			return nil
		}
		ledger, err := u.payments.ListByInvoiceID(ctx, id)
		if err != nil {
			return err
		}
		if len(ledger) > 0 {
			return ruleErr(ErrInvalidTransition, "invoice %s already has %d payment(s) and cannot be cancelled", inv.Code, len(ledger))
		}
		cancelled, err = u.repo.UpdateStatus(ctx, id, entities.InvoiceStatusCancelled, reason)
		if err != nil {
			return err
		}
		if cancelled.ID == "" {
			return notFound("invoice", id)
		}
		changed = true
		return nil
	})
	if err != nil {
		log.Printf("[invoice][usecase] cancel failed invoice_id=%s err=%v", id, err)
		return entities.Invoice{}, err
	}
	if !changed {
		return cancelled, nil
	}
	log.Printf("[invoice][usecase] cancel success invoice_id=%s", id)

	note := fmt.Sprintf("invoice %s cancelled: %s", cancelled.Code, reason)
	return cancelled, appendAudit(ctx, u.workLogs, cancelled.WorkOrderID, authorID, entities.WorkLogTypeNote, note)
}

func (u *InvoiceUseCase) load(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, notFound("invoice", id)
	}
	return inv, nil
}

func (u *InvoiceUseCase) balanceOf(ctx context.Context, inv entities.Invoice) (entities.Balance, error) {
	ledger, err := u.payments.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return entities.Balance{}, err
	}
	return entities.ComputeBalance(inv, ledger), nil
}

func sortByPaidAt(list []entities.Payment) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].PaidAt.Before(list[j].PaidAt)
	})
}

func mapGatewayError(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrInvalidChargePayload):
		return ruleErr(ErrValidation, "%v", err)
	case isGatewayCustomerNotFound(err):
		return ruleErr(ErrPaymentDeclined, "payer not found for this payment provider context")
	case isGatewayInvalidUsers(err):
		return ruleErr(ErrPaymentDeclined, "invalid users involved between seller token and payer")
	case isGatewayUnauthorized(err):
		return ruleErr(ErrPaymentDeclined, "payment provider rejected the credentials")
	case isGatewayBadRequest(err):
		return ruleErr(ErrPaymentDeclined, "payment provider rejected the payment request")
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
