package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"mecanica_workflow/internal/adapter/http/handlers/mocks"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newQuotationRouter(t *testing.T) (*mocks.MockIQuotationUseCase, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	h := NewQuotationHandler(uc)

	r := gin.New()
	r.POST("/v1/quotations", h.Create)
	r.GET("/v1/quotations/:id", h.GetByID)
	r.PATCH("/v1/quotations/:id/status", h.SetStatus)
	r.GET("/v1/work-orders/:id/quotations", h.ListByWorkOrder)
	return uc, r
}

func TestQuotationHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty items", func(t *testing.T) {
		uc, r := newQuotationRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, &usecase.RuleError{Kind: usecase.ErrEmptyItems, Message: "a quotation needs at least one item"})

		w := doRequest(r, http.MethodPost, "/v1/quotations", `{"work_order_id":"wo-1","items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "EMPTY_ITEMS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newQuotationRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateQuotationInput{
			WorkOrderID: "wo-1",
			Items:       []usecase.QuotationItemInput{{ProductID: "1", Quantity: 2}},
		}).Return(entities.Quotation{
			ID:          "q-1",
			WorkOrderID: "wo-1",
			Status:      entities.QuotationStatusDraft,
			Items:       []entities.QuotationItem{{ProductID: "1", Quantity: 2, Price: decimal.NewFromInt(50)}},
		}, nil)

		w := doRequest(r, http.MethodPost, "/v1/quotations", `{"work_order_id":"wo-1","items":[{"product_id":"1","quantity":2}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["total"] != "100.00" || body["status_id"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status id", func(t *testing.T) {
		_, r := newQuotationRouter(t)
		w := doRequest(r, http.MethodPatch, "/v1/quotations/q-1/status", `{"status_id":12}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve after rejection", func(t *testing.T) {
		uc, r := newQuotationRouter(t)
		uc.EXPECT().SetStatus(gomock.Any(), "q-1", entities.QuotationStatusApproved, "cli-1").
			Return(entities.Quotation{}, &usecase.RuleError{Kind: usecase.ErrInvalidTransition, Message: "quotation q-1 is REJECTED"})

		w := doRequest(r, http.MethodPatch, "/v1/quotations/q-1/status", `{"status_id":3,"author_id":"cli-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approved", func(t *testing.T) {
		uc, r := newQuotationRouter(t)
		uc.EXPECT().SetStatus(gomock.Any(), "q-1", entities.QuotationStatusApproved, "cli-1").
			Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusApproved}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/quotations/q-1/status", `{"status_id":3}`, authorHeader, "cli-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["status"] != "APPROVED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get unknown", func(t *testing.T) {
		uc, r := newQuotationRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quotation{}, &usecase.RuleError{Kind: usecase.ErrNotFound, Message: "quotation q-9 not found"})

		w := doRequest(r, http.MethodGet, "/v1/quotations/q-9", "")
		if body := decodeBody(t, w); w.Code != http.StatusNotFound || body["code"] != "QUOTATION_NOT_FOUND" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("list by work order", func(t *testing.T) {
		uc, r := newQuotationRouter(t)
		uc.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Quotation{{ID: "q-1"}, {ID: "q-2"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/quotations", "")
		var list []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
