package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"mecanica_workflow/internal/adapter/http/handlers/mocks"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAssignmentRouter(t *testing.T) (*mocks.MockIAssignmentUseCase, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAssignmentUseCase(ctrl)
	h := NewAssignmentHandler(uc)

	r := gin.New()
	r.POST("/v1/assignments", h.Create)
	r.PATCH("/v1/assignments/:id/release", h.Release)
	r.POST("/v1/work-orders/:id/reassign", h.Reassign)
	r.GET("/v1/work-orders/:id/assignments", h.ListByWorkOrder)
	r.GET("/v1/assignees/:id/workload", h.GetWorkload)
	return uc, r
}

func TestAssignmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown role", func(t *testing.T) {
		_, r := newAssignmentRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/assignments", `{"work_order_id":"wo-1","assignee_id":"emp-1","role_id":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already assigned", func(t *testing.T) {
		uc, r := newAssignmentRouter(t)
		uc.EXPECT().Assign(gomock.Any(), gomock.Any()).Return(entities.WorkAssignment{}, &usecase.RuleError{Kind: usecase.ErrAlreadyAssigned, Message: "work order wo-1 already has an active EMPLOYEE"})

		w := doRequest(r, http.MethodPost, "/v1/assignments", `{"work_order_id":"wo-1","assignee_id":"emp-2","role_id":2}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "ALREADY_ASSIGNED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newAssignmentRouter(t)
		uc.EXPECT().Assign(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.AssignInput) (entities.WorkAssignment, error) {
			if in.Role != entities.AssignmentRoleSpecialist || in.AssigneeID != "esp-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.WorkAssignment{ID: "a-1", WorkOrderID: in.WorkOrderID, AssigneeID: in.AssigneeID, Role: in.Role, AssignedAt: time.Now().UTC()}, nil
		})

		w := doRequest(r, http.MethodPost, "/v1/assignments", `{"work_order_id":"wo-1","assignee_id":"esp-1","role_id":3}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "a-1" || body["role_id"] != float64(3) || body["active"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAssignmentHandler_ReleaseAndReassign(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("release unknown assignment", func(t *testing.T) {
		uc, r := newAssignmentRouter(t)
		uc.EXPECT().Release(gomock.Any(), "a-9").Return(entities.WorkAssignment{}, &usecase.RuleError{Kind: usecase.ErrNotFound, Message: "assignment a-9 not found"})

		w := doRequest(r, http.MethodPatch, "/v1/assignments/a-9/release", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("reassign without active assignment", func(t *testing.T) {
		uc, r := newAssignmentRouter(t)
		uc.EXPECT().Reassign(gomock.Any(), usecase.ReassignInput{
			WorkOrderID:    "wo-1",
			FromAssigneeID: "emp-1",
			ToAssigneeID:   "emp-2",
			Reason:         "cambio de turno",
			AuthorID:       "jefe-1",
		}).Return(entities.WorkAssignment{}, &usecase.RuleError{Kind: usecase.ErrNoActiveAssignment, Message: "emp-1 has no active assignment on wo-1"})

		w := doRequest(r, http.MethodPost, "/v1/work-orders/wo-1/reassign",
			`{"from_assignee_id":"emp-1","to_assignee_id":"emp-2","reason":"cambio de turno"}`, authorHeader, "jefe-1")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reassign requires a reason", func(t *testing.T) {
		_, r := newAssignmentRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/work-orders/wo-1/reassign", `{"from_assignee_id":"emp-1","to_assignee_id":"emp-2"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAssignmentHandler_Listings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("active by default", func(t *testing.T) {
		uc, r := newAssignmentRouter(t)
		uc.EXPECT().ListActive(gomock.Any(), "wo-1").Return([]entities.WorkAssignment{{ID: "a-1", Role: entities.AssignmentRoleEmployee}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/assignments", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("history on request", func(t *testing.T) {
		uc, r := newAssignmentRouter(t)
		released := time.Now().UTC()
		uc.EXPECT().ListHistory(gomock.Any(), "wo-1").Return([]entities.WorkAssignment{
			{ID: "a-1", Role: entities.AssignmentRoleEmployee, ReleasedAt: &released},
			{ID: "a-2", Role: entities.AssignmentRoleEmployee},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/assignments?history=true", "")
		var list []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if list[0]["active"] != false || list[1]["active"] != true {
			t.Fatalf("unexpected rows: %v", list)
		}
	})

	t.Run("workload", func(t *testing.T) {
		uc, r := newAssignmentRouter(t)
		uc.EXPECT().GetWorkload(gomock.Any(), "emp-1").Return(entities.Workload{AssigneeID: "emp-1", ActiveOrderCount: 2}, nil)

		w := doRequest(r, http.MethodGet, "/v1/assignees/emp-1/workload", "")
		if body := decodeBody(t, w); body["active_order_count"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
