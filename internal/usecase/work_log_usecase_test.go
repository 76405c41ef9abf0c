package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"mecanica_workflow/internal/domain/entities"
)

func TestWorkLogUseCase_Append(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t)
	o := env.openOrder(t, entities.MaintenanceTypeCorrective)

	valid := AppendWorkLogInput{
		WorkOrderID: o.ID,
		AuthorID:    "emp-1",
		LogType:     entities.WorkLogTypeDiagnosis,
		Note:        "pastillas delanteras gastadas",
		Hours:       1.5,
	}

	t.Run("ok", func(t *testing.T) {
		l, err := env.workLogs.Append(ctx, valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.ID == "" || l.CreatedAt.IsZero() || l.Hours != 1.5 {
			t.Fatalf("unexpected log: %+v", l)
		}
	})

	cases := []struct {
		name   string
		mutate func(in *AppendWorkLogInput)
		want   error
	}{
		{"blank note", func(in *AppendWorkLogInput) { in.Note = "   " }, ErrEmptyNote},
		{"note too long", func(in *AppendWorkLogInput) { in.Note = strings.Repeat("a", entities.MaxWorkLogNoteLength+1) }, ErrValidation},
		{"negative hours", func(in *AppendWorkLogInput) { in.Hours = -1 }, ErrInvalidHours},
		{"more than a day", func(in *AppendWorkLogInput) { in.Hours = 24.5 }, ErrInvalidHours},
		{"nan hours", func(in *AppendWorkLogInput) { in.Hours = math.NaN() }, ErrInvalidHours},
		{"unknown type", func(in *AppendWorkLogInput) { in.LogType = "GOSSIP" }, ErrValidation},
		{"missing author", func(in *AppendWorkLogInput) { in.AuthorID = "" }, ErrValidation},
		{"unknown order", func(in *AppendWorkLogInput) { in.WorkOrderID = "missing" }, ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			if _, err := env.workLogs.Append(ctx, in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("invalid hours are also validation errors", func(t *testing.T) {
		in := valid
		in.Hours = 25
		if _, err := env.workLogs.Append(ctx, in); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestWorkLogUseCase_ListByWorkOrderID(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t)
	o := env.openOrder(t, entities.MaintenanceTypeCorrective)

	for _, note := range []string{"primera revision", "segunda revision"} {
		if _, err := env.workLogs.Append(ctx, AppendWorkLogInput{WorkOrderID: o.ID, AuthorID: "emp-1", LogType: entities.WorkLogTypeNote, Note: note}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	logs, err := env.workLogs.ListByWorkOrderID(ctx, o.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// opening entry plus the two notes
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].CreatedAt.Before(logs[i-1].CreatedAt) {
			t.Fatalf("logs are not in chronological order: %+v", logs)
		}
	}

	if _, err := env.workLogs.ListByWorkOrderID(ctx, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
