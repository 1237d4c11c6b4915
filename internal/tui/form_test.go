package tui

import (
	"strings"
	"testing"
	"time"

	"todoweb/internal/model"
)

func formWith(title, text, due string) formModel {
	f := newCreateForm()
	f.inputs[0].SetValue(title)
	f.inputs[1].SetValue(text)
	f.inputs[2].SetValue(due)
	return f
}

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		text    string
		due     string
		wantOK  bool
		wantErr string
	}{
		{
			name:   "minimal valid",
			title:  "Buy milk",
			wantOK: true,
		},
		{
			name:   "valid with due date",
			title:  "Buy milk",
			text:   "2 percent",
			due:    "2026-09-01",
			wantOK: true,
		},
		{
			name:    "empty title",
			title:   "",
			wantErr: "title is required",
		},
		{
			name:    "whitespace title",
			title:   "   ",
			wantErr: "title is required",
		},
		{
			name:    "bad date",
			title:   "Buy milk",
			due:     "tomorrow",
			wantErr: "due date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := formWith(tt.title, tt.text, tt.due)
			input, ok := f.validate()

			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v (errMsg=%q)", tt.wantOK, ok, f.errMsg)
			}
			if !tt.wantOK {
				if !strings.Contains(f.errMsg, tt.wantErr) {
					t.Errorf("expected errMsg containing %q, got %q", tt.wantErr, f.errMsg)
				}
				return
			}
			if input.Title != strings.TrimSpace(tt.title) {
				t.Errorf("expected title %q, got %q", strings.TrimSpace(tt.title), input.Title)
			}
			if tt.due == "" && input.EndTime != nil {
				t.Errorf("expected nil EndTime, got %q", *input.EndTime)
			}
			if tt.due != "" && (input.EndTime == nil || *input.EndTime != tt.due) {
				t.Errorf("expected EndTime %q, got %v", tt.due, input.EndTime)
			}
		})
	}
}

func TestFormValidateTrimsTitle(t *testing.T) {
	f := formWith("  Buy milk  ", "", "")
	input, ok := f.validate()
	if !ok {
		t.Fatalf("expected valid form, got errMsg=%q", f.errMsg)
	}
	if input.Title != "Buy milk" {
		t.Errorf("expected trimmed title, got %q", input.Title)
	}
}

func TestEditFormPrefillsTodo(t *testing.T) {
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	todo := model.Todo{
		ID:      "todo-1",
		Title:   "Buy milk",
		Text:    "2 percent",
		EndTime: &end,
	}

	f := newEditForm(todo)

	if f.mode != formEdit {
		t.Errorf("expected edit mode")
	}
	if f.id != "todo-1" {
		t.Errorf("expected id todo-1, got %s", f.id)
	}
	if got := f.inputs[0].Value(); got != "Buy milk" {
		t.Errorf("expected title prefilled, got %q", got)
	}
	if got := f.inputs[2].Value(); got != "2026-09-01" {
		t.Errorf("expected due date prefilled, got %q", got)
	}
}
