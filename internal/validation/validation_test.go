package validation_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"todoweb/internal/validation"
)

func TestDecodeCreate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string // empty means success
	}{
		{
			name: "minimal",
			body: `{"todoTitle":"Buy milk"}`,
		},
		{
			name: "full payload",
			body: `{"todoTitle":"Buy milk","todoText":"2% if they have it","endTime":"2025-12-31"}`,
		},
		{
			name: "title at 30 chars",
			body: `{"todoTitle":"` + strings.Repeat("a", 30) + `"}`,
		},
		{
			name:      "title at 31 chars",
			body:      `{"todoTitle":"` + strings.Repeat("a", 31) + `"}`,
			wantField: "todoTitle",
		},
		{
			name:      "empty title",
			body:      `{"todoTitle":""}`,
			wantField: "todoTitle",
		},
		{
			name:      "missing title",
			body:      `{"todoText":"no title"}`,
			wantField: "todoTitle",
		},
		{
			name: "text at 100 chars",
			body: `{"todoTitle":"t","todoText":"` + strings.Repeat("b", 100) + `"}`,
		},
		{
			name:      "text at 101 chars",
			body:      `{"todoTitle":"t","todoText":"` + strings.Repeat("b", 101) + `"}`,
			wantField: "todoText",
		},
		{
			name: "null end time",
			body: `{"todoTitle":"t","endTime":null}`,
		},
		{
			name:      "numeric end time",
			body:      `{"todoTitle":"t","endTime":1735603200}`,
			wantField: "endTime",
		},
		{
			name:      "unparseable end time",
			body:      `{"todoTitle":"t","endTime":"next tuesday"}`,
			wantField: "endTime",
		},
		{
			name:      "invalid json",
			body:      `{broken`,
			wantField: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := validation.DecodeCreate([]byte(tt.body))

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var fieldErr *validation.FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected FieldError, got %v (input %+v)", err, input)
			}
			if fieldErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q (%s)", tt.wantField, fieldErr.Field, fieldErr.Message)
			}
			if fieldErr.Message == "" {
				t.Error("expected a human-readable message")
			}
		})
	}
}

func TestDecodeCreateCoercesEndTime(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *time.Time
	}{
		{
			name: "date only",
			body: `{"todoTitle":"t","endTime":"2025-06-15"}`,
			want: timePtr(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			name: "rfc3339",
			body: `{"todoTitle":"t","endTime":"2025-06-15T09:30:00Z"}`,
			want: timePtr(time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)),
		},
		{
			name: "absent",
			body: `{"todoTitle":"t"}`,
			want: nil,
		},
		{
			name: "null",
			body: `{"todoTitle":"t","endTime":null}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := validation.DecodeCreate([]byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch {
			case tt.want == nil && input.EndTime != nil:
				t.Errorf("expected nil endTime, got %v", input.EndTime)
			case tt.want != nil && (input.EndTime == nil || !input.EndTime.Equal(*tt.want)):
				t.Errorf("expected endTime %v, got %v", tt.want, input.EndTime)
			}
		})
	}
}

func TestDecodeCreateDefaultsText(t *testing.T) {
	input, err := validation.DecodeCreate([]byte(`{"todoTitle":"Buy milk"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Text != "" {
		t.Errorf("expected empty text, got %q", input.Text)
	}
}

func TestDecodeUpdate(t *testing.T) {
	input, err := validation.DecodeUpdate([]byte(`{"todoTitle":"Buy milk 2%"}`), "todo-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.ID != "todo-1" {
		t.Errorf("expected id from path, got %q", input.ID)
	}
	if input.Title != "Buy milk 2%" {
		t.Errorf("expected title, got %q", input.Title)
	}
}

func TestDecodeUpdatePathIDWinsOverBody(t *testing.T) {
	input, err := validation.DecodeUpdate([]byte(`{"id":"spoofed","todoTitle":"t"}`), "todo-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.ID != "todo-1" {
		t.Errorf("expected path id to win, got %q", input.ID)
	}
}

func TestDecodeUpdateRequiresTitle(t *testing.T) {
	_, err := validation.DecodeUpdate([]byte(`{"todoText":"only text"}`), "todo-1")
	var fieldErr *validation.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "todoTitle" {
		t.Fatalf("expected todoTitle FieldError, got %v", err)
	}
}

func timePtr(t time.Time) *time.Time { return &t }
