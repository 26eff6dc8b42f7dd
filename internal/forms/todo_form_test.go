package forms

import (
	"strings"
	"testing"
	"time"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantKind  ErrorKind
		wantTitle string
	}{
		{
			name:     "empty title rejected",
			title:    "",
			wantKind: MissingField,
		},
		{
			name:     "whitespace title rejected",
			title:    "   ",
			wantKind: MissingField,
		},
		{
			name:      "surrounding whitespace trimmed",
			title:     "  Buy milk  ",
			wantTitle: "Buy milk",
		},
		{
			name:      "200 characters accepted",
			title:     strings.Repeat("a", 200),
			wantTitle: strings.Repeat("a", 200),
		},
		{
			name:     "201 characters rejected",
			title:    strings.Repeat("a", 201),
			wantKind: FieldTooLong,
		},
		{
			name:      "length counted after trimming",
			title:     " " + strings.Repeat("a", 200) + " ",
			wantTitle: strings.Repeat("a", 200),
		},
		{
			name:      "multibyte runes counted as characters",
			title:     strings.Repeat("ё", 200),
			wantTitle: strings.Repeat("ё", 200),
		},
		{
			name:     "201 multibyte runes rejected",
			title:    strings.Repeat("ё", 201),
			wantKind: FieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, errs := TodoInput{Title: tt.title}.Validate()

			if tt.wantKind != "" {
				if errs == nil {
					t.Fatalf("Validate() accepted %q", tt.title)
				}
				if got := errs["title"].Kind; got != tt.wantKind {
					t.Errorf("title error kind: got %s, want %s", got, tt.wantKind)
				}
				if values != nil {
					t.Errorf("values: got %+v, want nil", values)
				}
				return
			}

			if errs != nil {
				t.Fatalf("Validate() rejected %q: %v", tt.title, errs)
			}
			if values.Title != tt.wantTitle {
				t.Errorf("title: got %q, want %q", values.Title, tt.wantTitle)
			}
		})
	}
}

func TestValidateDueDate(t *testing.T) {
	tests := []struct {
		name     string
		dueDate  string
		wantKind ErrorKind
		wantNil  bool
		wantDate string
	}{
		{
			name:    "empty accepted as absent",
			dueDate: "",
			wantNil: true,
		},
		{
			name:    "whitespace accepted as absent",
			dueDate: "  ",
			wantNil: true,
		},
		{
			name:     "iso date accepted",
			dueDate:  "2026-01-15",
			wantDate: "2026-01-15",
		},
		{
			name:     "past date accepted",
			dueDate:  "1969-07-20",
			wantDate: "1969-07-20",
		},
		{
			name:     "far future date accepted",
			dueDate:  "3000-01-01",
			wantDate: "3000-01-01",
		},
		{
			name:     "surrounding whitespace trimmed",
			dueDate:  " 2026-01-15 ",
			wantDate: "2026-01-15",
		},
		{
			name:     "non-iso format rejected",
			dueDate:  "15/01/2026",
			wantKind: InvalidDate,
		},
		{
			name:     "impossible date rejected",
			dueDate:  "2026-02-30",
			wantKind: InvalidDate,
		},
		{
			name:     "free text rejected",
			dueDate:  "tomorrow",
			wantKind: InvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, errs := TodoInput{Title: "ok", DueDate: tt.dueDate}.Validate()

			if tt.wantKind != "" {
				if errs == nil {
					t.Fatalf("Validate() accepted %q", tt.dueDate)
				}
				if got := errs["due_date"].Kind; got != tt.wantKind {
					t.Errorf("due_date error kind: got %s, want %s", got, tt.wantKind)
				}
				return
			}

			if errs != nil {
				t.Fatalf("Validate() rejected %q: %v", tt.dueDate, errs)
			}
			if tt.wantNil {
				if values.DueDate != nil {
					t.Errorf("due date: got %v, want nil", values.DueDate)
				}
				return
			}
			if values.DueDate == nil {
				t.Fatalf("due date: got nil, want %s", tt.wantDate)
			}
			if got := values.DueDate.Format(DueDateLayout); got != tt.wantDate {
				t.Errorf("due date: got %s, want %s", got, tt.wantDate)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	t.Run("absent stays absent", func(t *testing.T) {
		values, errs := TodoInput{Title: "ok"}.Validate()
		if errs != nil {
			t.Fatalf("Validate() rejected input: %v", errs)
		}
		if values.Description != nil {
			t.Errorf("description: got %q, want nil", *values.Description)
		}
	})

	t.Run("empty string distinct from absent", func(t *testing.T) {
		empty := ""
		values, errs := TodoInput{Title: "ok", Description: &empty}.Validate()
		if errs != nil {
			t.Fatalf("Validate() rejected input: %v", errs)
		}
		if values.Description == nil || *values.Description != "" {
			t.Errorf("description: got %v, want empty string", values.Description)
		}
	})

	t.Run("stored verbatim", func(t *testing.T) {
		description := "  line one\n\n\tline  two  <b>&amp;</b>  "
		values, errs := TodoInput{Title: "ok", Description: &description}.Validate()
		if errs != nil {
			t.Fatalf("Validate() rejected input: %v", errs)
		}
		if values.Description == nil || *values.Description != description {
			t.Errorf("description: got %v, want %q", values.Description, description)
		}
	})

	t.Run("arbitrarily long accepted", func(t *testing.T) {
		description := strings.Repeat("x", 1<<16)
		values, errs := TodoInput{Title: "ok", Description: &description}.Validate()
		if errs != nil {
			t.Fatalf("Validate() rejected input: %v", errs)
		}
		if values.Description == nil || *values.Description != description {
			t.Error("long description was not kept verbatim")
		}
	})
}

func TestValidateAllOrNothing(t *testing.T) {
	values, errs := TodoInput{Title: "", DueDate: "not a date"}.Validate()
	if values != nil {
		t.Errorf("values: got %+v, want nil", values)
	}
	if len(errs) != 2 {
		t.Fatalf("errors: got %d, want 2 (%v)", len(errs), errs)
	}
	if errs["title"].Kind != MissingField {
		t.Errorf("title error kind: got %s, want %s", errs["title"].Kind, MissingField)
	}
	if errs["due_date"].Kind != InvalidDate {
		t.Errorf("due_date error kind: got %s, want %s", errs["due_date"].Kind, InvalidDate)
	}
}

func TestValidateDueDateValue(t *testing.T) {
	values, errs := TodoInput{Title: "ok", DueDate: "2026-08-31"}.Validate()
	if errs != nil {
		t.Fatalf("Validate() rejected input: %v", errs)
	}
	want := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	if !values.DueDate.Equal(want) {
		t.Errorf("due date: got %v, want %v", values.DueDate, want)
	}
}
