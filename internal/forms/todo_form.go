package forms

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// TitleMaxLength is the longest accepted title, counted in runes
	// after trimming surrounding whitespace.
	TitleMaxLength = 200

	// DueDateLayout is the only accepted due date form.
	DueDateLayout = "2006-01-02"
)

type ErrorKind string

const (
	MissingField ErrorKind = "missing_field"
	FieldTooLong ErrorKind = "field_too_long"
	InvalidDate  ErrorKind = "invalid_date"
)

type FieldError struct {
	Kind    ErrorKind
	Message string
}

// FieldErrors maps a form field name to its validation error.
type FieldErrors map[string]FieldError

// TodoInput carries raw user-submitted values. Description is nil
// when the field was absent from the submission, which is distinct
// from an empty string.
type TodoInput struct {
	Title       string  `form:"title"`
	Description *string `form:"description"`
	DueDate     string  `form:"due_date"`
}

// TodoValues holds values that passed validation and may be persisted.
type TodoValues struct {
	Title       string
	Description *string
	DueDate     *time.Time
}

// Validate checks the input and returns either the accepted values or
// the full set of field errors, never both. The title is trimmed of
// surrounding whitespace; the description is kept verbatim.
func (in TodoInput) Validate() (*TodoValues, FieldErrors) {
	errs := make(FieldErrors)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		errs["title"] = FieldError{
			Kind:    MissingField,
			Message: "This field is required.",
		}
	} else if utf8.RuneCountInString(title) > TitleMaxLength {
		errs["title"] = FieldError{
			Kind:    FieldTooLong,
			Message: "Ensure this value has at most 200 characters.",
		}
	}

	var dueDate *time.Time
	if s := strings.TrimSpace(in.DueDate); s != "" {
		parsed, err := time.Parse(DueDateLayout, s)
		if err != nil {
			errs["due_date"] = FieldError{
				Kind:    InvalidDate,
				Message: "Enter a valid date in YYYY-MM-DD format.",
			}
		} else {
			dueDate = &parsed
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &TodoValues{
		Title:       title,
		Description: in.Description,
		DueDate:     dueDate,
	}, nil
}
