package record

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"tableflip.dev/nomilog/pkg/category"
)

// Field limits, in characters.
const (
	MaxNameLen  = 100
	MaxStoreLen = 100
	MaxMemoLen  = 500
	MinRating   = 1
	MaxRating   = 5
)

// Input is raw, unvalidated user input for a record.
type Input struct {
	Date     string `json:"date" validate:"required,calendardate"`
	Category string `json:"category" validate:"required,category"`
	Name     string `json:"name" validate:"required,max=100"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	Store    string `json:"store" validate:"max=100"`
	Memo     string `json:"memo" validate:"max=500"`
}

// Fields is input that passed validation, normalized.
type Fields struct {
	Date     Timestamp
	Category category.Category
	Name     string
	Rating   int
	Store    Optional[string]
	Memo     Optional[string]
}

// FieldError names one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every rule the input broke.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "record: invalid input: " + strings.Join(parts, "; ")
}

// Has reports whether field was rejected.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, err := ParseTime(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, err := category.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks in against the record rules and returns the normalized
// fields. Every violation is reported, not just the first.
func Validate(in Input) (Fields, error) {
	in.Date = strings.TrimSpace(in.Date)
	in.Category = strings.TrimSpace(in.Category)
	in.Name = strings.TrimSpace(in.Name)
	in.Store = strings.TrimSpace(in.Store)
	in.Memo = strings.TrimSpace(in.Memo)

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Fields{}, fmt.Errorf("record: validate: %w", err)
		}
		out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
		}
		return Fields{}, out
	}

	when, _ := ParseTime(in.Date)
	cat, _ := category.Parse(in.Category)
	f := Fields{
		Date:     Day(when),
		Category: cat,
		Name:     in.Name,
		Rating:   in.Rating,
	}
	if in.Store != "" {
		f.Store = Some(in.Store)
	}
	if in.Memo != "" {
		f.Memo = Some(in.Memo)
	}
	return f, nil
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "date":
		if fe.Tag() == "required" {
			return "choose a date"
		}
		return "choose a valid calendar date (YYYY-MM-DD)"
	case "category":
		if fe.Tag() == "required" {
			return "choose a category"
		}
		return "choose one of: " + strings.Join(category.Keys(), ", ")
	case "name":
		if fe.Tag() == "required" {
			return "enter the name of the drink"
		}
		return fmt.Sprintf("name must be %d characters or fewer", MaxNameLen)
	case "rating":
		if fe.Tag() == "min" {
			return fmt.Sprintf("rating must be at least %d", MinRating)
		}
		return fmt.Sprintf("rating must be at most %d", MaxRating)
	case "store":
		return fmt.Sprintf("store must be %d characters or fewer", MaxStoreLen)
	case "memo":
		return fmt.Sprintf("memo must be %d characters or fewer", MaxMemoLen)
	}
	return fmt.Sprintf("failed %s", fe.Tag())
}
