package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// PartsSeparator joins the sampled parts in ServiceRecord.PartsUsed.
const PartsSeparator = ", "

// ErrInvalidRecord is returned when a service record is missing required data.
var ErrInvalidRecord = errors.New("invalid service record")

// ServiceRecord represents one generated service visit. It is created fresh for
// every generation call and handed to the renderer unchanged.
type ServiceRecord struct {
	MachineType        string          `json:"machine_type" bson:"machine_type" validate:"required,printable"`
	MachineModel       string          `json:"machine_model" bson:"machine_model" validate:"required,printable"`
	ProblemDescription string          `json:"problem_description" bson:"problem_description" validate:"required,printable"`
	SolutionApplied    string          `json:"solution_applied" bson:"solution_applied" validate:"required,printable"`
	PartsUsed          *string         `json:"parts_used" bson:"parts_used" validate:"omitempty,min=1,printable"`
	ClientName         string          `json:"client_name" bson:"client_name" validate:"required,printable"`
	ClientAddress      string          `json:"client_address" bson:"client_address" validate:"required,printable"`
	ClientPhone        string          `json:"client_phone" bson:"client_phone" validate:"required,printable"`
	ServiceDate        time.Time       `json:"service_date" bson:"service_date" validate:"required"`
	SerialNumber       string          `json:"serial_number" bson:"serial_number" validate:"required,printable"`
	WorkOrder          string          `json:"work_order" bson:"work_order" validate:"required,printable"`
	Technician         Technician      `json:"technician" bson:"technician"`
	Company            string          `json:"company" bson:"company" validate:"required,printable"`
	ArrivalTime        string          `json:"arrival_time" bson:"arrival_time" validate:"required,printable"`
	DurationMinutes    int             `json:"duration_minutes" bson:"duration_minutes" validate:"gt=0"`
	LaborHours         decimal.Decimal `json:"labor_hours" bson:"-" validate:"-"`
}

// Parts returns the individual parts in PartsUsed, or nil when no parts were used.
func (r *ServiceRecord) Parts() []string {
	if r.PartsUsed == nil || *r.PartsUsed == "" {
		return nil
	}
	return strings.Split(*r.PartsUsed, PartsSeparator)
}

// JoinParts builds a PartsUsed value from a list of parts.
func JoinParts(parts []string) *string {
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, PartsSeparator)
	return &joined
}

// LaborHoursFor converts a visit duration to labor hours rounded to two places.
func LaborHoursFor(durationMinutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(durationMinutes)).Div(decimal.NewFromInt(60)).Round(2)
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report json field names so errors match the record schema
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("printable", func(fl validator.FieldLevel) bool {
		return Printable(fl.Field().String())
	})
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		rec := sl.Current().Interface().(ServiceRecord)
		if !rec.LaborHours.Equal(LaborHoursFor(rec.DurationMinutes)) {
			sl.ReportError(rec.LaborHours, "labor_hours", "LaborHours", "labor_hours", "")
		}
	}, ServiceRecord{})
}

// Validate checks that every required field of the record is populated, that
// all text can be printed and that labor hours match the duration.
func (r *ServiceRecord) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldErrorMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(messages, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must not be empty", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "printable":
		return fmt.Sprintf("%s contains characters outside the Windows-1252 set", field)
	case "labor_hours":
		return fmt.Sprintf("%s must equal duration_minutes/60 rounded to 2 places", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
