package readiness

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidBody reports a request body that is not a JSON object.
var ErrInvalidBody = errors.New("request body must be a JSON object")

// ValidationError lists every constraint a request violated, in a stable
// order: category fields first (in category order), then unknown properties.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// CalculateRequest is the wire shape of a calculate request. Pointers let
// validation tell a missing field from an explicit zero.
type CalculateRequest struct {
	Academics        *float64 `json:"academics" validate:"required,min=0,max=100"`
	CareerSkills     *float64 `json:"career_skills" validate:"required,min=0,max=100"`
	LifeSkills       *float64 `json:"life_skills" validate:"required,min=0,max=100"`
	TechnicalSkills  *float64 `json:"technical_skills" validate:"required,min=0,max=100"`
	Communication    *float64 `json:"communication" validate:"required,min=0,max=100"`
	Teamwork         *float64 `json:"teamwork" validate:"required,min=0,max=100"`
	CriticalThinking *float64 `json:"critical_thinking" validate:"required,min=0,max=100"`
}

// Progress converts a validated request; nil fields become zero.
func (r CalculateRequest) Progress() Progress {
	return Progress{
		Academics:        deref(r.Academics),
		CareerSkills:     deref(r.CareerSkills),
		LifeSkills:       deref(r.LifeSkills),
		TechnicalSkills:  deref(r.TechnicalSkills),
		Communication:    deref(r.Communication),
		Teamwork:         deref(r.Teamwork),
		CriticalThinking: deref(r.CriticalThinking),
	}
}

func (r *CalculateRequest) field(c Category) **float64 {
	switch c {
	case Academics:
		return &r.Academics
	case CareerSkills:
		return &r.CareerSkills
	case LifeSkills:
		return &r.LifeSkills
	case TechnicalSkills:
		return &r.TechnicalSkills
	case Communication:
		return &r.Communication
	case Teamwork:
		return &r.Teamwork
	case CriticalThinking:
		return &r.CriticalThinking
	default:
		return nil
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Validator checks calculate requests. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator that reports fields by their JSON names.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// DecodeProgress parses and validates a JSON body. It returns ErrInvalidBody
// for anything that is not a JSON object, or a *ValidationError listing
// every violation.
func (v *Validator) DecodeProgress(body []byte) (Progress, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		// An empty body is an empty object: every field is reported missing.
		body = []byte("{}")
	}
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&raw); err != nil {
		return Progress{}, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if raw == nil {
		return Progress{}, ErrInvalidBody
	}
	if dec.More() {
		return Progress{}, fmt.Errorf("%w: trailing data after object", ErrInvalidBody)
	}

	var req CalculateRequest
	perField := make(map[Category][]string, len(categoryTable))
	var unknown []string

	for key, value := range raw {
		c := Category(key)
		dst := req.field(c)
		if dst == nil {
			unknown = append(unknown, key)
			continue
		}
		n, ok := parseNumber(value)
		if !ok {
			perField[c] = append(perField[c], notANumberMessage(key))
			continue
		}
		*dst = &n
	}

	for _, fe := range v.fieldErrors(req) {
		c := Category(fe.Field())
		if len(perField[c]) > 0 {
			// Already reported as not a number.
			continue
		}
		perField[c] = append(perField[c], messageFor(fe))
	}

	var messages []string
	for _, def := range categoryTable {
		messages = append(messages, perField[def.name]...)
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		messages = append(messages, fmt.Sprintf("property %s should not exist", key))
	}

	if len(messages) > 0 {
		return Progress{}, &ValidationError{Messages: messages}
	}
	return req.Progress(), nil
}

func (v *Validator) fieldErrors(req CalculateRequest) validator.ValidationErrors {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func parseNumber(value json.RawMessage) (float64, bool) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || trimmed[0] == 'n' || trimmed[0] == '"' {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return 0, false
	}
	return n, true
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must not be less than %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not be greater than %s", fe.Field(), fe.Param())
	default:
		return notANumberMessage(fe.Field())
	}
}

func notANumberMessage(field string) string {
	return fmt.Sprintf("%s must be a number conforming to the specified constraints", field)
}
