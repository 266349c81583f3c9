// Package validation checks inbound payloads and reports failures as a list of
// per-field issues.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"grocery-app/internal/models"
)

// Issue codes.
const (
	CodeInvalidType   = "invalid_type"
	CodeTooSmall      = "too_small"
	CodeInvalidString = "invalid_string"
	CodeInvalidDate   = "invalid_date"
	CodeInvalidJSON   = "invalid_json"
	CodeCustom        = "custom"
)

// Issue is a single field-level failure. Path holds the JSON field names
// leading to the offending value; list indexes appear as decimal strings.
type Issue struct {
	Code    string   `json:"code"`
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// Error carries every issue found in one payload.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if len(is.Path) == 0 {
			parts = append(parts, is.Message)
			continue
		}
		parts = append(parts, strings.Join(is.Path, ".")+": "+is.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// WithPrefix returns a copy of e whose issue paths are nested under prefix.
func (e *Error) WithPrefix(prefix ...string) *Error {
	out := &Error{Issues: make([]Issue, len(e.Issues))}
	for i, is := range e.Issues {
		is.Path = append(append([]string{}, prefix...), is.Path...)
		out.Issues[i] = is
	}
	return out
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report JSON names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Struct validates s and returns a *Error listing every failed field, or nil.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Issues: make([]Issue, 0, len(verrs))}
	for _, fe := range verrs {
		out.Issues = append(out.Issues, issueFromFieldError(fe))
	}
	return out
}

// DecodeError turns a JSON decoding failure into a *Error. Type mismatches keep
// the offending field path; anything else is reported against the whole body.
func DecodeError(err error) *Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		var path []string
		if typeErr.Field != "" {
			path = strings.Split(typeErr.Field, ".")
		}
		return &Error{Issues: []Issue{{
			Code:    CodeInvalidType,
			Path:    nonNil(path),
			Message: fmt.Sprintf("Expected %s, received %s", typeErr.Type, typeErr.Value),
		}}}
	}

	return &Error{Issues: []Issue{{
		Code:    CodeInvalidJSON,
		Path:    []string{},
		Message: "Malformed JSON body",
	}}}
}

func issueFromFieldError(fe validator.FieldError) Issue {
	is := Issue{Path: pathFromNamespace(fe.Namespace())}

	switch fe.Tag() {
	case "required":
		is.Code = CodeInvalidType
		is.Message = "Required"
	case "min":
		is.Code = CodeTooSmall
		switch fe.Kind() {
		case reflect.String:
			is.Message = fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			is.Message = fmt.Sprintf("Array must contain at least %s element(s)", fe.Param())
		default:
			is.Message = fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
		}
	case "url":
		is.Code = CodeInvalidString
		is.Message = "Invalid url"
	case "isodate":
		is.Code = CodeInvalidDate
		is.Message = "Invalid date"
	default:
		is.Code = CodeCustom
		is.Message = fmt.Sprintf("Failed %s validation", fe.Tag())
	}
	return is
}

// pathFromNamespace converts "Type.field.list[2]" into ["field", "list", "2"].
func pathFromNamespace(ns string) []string {
	segments := strings.Split(ns, ".")
	if len(segments) > 0 {
		segments = segments[1:]
	}

	path := make([]string, 0, len(segments))
	for _, seg := range segments {
		for seg != "" {
			open := strings.IndexByte(seg, '[')
			if open < 0 {
				path = append(path, seg)
				break
			}
			if open > 0 {
				path = append(path, seg[:open])
			}
			end := strings.IndexByte(seg[open:], ']')
			if end < 0 {
				path = append(path, seg[open:])
				break
			}
			idx := seg[open+1 : open+end]
			if _, err := strconv.Atoi(idx); err == nil {
				path = append(path, idx)
			}
			seg = seg[open+end+1:]
		}
	}
	return path
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
