// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/schema/request"
)

// FieldFailure is one submitted value that breaks its field's
// constraints.
type FieldFailure struct {
	FieldID string
	Reason  string
}

// ValidationError lists every failing field of one submission.
type ValidationError struct {
	FormID   string
	Failures []FieldFailure
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, failure := range e.Failures {
		parts[i] = failure.FieldID + ": " + failure.Reason
	}
	return fmt.Sprintf("form %s: %s", e.FormID, strings.Join(parts, "; "))
}

// Failure returns the failure recorded for fieldID.
func (e *ValidationError) Failure(fieldID string) (FieldFailure, bool) {
	index := slices.IndexFunc(e.Failures, func(f FieldFailure) bool { return f.FieldID == fieldID })
	if index < 0 {
		return FieldFailure{}, false
	}
	return e.Failures[index], true
}

// Complete returns one result per form field, in field order. Answers
// are taken as given; fields without an answer get the value the form
// was rendered with. Answers carry their field's args unless they
// already have their own. An answer naming no field of the form is an
// error, as is answering the same field twice.
func Complete(form action.OpenFormAction, answers []request.FormResult) ([]request.FormResult, error) {
	byID := make(map[string]request.FormResult, len(answers))
	for _, answer := range answers {
		if _, ok := form.Field(answer.ID); !ok {
			return nil, fmt.Errorf("form %s has no field %q", form.FormID, answer.ID)
		}
		if _, duplicate := byID[answer.ID]; duplicate {
			return nil, fmt.Errorf("form %s: field %q answered twice", form.FormID, answer.ID)
		}
		byID[answer.ID] = answer
	}

	results := make([]request.FormResult, 0, len(form.Fields))
	for _, field := range form.Fields {
		result, answered := byID[field.ID()]
		if !answered {
			result = request.NewFormResult(field.ID(), initialValue(field))
		}
		if len(result.Args) == 0 {
			result.Args = field.Args()
		}
		results = append(results, result)
	}
	return results, nil
}

// initialValue is the submitted form of a field's prefilled value.
func initialValue(field action.Field) string {
	switch input := field.Input().(type) {
	case action.TextInput:
		return input.Value
	case action.TextAreaInput:
		return input.Value
	case action.SelectInput:
		return input.Value
	case action.SwitchInput:
		return strconv.FormatBool(input.Value)
	case action.SliderInput:
		return strconv.FormatUint(uint64(input.Value), 10)
	case action.FileSystemInput:
		return input.Value
	default:
		return ""
	}
}

// Validate checks results against the constraints form declares. Text,
// text area and file system fields obey their FieldValidation; select
// values must name a choice; switches take "true" or "false"; slider
// values must be integers within bounds and on a step. Results for
// fields the form does not have are ignored. Returns a
// *ValidationError listing every failing field, or nil.
func Validate(form action.OpenFormAction, results []request.FormResult) error {
	var failures []FieldFailure
	for _, result := range results {
		field, ok := form.Field(result.ID)
		if !ok {
			continue
		}
		if reason := check(field, result.Value); reason != "" {
			failures = append(failures, FieldFailure{FieldID: result.ID, Reason: reason})
		}
	}
	if len(failures) > 0 {
		return &ValidationError{FormID: form.FormID, Failures: failures}
	}
	return nil
}

// check returns why value is not acceptable for field, or "".
func check(field action.Field, value string) string {
	switch input := field.Input().(type) {
	case action.SelectInput:
		if len(input.Options) > 0 && !input.HasOption(value) {
			return fmt.Sprintf("%q is not one of the choices", value)
		}
	case action.SwitchInput:
		if value != "true" && value != "false" {
			return fmt.Sprintf("%q is not true or false", value)
		}
	case action.SliderInput:
		return checkSlider(input, value)
	}
	if validation := field.Validation(); validation != nil {
		return checkText(*validation, value)
	}
	return ""
}

func checkText(validation action.FieldValidation, value string) string {
	if validation.NotEmpty && value == "" {
		return "must not be empty"
	}
	if validation.OnlyNumbers && strings.IndexFunc(value, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return "must contain only digits"
	}
	if validation.MaxCharacters != nil {
		if count := utf8.RuneCountInString(value); uint(count) > *validation.MaxCharacters {
			return fmt.Sprintf("has %d characters, limit %d", count, *validation.MaxCharacters)
		}
	}
	return ""
}

func checkSlider(input action.SliderInput, value string) string {
	number, err := strconv.ParseUint(value, 10, 0)
	if err != nil {
		return fmt.Sprintf("%q is not a whole number", value)
	}
	n := uint(number)
	if n < input.Min || n > input.Max {
		return fmt.Sprintf("%d is outside %d..%d", n, input.Min, input.Max)
	}
	if input.Step > 0 && (n-input.Min)%input.Step != 0 {
		return fmt.Sprintf("%d is not on a step of %d from %d", n, input.Step, input.Min)
	}
	return ""
}
