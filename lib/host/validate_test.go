// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"errors"
	"strings"
	"testing"

	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/schema/request"
)

func validationForm() action.OpenFormAction {
	return action.NewForm("calc", "settings", "Settings", "Save").WithFields(
		action.NewTextField("digits", "Digits", "",
			action.NewTextInput("").WithValidation(action.NewFieldValidation().WithOnlyNumbers(true))),
		action.NewTextAreaField("note", "Note", "",
			action.NewTextAreaInput("").WithValidation(action.NewFieldValidation().WithMaxCharacters(5))),
		action.NewTextField("free", "Free", "", action.NewTextInput("anything")),
		action.NewSelectField("unit", "Unit", "",
			action.NewSelectInput("m", action.NewSelectOption("m", "Metres"), action.NewSelectOption("ft", "Feet"))),
		action.NewSwitchField("exact", "Exact", "", action.NewSwitchInput(true)),
		action.NewSliderField("precision", "Precision", "", action.NewSliderInput(4, 0, 10, 2)),
		action.NewFileSystemField("export", "Export to", "",
			action.NewFileSystemInput("").WithPickDirectory(true).WithNotEmpty(true)),
	)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		field string
		value string
		valid bool
	}{
		{"digits", "0123", true},
		{"digits", "", true},
		{"digits", "12a", false},
		{"digits", "-1", false},
		{"note", "héllo", true},
		{"note", "hello!", false},
		{"free", "", true},
		{"unit", "ft", true},
		{"unit", "yd", false},
		{"exact", "false", true},
		{"exact", "True", false},
		{"precision", "0", true},
		{"precision", "10", true},
		{"precision", "3", false},
		{"precision", "12", false},
		{"precision", "x", false},
		{"export", "/tmp", true},
		{"export", "", false},
	}
	form := validationForm()
	for _, test := range tests {
		t.Run(test.field+"="+test.value, func(t *testing.T) {
			err := Validate(form, []request.FormResult{request.NewFormResult(test.field, test.value)})
			if test.valid && err != nil {
				t.Errorf("Validate: %v, want valid", err)
			}
			if !test.valid {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("Validate = %v, want *ValidationError", err)
				}
				if _, ok := validationErr.Failure(test.field); !ok {
					t.Errorf("failures = %+v, want one for %s", validationErr.Failures, test.field)
				}
			}
		})
	}
}

func TestValidateReportsEveryFailure(t *testing.T) {
	err := Validate(validationForm(), []request.FormResult{
		request.NewFormResult("digits", "x"),
		request.NewFormResult("unit", "m"),
		request.NewFormResult("exact", "yes"),
	})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Validate = %v, want *ValidationError", err)
	}
	if len(validationErr.Failures) != 2 {
		t.Errorf("failures = %+v, want digits and exact", validationErr.Failures)
	}
	if message := err.Error(); !strings.Contains(message, "digits") || !strings.Contains(message, "exact") {
		t.Errorf("Error() = %q", message)
	}
}

func TestCompleteFillsDefaults(t *testing.T) {
	form := validationForm()
	results, err := Complete(form, []request.FormResult{request.NewFormResult("unit", "ft")})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if len(results) != len(form.Fields) {
		t.Fatalf("got %d results, want one per field", len(results))
	}
	want := map[string]string{
		"digits":    "",
		"note":      "",
		"free":      "anything",
		"unit":      "ft",
		"exact":     "true",
		"precision": "4",
		"export":    "",
	}
	for i, result := range results {
		if result.ID != form.Fields[i].ID() {
			t.Errorf("results[%d] = %s, want field order", i, result.ID)
		}
		if result.Value != want[result.ID] {
			t.Errorf("%s = %q, want %q", result.ID, result.Value, want[result.ID])
		}
	}
}

func TestCompleteRejectsUnknownAndDuplicateAnswers(t *testing.T) {
	form := validationForm()
	if _, err := Complete(form, []request.FormResult{request.NewFormResult("nope", "1")}); err == nil {
		t.Error("unknown field accepted")
	}
	if _, err := Complete(form, []request.FormResult{
		request.NewFormResult("free", "a"),
		request.NewFormResult("free", "b"),
	}); err == nil {
		t.Error("duplicate answer accepted")
	}
}

func TestCompleteKeepsAnswerArgs(t *testing.T) {
	form := action.NewForm("calc", "f", "F", "OK").WithField(
		action.NewTextField("x", "X", "", action.NewTextInput("")).WithArg("field-arg"))

	results, err := Complete(form, []request.FormResult{request.NewFormResult("x", "1", "own-arg")})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if len(results[0].Args) != 1 || results[0].Args[0] != "own-arg" {
		t.Errorf("args = %v, want own-arg", results[0].Args)
	}

	results, err = Complete(form, nil)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if len(results[0].Args) != 1 || results[0].Args[0] != "field-arg" {
		t.Errorf("args = %v, want field-arg", results[0].Args)
	}
}
