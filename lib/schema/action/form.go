// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package action

import (
	"errors"
	"fmt"
	"slices"
)

// OpenFormAction is a form an extension asks the host to render. The
// host shows Fields in order and sends the answers back to ExtensionID
// as a FormResults request carrying FormID and Args.
type OpenFormAction struct {
	ExtensionID string   `cbor:"extension_id"`
	FormID      string   `cbor:"form_id"`
	Title       string   `cbor:"title"`
	ButtonText  string   `cbor:"button_text"`
	Args        []string `cbor:"args,omitempty"`
	Fields      []Field  `cbor:"fields,omitempty"`
}

// NewForm returns an empty form owned by extensionID.
func NewForm(extensionID, formID, title, buttonText string) OpenFormAction {
	return OpenFormAction{
		ExtensionID: extensionID,
		FormID:      formID,
		Title:       title,
		ButtonText:  buttonText,
	}
}

// WithField returns a copy of the form with field appended.
func (f OpenFormAction) WithField(field Field) OpenFormAction {
	f.Fields = append(slices.Clone(f.Fields), field)
	return f
}

// WithFields returns a copy of the form with fields appended in order.
func (f OpenFormAction) WithFields(fields ...Field) OpenFormAction {
	f.Fields = append(slices.Clone(f.Fields), fields...)
	return f
}

// WithArg returns a copy of the form with arg appended to Args.
func (f OpenFormAction) WithArg(arg string) OpenFormAction {
	f.Args = append(slices.Clone(f.Args), arg)
	return f
}

// Field returns the first field with the given id.
func (f OpenFormAction) Field(id string) (Field, bool) {
	for _, field := range f.Fields {
		if field.id == id {
			return field, true
		}
	}
	return Field{}, false
}

// Validate checks that the form names its owner and that every field
// has a kind and an id unique within the form.
func (f OpenFormAction) Validate() error {
	if f.ExtensionID == "" {
		return errors.New("form: extension_id is required")
	}
	if f.FormID == "" {
		return errors.New("form: form_id is required")
	}
	seen := make(map[string]struct{}, len(f.Fields))
	for i, field := range f.Fields {
		if field.id == "" {
			return fmt.Errorf("form %s: fields[%d]: id is required", f.FormID, i)
		}
		if field.input == nil {
			return fmt.Errorf("form %s: field %q: no input kind set", f.FormID, field.id)
		}
		if _, duplicate := seen[field.id]; duplicate {
			return fmt.Errorf("form %s: duplicate field id %q", f.FormID, field.id)
		}
		seen[field.id] = struct{}{}
	}
	return nil
}

func (f OpenFormAction) clone() OpenFormAction {
	f.Args = slices.Clone(f.Args)
	f.Fields = slices.Clone(f.Fields)
	return f
}
