// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package action

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tigris-launcher/tigris/lib/codec"
)

// FieldKind identifies the input variant held by a [Field]. The string
// values are part of the wire contract.
type FieldKind string

const (
	FieldText       FieldKind = "Text"
	FieldTextArea   FieldKind = "TextArea"
	FieldSelect     FieldKind = "Select"
	FieldSwitch     FieldKind = "Switch"
	FieldSlider     FieldKind = "Slider"
	FieldFileSystem FieldKind = "FileSystem"
)

// FieldKinds lists every variant in declaration order.
var FieldKinds = []FieldKind{
	FieldText,
	FieldTextArea,
	FieldSelect,
	FieldSwitch,
	FieldSlider,
	FieldFileSystem,
}

// Input is the kind-specific part of a [Field]. Sealed: only the input
// types in this package implement it.
type Input interface {
	FieldKind() FieldKind
	isInput()
}

// FieldValidation declares constraints on a submitted text value. All
// enabled predicates must pass. A nil MaxCharacters means no limit.
type FieldValidation struct {
	OnlyNumbers   bool  `cbor:"only_numbers,omitempty"`
	NotEmpty      bool  `cbor:"not_empty,omitempty"`
	MaxCharacters *uint `cbor:"max_characters,omitempty"`
}

// NewFieldValidation returns a validation with every predicate off.
func NewFieldValidation() FieldValidation { return FieldValidation{} }

// WithOnlyNumbers returns a copy that accepts only ASCII digits.
func (v FieldValidation) WithOnlyNumbers(onlyNumbers bool) FieldValidation {
	v.OnlyNumbers = onlyNumbers
	return v
}

// WithNotEmpty returns a copy that rejects the empty string.
func (v FieldValidation) WithNotEmpty(notEmpty bool) FieldValidation {
	v.NotEmpty = notEmpty
	return v
}

// WithMaxCharacters returns a copy that rejects values longer than
// limit characters.
func (v FieldValidation) WithMaxCharacters(limit uint) FieldValidation {
	v.MaxCharacters = &limit
	return v
}

func (v *FieldValidation) clone() *FieldValidation {
	if v == nil {
		return nil
	}
	copied := *v
	if v.MaxCharacters != nil {
		limit := *v.MaxCharacters
		copied.MaxCharacters = &limit
	}
	return &copied
}

// TextInput is a single-line text box.
type TextInput struct {
	Value       string           `cbor:"value"`
	Placeholder string           `cbor:"placeholder,omitempty"`
	Validation  *FieldValidation `cbor:"validation,omitempty"`
}

// NewTextInput returns a text input prefilled with value.
func NewTextInput(value string) TextInput { return TextInput{Value: value} }

// WithPlaceholder returns a copy showing placeholder while empty.
func (t TextInput) WithPlaceholder(placeholder string) TextInput {
	t.Placeholder = placeholder
	return t
}

// WithValidation returns a copy constrained by validation.
func (t TextInput) WithValidation(validation FieldValidation) TextInput {
	t.Validation = validation.clone()
	return t
}

// TextAreaInput is a multi-line text box.
type TextAreaInput struct {
	Value       string           `cbor:"value"`
	Placeholder string           `cbor:"placeholder,omitempty"`
	Validation  *FieldValidation `cbor:"validation,omitempty"`
}

// NewTextAreaInput returns a text area prefilled with value.
func NewTextAreaInput(value string) TextAreaInput { return TextAreaInput{Value: value} }

// WithPlaceholder returns a copy showing placeholder while empty.
func (t TextAreaInput) WithPlaceholder(placeholder string) TextAreaInput {
	t.Placeholder = placeholder
	return t
}

// WithValidation returns a copy constrained by validation.
func (t TextAreaInput) WithValidation(validation FieldValidation) TextAreaInput {
	t.Validation = validation.clone()
	return t
}

// SelectOption is one choice of a [SelectInput]. ID is what gets
// submitted; Text is what the user sees.
type SelectOption struct {
	ID   string `cbor:"id"`
	Text string `cbor:"text"`
}

// NewSelectOption returns a select choice.
func NewSelectOption(id, text string) SelectOption { return SelectOption{ID: id, Text: text} }

// SelectInput picks one of Options. Value is the ID of the preselected
// option.
type SelectInput struct {
	Value   string         `cbor:"value"`
	Options []SelectOption `cbor:"options,omitempty"`
}

// NewSelectInput returns a select input with the given choices.
func NewSelectInput(value string, options ...SelectOption) SelectInput {
	return SelectInput{Value: value, Options: slices.Clone(options)}
}

// HasOption reports whether id names one of the choices.
func (s SelectInput) HasOption(id string) bool {
	return slices.ContainsFunc(s.Options, func(option SelectOption) bool { return option.ID == id })
}

// SwitchInput is an on/off toggle. It is submitted as "true" or "false".
type SwitchInput struct {
	Value bool `cbor:"value"`
}

// NewSwitchInput returns a toggle in the given state.
func NewSwitchInput(value bool) SwitchInput { return SwitchInput{Value: value} }

// SliderInput picks an integer in [Min, Max] in increments of Step.
//
// The constructor does not check that Min <= Value <= Max or that Step
// divides the range. Callers pass consistent bounds.
type SliderInput struct {
	Value uint `cbor:"value"`
	Min   uint `cbor:"min_value"`
	Max   uint `cbor:"max_value"`
	Step  uint `cbor:"step"`
}

// NewSliderInput returns a slider.
func NewSliderInput(value, minimum, maximum, step uint) SliderInput {
	return SliderInput{Value: value, Min: minimum, Max: maximum, Step: step}
}

// FileSystemInput picks a file, or a directory when PickDirectory is
// set. Filters restrict the selectable file extensions.
type FileSystemInput struct {
	Value         string           `cbor:"value"`
	PickDirectory bool             `cbor:"pick_directory,omitempty"`
	Filters       []string         `cbor:"filters,omitempty"`
	Validation    *FieldValidation `cbor:"validation,omitempty"`
}

// NewFileSystemInput returns a file picker starting at path.
func NewFileSystemInput(path string) FileSystemInput { return FileSystemInput{Value: path} }

// WithPickDirectory returns a copy that picks directories instead of
// files.
func (f FileSystemInput) WithPickDirectory(pickDirectory bool) FileSystemInput {
	f.PickDirectory = pickDirectory
	return f
}

// WithFilter returns a copy that also accepts files ending in
// extension.
func (f FileSystemInput) WithFilter(extension string) FileSystemInput {
	f.Filters = append(slices.Clone(f.Filters), extension)
	return f
}

// WithNotEmpty returns a copy that requires a selection. Passing false
// removes any validation.
func (f FileSystemInput) WithNotEmpty(notEmpty bool) FileSystemInput {
	if notEmpty {
		validation := NewFieldValidation().WithNotEmpty(true)
		f.Validation = &validation
	} else {
		f.Validation = nil
	}
	return f
}

func (TextInput) FieldKind() FieldKind       { return FieldText }
func (TextAreaInput) FieldKind() FieldKind   { return FieldTextArea }
func (SelectInput) FieldKind() FieldKind     { return FieldSelect }
func (SwitchInput) FieldKind() FieldKind     { return FieldSwitch }
func (SliderInput) FieldKind() FieldKind     { return FieldSlider }
func (FileSystemInput) FieldKind() FieldKind { return FieldFileSystem }

func (TextInput) isInput()       {}
func (TextAreaInput) isInput()   {}
func (SelectInput) isInput()     {}
func (SwitchInput) isInput()     {}
func (SliderInput) isInput()     {}
func (FileSystemInput) isInput() {}

// Field is one input of an [OpenFormAction]. ID must be unique within
// the form; Args are opaque strings echoed back to the extension with
// the field's answer.
type Field struct {
	id          string
	title       string
	description string
	args        []string
	input       Input
}

func newField(id, title, description string, input Input) Field {
	return Field{id: id, title: title, description: description, input: input}
}

// NewTextField returns a single-line text field.
func NewTextField(id, title, description string, input TextInput) Field {
	input.Validation = input.Validation.clone()
	return newField(id, title, description, input)
}

// NewTextAreaField returns a multi-line text field.
func NewTextAreaField(id, title, description string, input TextAreaInput) Field {
	input.Validation = input.Validation.clone()
	return newField(id, title, description, input)
}

// NewSelectField returns a choice field.
func NewSelectField(id, title, description string, input SelectInput) Field {
	input.Options = slices.Clone(input.Options)
	return newField(id, title, description, input)
}

// NewSwitchField returns a toggle field.
func NewSwitchField(id, title, description string, input SwitchInput) Field {
	return newField(id, title, description, input)
}

// NewSliderField returns a bounded numeric field.
func NewSliderField(id, title, description string, input SliderInput) Field {
	return newField(id, title, description, input)
}

// NewFileSystemField returns a path picker field.
func NewFileSystemField(id, title, description string, input FileSystemInput) Field {
	input.Filters = slices.Clone(input.Filters)
	input.Validation = input.Validation.clone()
	return newField(id, title, description, input)
}

// WithArg returns a copy of the field with arg appended to its args.
func (f Field) WithArg(arg string) Field {
	f.args = append(slices.Clone(f.args), arg)
	return f
}

func (f Field) ID() string          { return f.id }
func (f Field) Title() string       { return f.title }
func (f Field) Description() string { return f.description }

// Args returns a copy of the field's args.
func (f Field) Args() []string { return slices.Clone(f.args) }

// Kind returns the input variant, or "" for the zero value.
func (f Field) Kind() FieldKind {
	if f.input == nil {
		return ""
	}
	return f.input.FieldKind()
}

// Input returns the kind-specific payload.
func (f Field) Input() Input { return f.input }

// Validation returns the declared validation for text, text area and
// file system fields. Select, switch and slider fields are constrained
// by construction and return nil.
func (f Field) Validation() *FieldValidation {
	switch input := f.input.(type) {
	case TextInput:
		return input.Validation.clone()
	case TextAreaInput:
		return input.Validation.clone()
	case FileSystemInput:
		return input.Validation.clone()
	default:
		return nil
	}
}

// TextInput returns the text payload and true if that is the kind.
func (f Field) TextInput() (TextInput, bool) {
	input, ok := f.input.(TextInput)
	return input, ok
}

// TextAreaInput returns the text area payload and true if that is the
// kind.
func (f Field) TextAreaInput() (TextAreaInput, bool) {
	input, ok := f.input.(TextAreaInput)
	return input, ok
}

// SelectInput returns the select payload and true if that is the kind.
func (f Field) SelectInput() (SelectInput, bool) {
	input, ok := f.input.(SelectInput)
	if ok {
		input.Options = slices.Clone(input.Options)
	}
	return input, ok
}

// SwitchInput returns the switch payload and true if that is the kind.
func (f Field) SwitchInput() (SwitchInput, bool) {
	input, ok := f.input.(SwitchInput)
	return input, ok
}

// SliderInput returns the slider payload and true if that is the kind.
func (f Field) SliderInput() (SliderInput, bool) {
	input, ok := f.input.(SliderInput)
	return input, ok
}

// FileSystemInput returns the file system payload and true if that is
// the kind.
func (f Field) FileSystemInput() (FileSystemInput, bool) {
	input, ok := f.input.(FileSystemInput)
	if ok {
		input.Filters = slices.Clone(input.Filters)
	}
	return input, ok
}

type fieldWire struct {
	Kind        FieldKind        `cbor:"kind"`
	ID          string           `cbor:"id"`
	Title       string           `cbor:"title"`
	Description string           `cbor:"description,omitempty"`
	Args        []string         `cbor:"args,omitempty"`
	Input       codec.RawMessage `cbor:"input"`
}

// MarshalCBOR implements cbor.Marshaler.
func (f Field) MarshalCBOR() ([]byte, error) {
	if f.input == nil {
		return nil, fmt.Errorf("field %q: no input kind set", f.id)
	}
	input, err := codec.Marshal(f.input)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.id, err)
	}
	return codec.Marshal(fieldWire{
		Kind:        f.input.FieldKind(),
		ID:          f.id,
		Title:       f.title,
		Description: f.description,
		Args:        f.args,
		Input:       input,
	})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (f *Field) UnmarshalCBOR(data []byte) error {
	var wire fieldWire
	if err := codec.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("field: %w", err)
	}
	if len(wire.Input) == 0 {
		return fmt.Errorf("field %q: input is required", wire.ID)
	}

	var input Input
	var err error
	switch wire.Kind {
	case FieldText:
		input, err = decodeInput[TextInput](wire)
	case FieldTextArea:
		input, err = decodeInput[TextAreaInput](wire)
	case FieldSelect:
		input, err = decodeInput[SelectInput](wire)
	case FieldSwitch:
		input, err = decodeInput[SwitchInput](wire)
	case FieldSlider:
		input, err = decodeInput[SliderInput](wire)
	case FieldFileSystem:
		input, err = decodeInput[FileSystemInput](wire)
	case "":
		return errors.New("field: kind is required")
	default:
		return fmt.Errorf("field %q: unknown kind %q", wire.ID, wire.Kind)
	}
	if err != nil {
		return err
	}

	*f = Field{
		id:          wire.ID,
		title:       wire.Title,
		description: wire.Description,
		args:        wire.Args,
		input:       input,
	}
	return nil
}

func decodeInput[T Input](wire fieldWire) (Input, error) {
	var input T
	if err := codec.Unmarshal(wire.Input, &input); err != nil {
		return nil, fmt.Errorf("field %q (%s): %w", wire.ID, wire.Kind, err)
	}
	return input, nil
}
