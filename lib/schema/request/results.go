// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"fmt"
	"slices"
	"strconv"
)

// NotFoundError is returned when no form answer has the requested id.
type NotFoundError struct {
	ID string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("form result %q not found", err.ID)
}

// ParseError is returned when a form answer's text cannot be read as
// the requested type.
type ParseError struct {
	ID    string
	Value string
	Want  string
	Err   error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("form result %q: cannot parse %q as %s: %v", err.ID, err.Value, err.Want, err.Err)
}

func (err *ParseError) Unwrap() error { return err.Err }

// Result returns the first answer with the given id. Ids are not
// guaranteed unique, so later duplicates are ignored.
func (f FormResultsRequest) Result(id string) (FormResult, error) {
	index := slices.IndexFunc(f.Results, func(result FormResult) bool { return result.ID == id })
	if index < 0 {
		return FormResult{}, &NotFoundError{ID: id}
	}
	result := f.Results[index]
	result.Args = slices.Clone(result.Args)
	return result, nil
}

// Text returns the raw text of answer id.
func (f FormResultsRequest) Text(id string) (string, error) {
	result, err := f.Result(id)
	if err != nil {
		return "", err
	}
	return result.Value, nil
}

// Bool returns true only when answer id is exactly "true". Other text,
// including "True", "1" and "yes", is false.
func (f FormResultsRequest) Bool(id string) (bool, error) {
	result, err := f.Result(id)
	if err != nil {
		return false, err
	}
	return result.Value == "true", nil
}

// Uint returns answer id as a non-negative integer.
func (f FormResultsRequest) Uint(id string) (uint64, error) {
	result, err := f.Result(id)
	if err != nil {
		return 0, err
	}
	number, err := strconv.ParseUint(result.Value, 10, 64)
	if err != nil {
		return 0, &ParseError{ID: id, Value: result.Value, Want: "a non-negative integer", Err: err}
	}
	return number, nil
}

// Path returns answer id as a filesystem path. Any text is a path.
func (f FormResultsRequest) Path(id string) (string, error) {
	result, err := f.Result(id)
	if err != nil {
		return "", err
	}
	return result.Value, nil
}
