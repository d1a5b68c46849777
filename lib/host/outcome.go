// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package host

import "github.com/tigris-launcher/tigris/lib/schema/action"

// OutcomeKind says what an extension answered a mailbox invocation
// with.
type OutcomeKind int

const (
	// OutcomeNone means the extension produced no answer.
	OutcomeNone OutcomeKind = iota

	// OutcomeResults means the extension returned search results.
	OutcomeResults

	// OutcomeForm means the extension asked for a form to be shown.
	OutcomeForm
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeResults:
		return "results"
	case OutcomeForm:
		return "form"
	default:
		return "unknown"
	}
}

// Outcome is the answer to a mailbox invocation. The zero value is
// OutcomeNone.
type Outcome struct {
	results []action.SearchResult
	form    *action.OpenFormAction
}

// Kind reports which answer the outcome carries.
func (o Outcome) Kind() OutcomeKind {
	switch {
	case o.form != nil:
		return OutcomeForm
	case o.results != nil:
		return OutcomeResults
	default:
		return OutcomeNone
	}
}

// Results returns the search results, if that is what was answered.
// An extension that answered with an empty list yields ok and a
// non-nil empty slice.
func (o Outcome) Results() ([]action.SearchResult, bool) {
	return o.results, o.results != nil
}

// Form returns the form to render, if that is what was answered.
func (o Outcome) Form() (action.OpenFormAction, bool) {
	if o.form == nil {
		return action.OpenFormAction{}, false
	}
	return *o.form, true
}
