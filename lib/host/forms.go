// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tigris-launcher/tigris/lib/mailbox"
	"github.com/tigris-launcher/tigris/lib/schema/action"
)

// KeepForm stores form until the user submits it. A form with the same
// extension and form id replaces the earlier one.
func (i *Invoker) KeepForm(form action.OpenFormAction) error {
	path := i.layout.FormFile(form.ExtensionID, form.FormID)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("keeping form: %w", err)
	}
	return mailbox.New(path, mailbox.WithFormat(i.mailboxFormat)).WriteForm(form)
}

// KeptForm returns a form stored by KeepForm. An unknown form is an
// error wrapping mailbox.ErrEmpty.
func (i *Invoker) KeptForm(extensionID, formID string) (action.OpenFormAction, error) {
	form, err := mailbox.New(i.layout.FormFile(extensionID, formID)).GetForm()
	if err != nil {
		return action.OpenFormAction{}, fmt.Errorf("form %s of %s: %w", formID, extensionID, err)
	}
	return form, nil
}

// DropForm forgets a kept form. Dropping an unknown form is not an
// error.
func (i *Invoker) DropForm(extensionID, formID string) error {
	return mailbox.New(i.layout.FormFile(extensionID, formID)).Clear()
}
