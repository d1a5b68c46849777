// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package action

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tigris-launcher/tigris/lib/codec"
)

// ActionType identifies the variant held by a [ResultAction]. The
// string values are part of the wire contract.
type ActionType string

const (
	// ActionCopyText copies a string to the clipboard.
	ActionCopyText ActionType = "CopyText"

	// ActionCopyImage copies the image at a path to the clipboard.
	ActionCopyImage ActionType = "CopyImage"

	// ActionOpenLink opens a URL in the default browser.
	ActionOpenLink ActionType = "OpenLink"

	// ActionOpenApp launches the desktop entry at a path.
	ActionOpenApp ActionType = "OpenApp"

	// ActionOpenForm renders an interactive form and sends the answers
	// back to the owning extension.
	ActionOpenForm ActionType = "OpenForm"

	// ActionRunExtension invokes an extension action through the
	// mailbox transport.
	ActionRunExtension ActionType = "RunExtension"

	// ActionOpenSettings opens the launcher settings. It carries no
	// payload.
	ActionOpenSettings ActionType = "OpenSettings"
)

// ActionTypes lists every variant in declaration order.
var ActionTypes = []ActionType{
	ActionCopyText,
	ActionCopyImage,
	ActionOpenLink,
	ActionOpenApp,
	ActionOpenForm,
	ActionRunExtension,
	ActionOpenSettings,
}

// ParseActionType returns the ActionType named by s.
func ParseActionType(s string) (ActionType, error) {
	for _, actionType := range ActionTypes {
		if string(actionType) == s {
			return actionType, nil
		}
	}
	return "", fmt.Errorf("unknown action type %q", s)
}

// Action is the payload of one [ResultAction] variant. The interface is
// sealed: only the payload types in this package implement it.
type Action interface {
	ActionType() ActionType
	isAction()
}

// CopyTextAction copies Text to the clipboard.
type CopyTextAction struct {
	Text string `cbor:"text"`
}

// CopyImageAction copies the image file at ImagePath to the clipboard.
type CopyImageAction struct {
	ImagePath string `cbor:"image_path"`
}

// OpenLinkAction opens Link with the system URL handler.
type OpenLinkAction struct {
	Link string `cbor:"link"`
}

// OpenAppAction launches the desktop entry at Path.
type OpenAppAction struct {
	Path string `cbor:"path"`
}

// RunExtensionAction asks the host to invoke ExtensionAction on the
// extension ExtensionID, forwarding Args unchanged.
type RunExtensionAction struct {
	ExtensionID     string   `cbor:"extension_id"`
	ExtensionAction string   `cbor:"extension_action"`
	Args            []string `cbor:"args,omitempty"`
}

// OpenSettingsAction opens the launcher settings window.
type OpenSettingsAction struct{}

func (CopyTextAction) ActionType() ActionType     { return ActionCopyText }
func (CopyImageAction) ActionType() ActionType    { return ActionCopyImage }
func (OpenLinkAction) ActionType() ActionType     { return ActionOpenLink }
func (OpenAppAction) ActionType() ActionType      { return ActionOpenApp }
func (OpenFormAction) ActionType() ActionType     { return ActionOpenForm }
func (RunExtensionAction) ActionType() ActionType { return ActionRunExtension }
func (OpenSettingsAction) ActionType() ActionType { return ActionOpenSettings }

func (CopyTextAction) isAction()     {}
func (CopyImageAction) isAction()    {}
func (OpenLinkAction) isAction()     {}
func (OpenAppAction) isAction()      {}
func (OpenFormAction) isAction()     {}
func (RunExtensionAction) isAction() {}
func (OpenSettingsAction) isAction() {}

// NewRunExtensionAction returns a RunExtensionAction with no args.
func NewRunExtensionAction(extensionID, extensionAction string) RunExtensionAction {
	return RunExtensionAction{ExtensionID: extensionID, ExtensionAction: extensionAction}
}

// WithArg returns a copy of the action with arg appended to Args.
func (r RunExtensionAction) WithArg(arg string) RunExtensionAction {
	r.Args = append(slices.Clone(r.Args), arg)
	return r
}

// ResultAction is what happens when the user activates a search result.
// The zero value holds no variant and fails to encode.
type ResultAction struct {
	payload             Action
	requireConfirmation bool
}

// NewCopyText returns a CopyText result action.
func NewCopyText(text string) ResultAction {
	return ResultAction{payload: CopyTextAction{Text: text}}
}

// NewCopyImage returns a CopyImage result action.
func NewCopyImage(imagePath string) ResultAction {
	return ResultAction{payload: CopyImageAction{ImagePath: imagePath}}
}

// NewOpenLink returns an OpenLink result action.
func NewOpenLink(link string) ResultAction {
	return ResultAction{payload: OpenLinkAction{Link: link}}
}

// NewOpenApp returns an OpenApp result action.
func NewOpenApp(path string) ResultAction {
	return ResultAction{payload: OpenAppAction{Path: path}}
}

// NewOpenForm returns an OpenForm result action.
func NewOpenForm(form OpenFormAction) ResultAction {
	return ResultAction{payload: form.clone()}
}

// NewRunExtension returns a RunExtension result action.
func NewRunExtension(run RunExtensionAction) ResultAction {
	run.Args = slices.Clone(run.Args)
	return ResultAction{payload: run}
}

// NewOpenSettings returns an OpenSettings result action.
func NewOpenSettings() ResultAction {
	return ResultAction{payload: OpenSettingsAction{}}
}

// WithRequireConfirmation returns a copy of the action whose
// confirmation flag is set to require. The host must ask the user
// before executing an action that requires confirmation.
func (a ResultAction) WithRequireConfirmation(require bool) ResultAction {
	a.requireConfirmation = require
	return a
}

// RequireConfirmation reports whether the host must confirm with the
// user before performing the action.
func (a ResultAction) RequireConfirmation() bool { return a.requireConfirmation }

// IsZero reports whether the action holds no variant.
func (a ResultAction) IsZero() bool { return a.payload == nil }

// Type returns the variant tag, or "" for the zero value.
func (a ResultAction) Type() ActionType {
	if a.payload == nil {
		return ""
	}
	return a.payload.ActionType()
}

// Payload returns the variant payload. Use a type switch to dispatch.
func (a ResultAction) Payload() Action { return a.payload }

// CopyText returns the CopyText payload and true if that is the variant.
func (a ResultAction) CopyText() (CopyTextAction, bool) {
	payload, ok := a.payload.(CopyTextAction)
	return payload, ok
}

// CopyImage returns the CopyImage payload and true if that is the
// variant.
func (a ResultAction) CopyImage() (CopyImageAction, bool) {
	payload, ok := a.payload.(CopyImageAction)
	return payload, ok
}

// OpenLink returns the OpenLink payload and true if that is the variant.
func (a ResultAction) OpenLink() (OpenLinkAction, bool) {
	payload, ok := a.payload.(OpenLinkAction)
	return payload, ok
}

// OpenApp returns the OpenApp payload and true if that is the variant.
func (a ResultAction) OpenApp() (OpenAppAction, bool) {
	payload, ok := a.payload.(OpenAppAction)
	return payload, ok
}

// OpenForm returns the OpenForm payload and true if that is the variant.
// The returned form is a copy.
func (a ResultAction) OpenForm() (OpenFormAction, bool) {
	payload, ok := a.payload.(OpenFormAction)
	if !ok {
		return OpenFormAction{}, false
	}
	return payload.clone(), true
}

// RunExtension returns the RunExtension payload and true if that is the
// variant.
func (a ResultAction) RunExtension() (RunExtensionAction, bool) {
	payload, ok := a.payload.(RunExtensionAction)
	if ok {
		payload.Args = slices.Clone(payload.Args)
	}
	return payload, ok
}

// resultActionWire is the CBOR shape of a ResultAction. OpenSettings
// is the only variant with no payload.
type resultActionWire struct {
	Type                ActionType       `cbor:"type"`
	RequireConfirmation bool             `cbor:"require_confirmation,omitempty"`
	Payload             codec.RawMessage `cbor:"payload,omitempty"`
}

// MarshalCBOR implements cbor.Marshaler.
func (a ResultAction) MarshalCBOR() ([]byte, error) {
	if a.payload == nil {
		return nil, errors.New("result action: no variant set")
	}
	wire := resultActionWire{
		Type:                a.payload.ActionType(),
		RequireConfirmation: a.requireConfirmation,
	}
	if _, empty := a.payload.(OpenSettingsAction); !empty {
		payload, err := codec.Marshal(a.payload)
		if err != nil {
			return nil, fmt.Errorf("result action %s: %w", wire.Type, err)
		}
		wire.Payload = payload
	}
	return codec.Marshal(wire)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (a *ResultAction) UnmarshalCBOR(data []byte) error {
	var wire resultActionWire
	if err := codec.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("result action: %w", err)
	}

	var payload Action
	var err error
	switch wire.Type {
	case ActionCopyText:
		payload, err = decodePayload[CopyTextAction](wire)
	case ActionCopyImage:
		payload, err = decodePayload[CopyImageAction](wire)
	case ActionOpenLink:
		payload, err = decodePayload[OpenLinkAction](wire)
	case ActionOpenApp:
		payload, err = decodePayload[OpenAppAction](wire)
	case ActionOpenForm:
		payload, err = decodePayload[OpenFormAction](wire)
	case ActionRunExtension:
		payload, err = decodePayload[RunExtensionAction](wire)
	case ActionOpenSettings:
		if len(wire.Payload) != 0 {
			return errors.New("result action OpenSettings: unexpected payload")
		}
		payload = OpenSettingsAction{}
	case "":
		return errors.New("result action: type is required")
	default:
		return fmt.Errorf("result action: unknown type %q", wire.Type)
	}
	if err != nil {
		return err
	}

	*a = ResultAction{payload: payload, requireConfirmation: wire.RequireConfirmation}
	return nil
}

func decodePayload[T Action](wire resultActionWire) (Action, error) {
	var payload T
	if len(wire.Payload) == 0 {
		return nil, fmt.Errorf("result action %s: payload is required", wire.Type)
	}
	if err := codec.Unmarshal(wire.Payload, &payload); err != nil {
		return nil, fmt.Errorf("result action %s: %w", wire.Type, err)
	}
	return payload, nil
}
