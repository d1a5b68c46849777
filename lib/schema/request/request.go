// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tigris-launcher/tigris/lib/codec"
)

// RequestType identifies the payload of an [ExtensionRequest].
type RequestType string

const (
	// GetResults asks for search results for a piece of text.
	GetResults RequestType = "GetResults"

	// RunAction triggers a named extension action.
	RunAction RequestType = "RunAction"

	// FormResults delivers the answers to a form the extension opened.
	FormResults RequestType = "FormResults"
)

// RequestTypes lists every request type in declaration order.
var RequestTypes = []RequestType{GetResults, RunAction, FormResults}

// Payload is one [ExtensionRequest] variant. Sealed.
type Payload interface {
	RequestType() RequestType
	isPayload()
}

// GetResultsRequest asks for results matching SearchText.
type GetResultsRequest struct {
	SearchText string `cbor:"search_text"`
}

// RunActionRequest triggers Action with the args from the originating
// RunExtension result action.
type RunActionRequest struct {
	Action string   `cbor:"action"`
	Args   []string `cbor:"args,omitempty"`
}

// FormResult is the answer to one form field. Value is always text;
// Args are the field's args echoed back.
type FormResult struct {
	ID    string   `cbor:"id"`
	Value string   `cbor:"value"`
	Args  []string `cbor:"args,omitempty"`
}

// NewFormResult returns the answer value for field id.
func NewFormResult(id, value string, args ...string) FormResult {
	return FormResult{ID: id, Value: value, Args: slices.Clone(args)}
}

// FormResultsRequest delivers the answers to form FormID in field
// order, along with the form's args.
type FormResultsRequest struct {
	FormID  string       `cbor:"form_id"`
	Results []FormResult `cbor:"results,omitempty"`
	Args    []string     `cbor:"args,omitempty"`
}

func (GetResultsRequest) RequestType() RequestType  { return GetResults }
func (RunActionRequest) RequestType() RequestType   { return RunAction }
func (FormResultsRequest) RequestType() RequestType { return FormResults }

func (GetResultsRequest) isPayload()  {}
func (RunActionRequest) isPayload()   {}
func (FormResultsRequest) isPayload() {}

// ExtensionRequest is the envelope delivered to an extension over
// either transport. The zero value holds no payload and fails to encode.
type ExtensionRequest struct {
	payload Payload
}

// NewGetResults returns a search request.
func NewGetResults(searchText string) ExtensionRequest {
	return ExtensionRequest{payload: GetResultsRequest{SearchText: searchText}}
}

// NewRunAction returns an action trigger.
func NewRunAction(action string, args []string) ExtensionRequest {
	return ExtensionRequest{payload: RunActionRequest{Action: action, Args: slices.Clone(args)}}
}

// NewFormResults returns a form submission.
func NewFormResults(formID string, results []FormResult, args []string) ExtensionRequest {
	return ExtensionRequest{payload: FormResultsRequest{
		FormID:  formID,
		Results: slices.Clone(results),
		Args:    slices.Clone(args),
	}}
}

// Type returns the payload's request type, or "" for the zero value.
func (r ExtensionRequest) Type() RequestType {
	if r.payload == nil {
		return ""
	}
	return r.payload.RequestType()
}

// IsZero reports whether the request holds no payload.
func (r ExtensionRequest) IsZero() bool { return r.payload == nil }

// Payload returns the payload for type switches.
func (r ExtensionRequest) Payload() Payload { return r.payload }

// GetResults returns the search payload and true if that is the type.
func (r ExtensionRequest) GetResults() (GetResultsRequest, bool) {
	payload, ok := r.payload.(GetResultsRequest)
	return payload, ok
}

// RunAction returns the action payload and true if that is the type.
func (r ExtensionRequest) RunAction() (RunActionRequest, bool) {
	payload, ok := r.payload.(RunActionRequest)
	if ok {
		payload.Args = slices.Clone(payload.Args)
	}
	return payload, ok
}

// FormResults returns the form payload and true if that is the type.
func (r ExtensionRequest) FormResults() (FormResultsRequest, bool) {
	payload, ok := r.payload.(FormResultsRequest)
	if ok {
		payload.Results = slices.Clone(payload.Results)
		payload.Args = slices.Clone(payload.Args)
	}
	return payload, ok
}

type extensionRequestWire struct {
	Type    RequestType      `cbor:"request_type"`
	Payload codec.RawMessage `cbor:"payload"`
}

// MarshalCBOR implements cbor.Marshaler.
func (r ExtensionRequest) MarshalCBOR() ([]byte, error) {
	if r.payload == nil {
		return nil, errors.New("extension request: no payload set")
	}
	payload, err := codec.Marshal(r.payload)
	if err != nil {
		return nil, fmt.Errorf("extension request %s: %w", r.payload.RequestType(), err)
	}
	return codec.Marshal(extensionRequestWire{Type: r.payload.RequestType(), Payload: payload})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (r *ExtensionRequest) UnmarshalCBOR(data []byte) error {
	var wire extensionRequestWire
	if err := codec.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("extension request: %w", err)
	}
	if len(wire.Payload) == 0 {
		return fmt.Errorf("extension request %s: payload is required", wire.Type)
	}

	var payload Payload
	var err error
	switch wire.Type {
	case GetResults:
		payload, err = decodePayload[GetResultsRequest](wire)
	case RunAction:
		payload, err = decodePayload[RunActionRequest](wire)
	case FormResults:
		payload, err = decodePayload[FormResultsRequest](wire)
	case "":
		return errors.New("extension request: request_type is required")
	default:
		return fmt.Errorf("extension request: unknown request_type %q", wire.Type)
	}
	if err != nil {
		return err
	}
	r.payload = payload
	return nil
}

func decodePayload[T Payload](wire extensionRequestWire) (Payload, error) {
	var payload T
	if err := codec.Unmarshal(wire.Payload, &payload); err != nil {
		return nil, fmt.Errorf("extension request %s: %w", wire.Type, err)
	}
	return payload, nil
}
