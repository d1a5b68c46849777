// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package pipe

import (
	"fmt"
	"io"

	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/schema/request"
	"github.com/tigris-launcher/tigris/lib/wire"
)

// ReadRequest reads r to end of file and decodes the request. It
// blocks until the host closes its end.
func ReadRequest(r io.Reader) (request.ExtensionRequest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return request.ExtensionRequest{}, fmt.Errorf("reading request: %w", err)
	}
	var req request.ExtensionRequest
	if err := wire.Pipe.Decode(data, wire.KindRequest, &req); err != nil {
		return request.ExtensionRequest{}, err
	}
	return req, nil
}

// WriteResults encodes results and writes them to w in one call. A nil
// slice is written as an empty list.
func WriteResults(w io.Writer, results []action.SearchResult) error {
	if results == nil {
		results = []action.SearchResult{}
	}
	data, err := wire.Pipe.Encode(wire.KindResults, results)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
