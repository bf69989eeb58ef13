// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package client

import (
	"io"
	"net/http"
)

// retryTransport retries a request exactly once on a connection
// failure or 5xx response. The policy applies uniformly to every API
// call the client makes.
type retryTransport struct {
	next http.RoundTripper
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err == nil && resp.StatusCode < 500 {
		return resp, nil
	}

	// Bodies are replayable only via GetBody; without it the first
	// attempt's outcome stands.
	if req.Body != nil {
		if req.GetBody == nil {
			return resp, err
		}
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return resp, err
		}
		req.Body = body
	}

	if resp != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return t.next.RoundTrip(req)
}
