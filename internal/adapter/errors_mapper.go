// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// postgrestError is the JSON body PostgREST returns with a non-2xx status.
type postgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e postgrestError) String() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + " " + msg
	}
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return strings.TrimSpace(msg)
}

// mapHTTPError converts a non-2xx response into one of the package
// sentinels. Returns nil for 2xx.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(status)
	}

	var sentinel error
	switch status {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound, http.StatusNotAcceptable:
		// 406 is what PostgREST answers for a single-object request that matched no rows
		sentinel = ErrNotFound
	case http.StatusTooManyRequests:
		sentinel = ErrTooManyRequests
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		sentinel = ErrBadGateway
	default:
		if status >= http.StatusInternalServerError {
			sentinel = ErrInternalServerError
		}
	}

	if sentinel == nil {
		return fmt.Errorf("http %d: %s", status, detail)
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}

func errorDetail(body []byte) string {
	var pe postgrestError
	if err := json.Unmarshal(body, &pe); err == nil && pe.Message != "" {
		return pe.String()
	}
	return strings.TrimSpace(string(body))
}
