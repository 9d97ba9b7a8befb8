// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the adapters and the store:
// the preconfigured HTTP client and the record ID generator.
package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientConfig tunes [NewHTTPClient].
type HTTPClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	Retries   int
	UserAgent string
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool. Requests are retried on transport errors and on 429 and 5xx
// responses, with resty's exponential backoff between attempts.
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})

	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &HTTPClient{Client: client}
}
