/*
Copyright 2025 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestMiddlewareGeneratesRequestID(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	RequestMiddleware(next).ServeHTTP(w, req)

	if seenID == "" || seenID == "unknown" {
		t.Errorf("expected a generated request ID, got %q", seenID)
	}
	if got := w.Header().Get("X-Request-ID"); got != seenID {
		t.Errorf("response header %q does not match context ID %q", got, seenID)
	}
}

func TestRequestMiddlewarePropagatesExistingRequestID(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	w := httptest.NewRecorder()
	RequestMiddleware(next).ServeHTTP(w, req)

	if seenID != "caller-supplied" {
		t.Errorf("expected propagated request ID, got %q", seenID)
	}
	if got := w.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Errorf("expected response header to echo the caller ID, got %q", got)
	}
}

func TestGetRequestIDFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestIDFromContext(req.Context()); got != "unknown" {
		t.Errorf("expected %q, got %q", "unknown", got)
	}
}
