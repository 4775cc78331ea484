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

// The file provides shared plumbing for HTTP handlers: route registration
// and the error response body shape.
package common

import (
	"context"
	"encoding/json"
	"net/http"

	"k8s.io/klog/v2"
)

// Route describes a single HTTP route served by a handler.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// ApiHandler is implemented by handlers that expose a set of routes.
type ApiHandler interface {
	GetRoutes() []Route
}

// RegisterHandler registers all of a handler's routes on the given mux.
func RegisterHandler(mux *http.ServeMux, handler ApiHandler) {
	for _, route := range handler.GetRoutes() {
		mux.HandleFunc(route.Method+" "+route.Pattern, route.HandlerFunc)
	}
}

// ErrorResponse is the JSON body returned for any failed invocation.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes the structured error body. It deliberately does not set
// a status code; the function contract leaves that to the hosting runtime's
// default.
func WriteError(ctx context.Context, w http.ResponseWriter, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: kind, Message: message}); err != nil {
		klog.FromContext(ctx).Error(err, "failed to write error response")
	}
}
