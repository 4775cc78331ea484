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

// The file provides the HTTP handler for the job executor function. It is
// the single place where internal errors are converted to the external
// {error, message} response shape.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/itodotimothy6/aef-orchestration-framework/internal/apiserver/common"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/api"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/dataproc"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/dispatcher"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/util/logging"
)

// Error kinds reported to the caller.
const (
	KindSubmission = "JobSubmissionError"
	KindStatus     = "JobStatusError"
	KindInvalid    = "InvalidRequest"
	KindInternal   = "InternalError"
)

type ExecutorHandler struct {
	dispatcher *dispatcher.Dispatcher
}

func NewExecutorHandler(d *dispatcher.Dispatcher) *ExecutorHandler {
	return &ExecutorHandler{dispatcher: d}
}

func (c *ExecutorHandler) GetRoutes() []common.Route {
	return []common.Route{
		{
			Method:      http.MethodPost,
			Pattern:     "/",
			HandlerFunc: c.Execute,
		},
	}
}

// Execute runs one invocation. A successful call answers with a bare
// string: the new batch id or the current state. Any failure answers with
// the structured error body; the status code is left to the host default.
func (c *ExecutorHandler) Execute(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetRequestLogger(r)

	var req api.ExecutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(err, "failed to decode request body")
		common.WriteError(r.Context(), w, KindInvalid,
			fmt.Sprintf("failed to decode request body: %v", err))
		return
	}

	result, err := c.dispatcher.Dispatch(r.Context(), &req)
	if err != nil {
		logger.Error(err, "execution failed",
			"workflow", req.WorkflowName, "job", req.JobName)
		common.WriteError(r.Context(), w, errorKind(err), err.Error())
		return
	}

	if strings.HasPrefix(result, dataproc.BatchIDPrefix) {
		logger.V(logging.INFO).Info("running job, track it with the returned id", "batchID", result)
	} else {
		logger.V(logging.INFO).Info("call finished", "state", result)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(result))
}

func errorKind(err error) string {
	var submission *dataproc.SubmissionError
	var status *dataproc.StatusError
	switch {
	case errors.As(err, &submission):
		return KindSubmission
	case errors.As(err, &status):
		return KindStatus
	default:
		return KindInternal
	}
}
