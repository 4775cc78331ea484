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

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/itodotimothy6/aef-orchestration-framework/internal/apiserver/common"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/dataproc"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/dispatcher"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeStore struct {
	objects map[string][]byte
}

func (f *fakeStore) ReadObject(ctx context.Context, bucket, object string) ([]byte, error) {
	data, ok := f.objects[bucket+"/"+object]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func testHandler(t *testing.T, remote http.HandlerFunc) *ExecutorHandler {
	t.Helper()
	server := httptest.NewServer(remote)
	t.Cleanup(server.Close)

	client := dataproc.New(dataproc.Config{Endpoint: server.URL},
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}))
	store := &fakeStore{objects: map[string][]byte{
		"defs/executor-fn/daily_load.json": []byte(
			`{"dataproc_serverless_project_id":"proj-1","dataproc_serverless_region":"us-central1"}`),
	}}
	return NewExecutorHandler(dispatcher.New(params.NewLoader(store), client, "executor-fn"))
}

func execute(t *testing.T, h *ExecutorHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Execute(w, req)
	return w
}

func TestExecuteCreation(t *testing.T) {
	h := testHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	w := execute(t, h, `{
		"workflow_name": "daily",
		"job_name": "daily_load",
		"workflow_properties": {"jobs_definitions_bucket": "defs"}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Regexp(t, `^aef-\d+$`, w.Body.String())
}

func TestExecuteStatusLookup(t *testing.T) {
	h := testHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"state":"RUNNING"}`))
	})

	w := execute(t, h, `{
		"workflow_name": "daily",
		"job_name": "daily_load",
		"job_id": "aef-1755899000",
		"workflow_properties": {"jobs_definitions_bucket": "defs"}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "RUNNING", w.Body.String())
}

func TestExecuteSubmissionFailure(t *testing.T) {
	h := testHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":404,"message":"not found"}}`))
	})

	w := execute(t, h, `{"workflow_name": "daily", "job_name": "daily_load"}`)

	// the handler never sets a status code; errors ride the default
	assert.Equal(t, http.StatusOK, w.Code)

	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, KindSubmission, resp.Error)
	assert.Contains(t, resp.Message, "404")
}

func TestExecuteStatusFailure(t *testing.T) {
	h := testHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	w := execute(t, h, `{"workflow_name": "daily", "job_name": "daily_load", "job_id": "aef-0"}`)

	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, KindStatus, resp.Error)
	assert.Contains(t, resp.Message, "404")
}

func TestExecuteUndecodableBody(t *testing.T) {
	h := testHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no outbound call expected")
	})

	w := execute(t, h, `{"workflow_name":`)

	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, KindInvalid, resp.Error)
}
