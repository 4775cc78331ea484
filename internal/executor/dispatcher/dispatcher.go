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

// Package dispatcher routes an execution request to batch creation or
// status lookup.
package dispatcher

import (
	"context"

	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/api"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/dataproc"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/metrics"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/params"
)

// Dispatcher holds the per-process collaborators. It is built once at
// startup and is safe for concurrent invocations.
type Dispatcher struct {
	loader       *params.Loader
	dataproc     *dataproc.Client
	functionName string
}

func New(loader *params.Loader, client *dataproc.Client, functionName string) *Dispatcher {
	return &Dispatcher{
		loader:       loader,
		dataproc:     client,
		functionName: functionName,
	}
}

// Dispatch returns either a batch id (creation) or a state string (lookup).
// Job definition parameters are fetched fresh on every call when a bucket
// is configured; a definition that cannot be used resolves to empty
// parameters and the call still proceeds.
func (d *Dispatcher) Dispatch(ctx context.Context, req *api.ExecutionRequest) (string, error) {
	var jobParams *params.JobDefinitionParams
	if bucket := req.JobsDefinitionsBucket(); bucket != "" {
		loaded, err := d.loader.Load(ctx, bucket, d.functionName, req.JobName)
		if err != nil {
			return "", err
		}
		jobParams = loaded
	}
	if jobParams == nil {
		jobParams = &params.JobDefinitionParams{}
	}

	if req.JobID != "" {
		state, err := d.dataproc.GetBatchState(ctx, req.JobID, jobParams)
		if err != nil {
			metrics.RecordStatusCheck(metrics.ResultFailed)
			return "", err
		}
		metrics.RecordStatusCheck(metrics.ResultSuccess)
		return state, nil
	}

	batchID, err := d.dataproc.CreateBatch(ctx, jobParams)
	if err != nil {
		metrics.RecordBatchSubmission(metrics.ResultFailed)
		return "", err
	}
	metrics.RecordBatchSubmission(metrics.ResultSuccess)
	return batchID, nil
}
