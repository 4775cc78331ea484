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

// The file defines the JSON body the orchestrator sends to this function.
package api

// ExecutionRequest describes either a job to launch (no job_id) or an
// existing batch to poll (job_id set).
type ExecutionRequest struct {
	WorkflowName string `json:"workflow_name"`
	JobName      string `json:"job_name"`

	// JobID, when present, switches the invocation to status-lookup mode.
	JobID string `json:"job_id,omitempty"`

	// QueryVariables is accepted for interface parity with the other
	// executor functions of the framework; Spark jobs take their inputs
	// from spark_args instead.
	QueryVariables map[string]interface{} `json:"query_variables,omitempty"`

	WorkflowProperties *WorkflowProperties `json:"workflow_properties,omitempty"`
}

type WorkflowProperties struct {
	JobsDefinitionsBucket string `json:"jobs_definitions_bucket,omitempty"`
}

// JobsDefinitionsBucket returns the configured bucket, or "" when the
// request carries no workflow properties.
func (r *ExecutionRequest) JobsDefinitionsBucket() string {
	if r.WorkflowProperties == nil {
		return ""
	}
	return r.WorkflowProperties.JobsDefinitionsBucket
}
