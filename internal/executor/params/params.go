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

// Package params loads and parses job definition parameters from blob
// storage. A job definition is a flat JSON object authored outside this
// system, one per job name.
package params

import (
	"encoding/json"
	"fmt"
)

// JobDefinitionParams describes how to launch one named Spark job on
// Dataproc Serverless. All fields are optional; absent fields are omitted
// from the outbound payload.
type JobDefinitionParams struct {
	ProjectID                 string     `json:"dataproc_serverless_project_id"`
	Region                    string     `json:"dataproc_serverless_region"`
	JarFileLocation           string     `json:"jar_file_location"`
	SparkHistoryServerCluster string     `json:"spark_history_server_cluster"`
	SparkAppMainClass         string     `json:"spark_app_main_class"`
	SparkArgs                 []string   `json:"spark_args"`
	RuntimeVersion            string     `json:"dataproc_serverless_runtime_version"`
	ServiceAccount            string     `json:"dataproc_service_account"`
	SparkAppProperties        Properties `json:"spark_app_properties"`
	Subnetwork                string     `json:"subnetwork"`
}

// Properties holds Spark application properties. Job definitions carry them
// either as a JSON object or as a JSON-encoded string of an object; both
// forms decode to the structured value.
type Properties map[string]string

func (p *Properties) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			return nil
		}
		data = []byte(raw)
	}
	var props map[string]string
	if err := json.Unmarshal(data, &props); err != nil {
		return err
	}
	*p = props
	return nil
}

// Parse decodes a job definition object.
func Parse(data []byte) (*JobDefinitionParams, error) {
	var params JobDefinitionParams
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse job definition: %w", err)
	}
	return &params, nil
}
