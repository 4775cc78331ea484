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

// The file defines the batches.create request body. Field names follow the
// Dataproc v1 Batch resource; absent parameters are omitted rather than
// sent as empty values.
package dataproc

import (
	"fmt"

	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/params"
)

type BatchPayload struct {
	SparkBatch        SparkBatch        `json:"spark_batch"`
	RuntimeConfig     RuntimeConfig     `json:"runtime_config"`
	EnvironmentConfig EnvironmentConfig `json:"environment_config"`
}

type SparkBatch struct {
	JarFileURIs []string `json:"jar_file_uris,omitempty"`
	MainClass   string   `json:"main_class,omitempty"`
	Args        []string `json:"args,omitempty"`
}

type RuntimeConfig struct {
	Version    string            `json:"version,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

type EnvironmentConfig struct {
	ExecutionConfig   ExecutionConfig    `json:"execution_config"`
	PeripheralsConfig *PeripheralsConfig `json:"peripherals_config,omitempty"`
}

type ExecutionConfig struct {
	ServiceAccount string `json:"service_account,omitempty"`
	SubnetworkURI  string `json:"subnetwork_uri,omitempty"`
}

type PeripheralsConfig struct {
	SparkHistoryServerConfig SparkHistoryServerConfig `json:"spark_history_server_config"`
}

type SparkHistoryServerConfig struct {
	DataprocCluster string `json:"dataproc_cluster"`
}

// buildPayload maps job definition parameters onto the Batch resource.
// peripherals_config is attached only when a history server cluster is
// configured.
func buildPayload(p *params.JobDefinitionParams) *BatchPayload {
	payload := &BatchPayload{
		SparkBatch: SparkBatch{
			MainClass: p.SparkAppMainClass,
			Args:      p.SparkArgs,
		},
		RuntimeConfig: RuntimeConfig{
			Version:    p.RuntimeVersion,
			Properties: p.SparkAppProperties,
		},
		EnvironmentConfig: EnvironmentConfig{
			ExecutionConfig: ExecutionConfig{
				ServiceAccount: p.ServiceAccount,
			},
		},
	}

	if p.JarFileLocation != "" {
		payload.SparkBatch.JarFileURIs = []string{p.JarFileLocation}
	}

	if p.Subnetwork != "" {
		payload.EnvironmentConfig.ExecutionConfig.SubnetworkURI =
			fmt.Sprintf("projects/%s/%s", p.ProjectID, p.Subnetwork)
	}

	if p.SparkHistoryServerCluster != "" {
		payload.EnvironmentConfig.PeripheralsConfig = &PeripheralsConfig{
			SparkHistoryServerConfig: SparkHistoryServerConfig{
				DataprocCluster: fmt.Sprintf("projects/%s/regions/%s/clusters/%s",
					p.ProjectID, p.Region, p.SparkHistoryServerCluster),
			},
		}
	}

	return payload
}
