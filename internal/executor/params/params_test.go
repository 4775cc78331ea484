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

package params

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Properties
		wantErr  bool
	}{
		{
			name:     "object form",
			input:    `{"spark.executor.memory":"4g","spark.driver.cores":"2"}`,
			expected: Properties{"spark.executor.memory": "4g", "spark.driver.cores": "2"},
		},
		{
			name:     "JSON-encoded string form",
			input:    `"{\"spark.executor.memory\":\"4g\"}"`,
			expected: Properties{"spark.executor.memory": "4g"},
		},
		{
			name:     "null resolves to absent",
			input:    `null`,
			expected: nil,
		},
		{
			name:     "empty string resolves to absent",
			input:    `""`,
			expected: nil,
		},
		{
			name:    "string that is not JSON fails",
			input:   `"not-json"`,
			wantErr: true,
		},
		{
			name:    "non-object value fails",
			input:   `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var props Properties
			err := json.Unmarshal([]byte(tt.input), &props)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, props)
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`{
		"dataproc_serverless_project_id": "proj-1",
		"dataproc_serverless_region": "us-central1",
		"jar_file_location": "gs://jars/app.jar",
		"spark_history_server_cluster": "history",
		"spark_app_main_class": "com.example.Main",
		"spark_args": ["--date", "2024-01-01"],
		"dataproc_serverless_runtime_version": "2.2",
		"dataproc_service_account": "runner@proj-1.iam.gserviceaccount.com",
		"spark_app_properties": {"spark.executor.memory": "4g"},
		"subnetwork": "regions/us-central1/subnetworks/default"
	}`)

	parsed, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "proj-1", parsed.ProjectID)
	assert.Equal(t, "us-central1", parsed.Region)
	assert.Equal(t, "gs://jars/app.jar", parsed.JarFileLocation)
	assert.Equal(t, "history", parsed.SparkHistoryServerCluster)
	assert.Equal(t, "com.example.Main", parsed.SparkAppMainClass)
	assert.Equal(t, []string{"--date", "2024-01-01"}, parsed.SparkArgs)
	assert.Equal(t, "2.2", parsed.RuntimeVersion)
	assert.Equal(t, "runner@proj-1.iam.gserviceaccount.com", parsed.ServiceAccount)
	assert.Equal(t, Properties{"spark.executor.memory": "4g"}, parsed.SparkAppProperties)
	assert.Equal(t, "regions/us-central1/subnetworks/default", parsed.Subnetwork)
}

func TestParseWithStringProperties(t *testing.T) {
	data := []byte(`{"spark_app_properties": "{\"spark.executor.memory\":\"8g\"}"}`)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Properties{"spark.executor.memory": "8g"}, parsed.SparkAppProperties)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"dataproc_serverless_project_id": `))
	assert.Error(t, err)
}
