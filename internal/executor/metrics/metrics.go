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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// labels definition
const (
	// result labels
	ResultSuccess = "success"
	ResultFailed  = "failed"

	// reason labels for job definition load failures
	ReasonNotFound    = "not_found"
	ReasonBadJSON     = "bad_json"
	ReasonBadEncoding = "bad_encoding"
)

var (
	// number of batch submissions issued so far
	batchSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataproc_batch_submissions_total",
			Help: "Total number of Dataproc Serverless batch submissions",
		}, []string{"result"},
	)

	// number of batch status checks issued so far
	statusChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataproc_status_checks_total",
			Help: "Total number of Dataproc Serverless batch status checks",
		}, []string{"result"},
	)

	// job definition objects that could not be used
	paramLoadFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_definition_load_failures_total",
			Help: "Total number of job definition loads that resolved to no parameters",
		}, []string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(batchSubmissionsTotal)
	prometheus.MustRegister(statusChecksTotal)
	prometheus.MustRegister(paramLoadFailuresTotal)
}

// Recorder funcs

// RecordBatchSubmission increments the batch submission count.
func RecordBatchSubmission(result string) {
	batchSubmissionsTotal.WithLabelValues(result).Inc()
}

// RecordStatusCheck increments the status check count.
func RecordStatusCheck(result string) {
	statusChecksTotal.WithLabelValues(result).Inc()
}

// RecordParamLoadFailure increments the load failure count for a reason.
func RecordParamLoadFailure(reason string) {
	paramLoadFailuresTotal.WithLabelValues(reason).Inc()
}
