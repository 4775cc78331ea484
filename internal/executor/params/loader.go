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
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/metrics"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/util/logging"
	"k8s.io/klog/v2"
)

// ObjectReader is the part of the blob store the loader needs.
type ObjectReader interface {
	ReadObject(ctx context.Context, bucket, object string) ([]byte, error)
}

type Loader struct {
	store ObjectReader
}

func NewLoader(store ObjectReader) *Loader {
	return &Loader{store: store}
}

// Load fetches and parses <functionName>/<jobName>.json from the bucket.
// A missing object, malformed JSON or non-UTF-8 content resolves to
// (nil, nil): the job runs without parameters rather than failing the
// invocation. Any other storage failure is an error.
func (l *Loader) Load(ctx context.Context, bucket, functionName, jobName string) (*JobDefinitionParams, error) {
	logger := klog.FromContext(ctx)
	object := fmt.Sprintf("%s/%s.json", functionName, jobName)

	data, err := l.store.ReadObject(ctx, bucket, object)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.V(logging.WARNING).Info("job definition object not found",
				"bucket", bucket, "object", object)
			metrics.RecordParamLoadFailure(metrics.ReasonNotFound)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read job definition %s/%s: %w", bucket, object, err)
	}

	if !utf8.Valid(data) {
		logger.V(logging.WARNING).Info("job definition object is not valid UTF-8",
			"bucket", bucket, "object", object)
		metrics.RecordParamLoadFailure(metrics.ReasonBadEncoding)
		return nil, nil
	}

	parsed, err := Parse(data)
	if err != nil {
		logger.V(logging.WARNING).Info("job definition object is not valid JSON",
			"bucket", bucket, "object", object, "error", err.Error())
		metrics.RecordParamLoadFailure(metrics.ReasonBadJSON)
		return nil, nil
	}

	logger.V(logging.DEBUG).Info("loaded job definition", "bucket", bucket, "object", object)
	return parsed, nil
}
