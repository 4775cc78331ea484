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

// The job executor's configuration definitions.

package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/dataproc"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port             string        `json:"port" yaml:"port"`
	MetricsAddress   string        `json:"metrics_address" yaml:"metrics_address"`
	FunctionName     string        `json:"function_name" yaml:"function_name"`
	DataprocEndpoint string        `json:"dataproc_endpoint" yaml:"dataproc_endpoint"`
	StorageEndpoint  string        `json:"storage_endpoint" yaml:"storage_endpoint"`
	RequestTimeout   time.Duration `json:"request_timeout" yaml:"request_timeout"`
}

// NewConfig returns a new Config with default values. RequestTimeout
// defaults to zero: outbound calls carry no timeout and callers impose
// their own.
func NewConfig() *Config {
	return &Config{
		Port:             "8080",
		MetricsAddress:   ":9090",
		DataprocEndpoint: dataproc.DefaultEndpoint,
	}
}

// LoadFromYAML loads the configuration from a YAML file.
func (c *Config) LoadFromYAML(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(c); err != nil {
		return err
	}
	return nil
}

func (c *Config) AddFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Port, "port", c.Port, "Port the function server listens on")
	fs.StringVar(&c.MetricsAddress, "metrics-address", c.MetricsAddress, "Address of the observability server")
	fs.StringVar(&c.FunctionName, "function-name", c.FunctionName, "Function identity used in job definition object paths")
	fs.StringVar(&c.DataprocEndpoint, "dataproc-endpoint", c.DataprocEndpoint, "Base URL of the Dataproc API")
	fs.StringVar(&c.StorageEndpoint, "storage-endpoint", c.StorageEndpoint, "Storage API endpoint override, empty for the default")
	fs.DurationVar(&c.RequestTimeout, "request-timeout", c.RequestTimeout, "Timeout for outbound Dataproc calls, zero for none")
}

// LoadFromEnv applies the hosting runtime's environment: K_SERVICE carries
// the deployed function name and PORT the serving port.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("K_SERVICE"); v != "" {
		c.FunctionName = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.MetricsAddress == "" {
		return fmt.Errorf("metrics address must not be empty")
	}
	if c.DataprocEndpoint == "" {
		return fmt.Errorf("dataproc endpoint must not be empty")
	}
	return nil
}
