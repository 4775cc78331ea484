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

// The entry point for the Dataproc Serverless job executor function.
// It handles configuration, client initialization and graceful shutdown.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"k8s.io/klog/v2"

	"github.com/itodotimothy6/aef-orchestration-framework/internal/apiserver/common"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/apiserver/health"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/apiserver/metrics"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/apiserver/middleware"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/config"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/dataproc"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/dispatcher"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/handler"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/executor/params"
	"github.com/itodotimothy6/aef-orchestration-framework/internal/storage/gcs"
)

func main() {
	cfg := config.NewConfig()

	// load and validate config
	fs := flag.NewFlagSet("dataproc-serverless-job-executor", flag.ExitOnError)
	klog.InitFlags(fs)
	cfgFilePath := fs.String("config", "", "Path to configuration file")
	cfg.AddFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		klog.Fatalf("failed to parse flags: %v", err)
	}
	if *cfgFilePath != "" {
		if err := cfg.LoadFromYAML(*cfgFilePath); err != nil {
			klog.InfoS("Failed to load config file, using defaults", "path", *cfgFilePath)
		}
	}
	cfg.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		klog.Fatalf("failed to validate config: %v", err)
	}

	// make sure to flush logs before exiting
	defer klog.Flush()

	// graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalChan := make(chan os.Signal, 2)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signalChan
		klog.InfoS("Received shutdown signal, starting graceful shutdown...", "signal", sig)
		cancel()
		sig = <-signalChan
		klog.InfoS("Received second shutdown signal, forcing shutdown...", "signal", sig)
		os.Exit(1)
	}()

	logger := klog.FromContext(ctx)

	// process-wide collaborators, built once and reused across invocations
	storageClient, err := gcs.New(ctx, gcs.Config{Endpoint: cfg.StorageEndpoint})
	if err != nil {
		logger.Error(err, "failed to create storage client")
		return
	}
	defer storageClient.Close()

	tokens, err := dataproc.DefaultTokenSource(ctx)
	if err != nil {
		logger.Error(err, "failed to create token source")
		return
	}

	dataprocClient := dataproc.New(dataproc.Config{
		Endpoint: cfg.DataprocEndpoint,
		Timeout:  cfg.RequestTimeout,
	}, tokens)

	d := dispatcher.New(params.NewLoader(storageClient), dataprocClient, cfg.FunctionName)
	h := handler.NewExecutorHandler(d)

	// observability endpoints on a side mux (background goroutine)
	go func() {
		mux := http.NewServeMux()
		common.RegisterHandler(mux, health.NewHealthApiHandler())
		common.RegisterHandler(mux, metrics.NewMetricsApiHandler())
		klog.InfoS("Starting observability server", "address", cfg.MetricsAddress)
		if err := http.ListenAndServe(cfg.MetricsAddress, mux); err != nil {
			klog.ErrorS(err, "observability server terminated")
		}
	}()

	fn := middleware.RequestMiddleware(http.HandlerFunc(h.Execute))
	if err := funcframework.RegisterHTTPFunctionContext(ctx, "/", fn.ServeHTTP); err != nil {
		logger.Error(err, "failed to register function")
		return
	}

	logger.Info("starting job executor", "port", cfg.Port, "functionName", cfg.FunctionName)
	if err := funcframework.Start(cfg.Port); err != nil {
		logger.Error(err, "failed to start function server")
		return
	}
	logger.Info("job executor is terminated")
}
