package tracing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"contrib.go.opencensus.io/exporter/aws"
	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	datadog "github.com/DataDog/opencensus-go-exporter-datadog"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/Notifuse/sitebuilder/config"
	"github.com/Notifuse/sitebuilder/pkg/logger"
)

// Provider owns the exporters started by Init. Shutdown flushes them and
// stops the metrics endpoint.
type Provider struct {
	logger    logger.Logger
	flushers  []func()
	closers   []func(context.Context) error
	exporters []string
}

// Exporters lists the trace and metrics exporters that were started
func (p *Provider) Exporters() []string {
	return p.exporters
}

// Shutdown flushes buffered spans and metrics and stops the Prometheus server
func (p *Provider) Shutdown(ctx context.Context) error {
	for _, flush := range p.flushers {
		flush()
	}
	var errs []error
	for _, closeFn := range p.closers {
		if err := closeFn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Init configures OpenCensus from cfg. With tracing disabled it returns an
// empty Provider.
func Init(cfg *config.TracingConfig, log logger.Logger) (*Provider, error) {
	p := &Provider{logger: log}
	if !cfg.Enabled {
		return p, nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(cfg.SamplingProbability),
	})

	if err := p.initTraceExporter(cfg); err != nil {
		return nil, err
	}
	if err := p.initMetricsExporters(cfg); err != nil {
		return nil, err
	}

	if err := view.Register(ochttp.DefaultServerViews...); err != nil {
		return nil, fmt.Errorf("failed to register HTTP server views: %w", err)
	}
	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return nil, fmt.Errorf("failed to register database views: %w", err)
	}
	if err := RegisterStyleViews(); err != nil {
		return nil, err
	}

	p.logger.WithFields(map[string]interface{}{
		"trace_exporter":   cfg.TraceExporter,
		"metrics_exporter": cfg.MetricsExporter,
	}).Info("OpenCensus initialized")
	return p, nil
}

func (p *Provider) initTraceExporter(cfg *config.TracingConfig) error {
	var (
		exporter trace.Exporter
		err      error
	)
	switch cfg.TraceExporter {
	case "none", "":
		return nil
	case "jaeger":
		exporter, err = newJaegerExporter(cfg)
	case "zipkin":
		exporter, err = newZipkinExporter(cfg)
	case "stackdriver":
		exporter, err = newStackdriverExporter(cfg, p.logger)
	case "datadog":
		exporter, err = newDatadogExporter(cfg, p.logger)
	case "xray":
		exporter, err = newXRayExporter(cfg)
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}
	if err != nil {
		return err
	}

	trace.RegisterExporter(exporter)
	if f, ok := exporter.(interface{ Flush() }); ok {
		p.flushers = append(p.flushers, f.Flush)
	}
	p.exporters = append(p.exporters, "trace:"+cfg.TraceExporter)
	p.logger.WithField("exporter", cfg.TraceExporter).Info("Trace exporter initialized")
	return nil
}

func (p *Provider) initMetricsExporters(cfg *config.TracingConfig) error {
	for _, name := range strings.Split(cfg.MetricsExporter, ",") {
		name = strings.TrimSpace(name)
		if name == "" || name == "none" {
			continue
		}

		var (
			exporter view.Exporter
			err      error
		)
		switch name {
		case "prometheus":
			exporter, err = p.startPrometheus(cfg)
		case "stackdriver":
			exporter, err = newStackdriverExporter(cfg, p.logger)
		case "datadog":
			exporter, err = newDatadogExporter(cfg, p.logger)
		default:
			return fmt.Errorf("unsupported metrics exporter: %s", name)
		}
		if err != nil {
			return fmt.Errorf("failed to initialize %s metrics exporter: %w", name, err)
		}

		view.RegisterExporter(exporter)
		p.exporters = append(p.exporters, "metrics:"+name)
		p.logger.WithField("exporter", name).Info("Metrics exporter initialized")
	}
	return nil
}

func newJaegerExporter(cfg *config.TracingConfig) (*jaeger.Exporter, error) {
	if cfg.JaegerEndpoint == "" {
		return nil, fmt.Errorf("Jaeger endpoint is required for Jaeger exporter")
	}
	je, err := jaeger.NewExporter(jaeger.Options{
		CollectorEndpoint: cfg.JaegerEndpoint,
		ServiceName:       cfg.ServiceName,
		Process: jaeger.Process{
			ServiceName: cfg.ServiceName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Jaeger exporter: %w", err)
	}
	return je, nil
}

func newZipkinExporter(cfg *config.TracingConfig) (trace.Exporter, error) {
	if cfg.ZipkinEndpoint == "" {
		return nil, fmt.Errorf("Zipkin endpoint is required for Zipkin exporter")
	}
	reporter := zipkinhttp.NewReporter(cfg.ZipkinEndpoint)
	return zipkin.NewExporter(reporter, nil), nil
}

func newStackdriverExporter(cfg *config.TracingConfig, log logger.Logger) (*stackdriver.Exporter, error) {
	if cfg.StackdriverProjectID == "" {
		return nil, fmt.Errorf("Stackdriver project ID is required for Stackdriver exporter")
	}
	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.StackdriverProjectID,
		MetricPrefix: cfg.ServiceName,
		OnError: func(err error) {
			log.WithField("error", err.Error()).Warn("Stackdriver exporter error")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Stackdriver exporter: %w", err)
	}
	return se, nil
}

func datadogAddress(cfg *config.TracingConfig) string {
	if cfg.DatadogAgentAddress != "" {
		return cfg.DatadogAgentAddress
	}
	return cfg.AgentEndpoint
}

func newDatadogExporter(cfg *config.TracingConfig, log logger.Logger) (*datadog.Exporter, error) {
	agentAddr := datadogAddress(cfg)
	if agentAddr == "" {
		return nil, fmt.Errorf("Datadog agent address is required for Datadog exporter")
	}
	options := datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: agentAddr,
		StatsAddr: agentAddr,
		OnError: func(err error) {
			log.WithField("error", err.Error()).Warn("Datadog exporter error")
		},
	}
	if cfg.DatadogAPIKey != "" {
		options.GlobalTags = map[string]interface{}{
			"api_key": cfg.DatadogAPIKey,
		}
	}
	exporter, err := datadog.NewExporter(options)
	if err != nil {
		return nil, fmt.Errorf("failed to create Datadog exporter: %w", err)
	}
	return exporter, nil
}

func newXRayExporter(cfg *config.TracingConfig) (*aws.Exporter, error) {
	if cfg.XRayRegion == "" {
		return nil, fmt.Errorf("AWS region is required for X-Ray exporter")
	}
	exporter, err := aws.NewExporter(
		aws.WithRegion(cfg.XRayRegion),
		aws.WithVersion("latest"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS X-Ray exporter: %w", err)
	}
	return exporter, nil
}

// startPrometheus creates the exporter and, when a port is configured,
// serves it on /metrics until Shutdown.
func (p *Provider) startPrometheus(cfg *config.TracingConfig) (*prometheus.Exporter, error) {
	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: strings.ReplaceAll(cfg.ServiceName, "-", "_"),
		OnError: func(err error) {
			p.logger.WithField("error", err.Error()).Warn("Prometheus exporter error")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	if cfg.PrometheusPort <= 0 {
		p.logger.Info("Prometheus metrics server not started (port not configured)")
		return pe, nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", pe)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.PrometheusPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		p.logger.WithField("port", cfg.PrometheusPort).Info("Starting Prometheus metrics server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			p.logger.WithField("error", err.Error()).Error("Prometheus metrics server failed")
		}
	}()
	p.closers = append(p.closers, server.Shutdown)
	return pe, nil
}
