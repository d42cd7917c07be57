// Package service wires the citizen-services tools into a ready MCP
// server.
//
// It is the recommended entry point: it builds the reference-data store,
// both resolvers, and a registry with the seva, yojana, and validate
// tools registered, and can produce a fully middlewared HTTP handler.
package service

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/nagrikmitra/mitra/auth"
	"github.com/nagrikmitra/mitra/refdata"
	"github.com/nagrikmitra/mitra/registry"
	"github.com/nagrikmitra/mitra/seva"
	"github.com/nagrikmitra/mitra/yojana"
)

// Defaults applied by New when the corresponding option is zero.
const (
	DefaultDataDir       = "data"
	DefaultServerName    = "nagrik-mitra"
	DefaultServerVersion = "1.0.0"
)

// Options configures a Service.
type Options struct {
	// DataDir is the reference-data directory. Default: "data".
	DataDir string

	// Identity is the fixed string returned by the validate tool.
	Identity string

	// Verifier guards the HTTP handler. If nil, Handler serves without
	// authentication (tests, stdio deployments behind their own guard).
	Verifier auth.Verifier

	// Logger receives structured logs. Nil defaults to a no-op logger.
	Logger *zap.Logger

	// Registerer receives the tool-call collectors. If nil, metrics are
	// registered on the default prometheus registerer.
	Registerer prometheus.Registerer

	// ServerName and ServerVersion appear in the initialize response.
	ServerName    string
	ServerVersion string
}

// Service is the assembled citizen-services MCP server.
type Service struct {
	store    *refdata.Store
	registry *registry.Registry
	verifier auth.Verifier
	logger   *zap.Logger
}

// New creates a Service with the given options.
func New(opts Options) (*Service, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	serverName := opts.ServerName
	if serverName == "" {
		serverName = DefaultServerName
	}
	serverVersion := opts.ServerVersion
	if serverVersion == "" {
		serverVersion = DefaultServerVersion
	}

	store := refdata.NewStore(refdata.NewLoader(dataDir, logger))
	serviceResolver := seva.New(store, logger)
	schemeResolver := yojana.New(store, logger)

	reg := registry.New(registry.Config{
		ServerInfo: registry.ServerInfo{Name: serverName, Version: serverVersion},
		Logger:     logger,
		Metrics:    registry.NewMetrics(opts.Registerer),
	})

	err := reg.RegisterFunc(
		"seva",
		"Provides step-by-step guides for various Indian government services.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"service_name": map[string]any{
					"type":        "string",
					"description": `The name of the government service you need information about. e.g., "Passport", "PAN Card"`,
				},
			},
			"required": []string{"service_name"},
		},
		func(ctx context.Context, args map[string]any) (string, error) {
			serviceName, ok := args["service_name"].(string)
			if !ok || serviceName == "" {
				return "❌ Please provide a service name. e.g., \"Passport\", \"PAN Card\".", nil
			}
			return serviceResolver.Resolve(serviceName), nil
		},
	)
	if err != nil {
		return nil, err
	}

	err = reg.RegisterFunc(
		"yojana",
		"Helps you find and check eligibility for Indian government schemes.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": `Category or keywords to search schemes for. e.g., "Education", "farmer pension". Leave empty to list categories.`,
				},
			},
		},
		func(ctx context.Context, args map[string]any) (string, error) {
			query, _ := args["query"].(string)
			return schemeResolver.Resolve(query), nil
		},
	)
	if err != nil {
		return nil, err
	}

	identity := opts.Identity
	err = reg.RegisterFunc(
		"validate",
		"Validate the MCP server connection.",
		map[string]any{"type": "object"},
		func(ctx context.Context, args map[string]any) (string, error) {
			return identity, nil
		},
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		store:    store,
		registry: reg,
		verifier: opts.Verifier,
		logger:   logger,
	}, nil
}

// Registry exposes the underlying tool registry.
func (s *Service) Registry() *registry.Registry {
	return s.registry
}

// Stats forces the reference tables to load and reports their sizes and
// fingerprints.
func (s *Service) Stats() refdata.Stats {
	return s.store.Stats()
}

// Handler returns the HTTP transport wrapped with request logging and,
// when a verifier is configured, bearer authentication.
func (s *Service) Handler() http.Handler {
	handler := registry.ServeHTTP(s.registry)
	if s.verifier != nil {
		handler = registry.WithAuth(s.verifier, s.logger, handler)
	}
	return registry.WithRequestLogging(s.logger, handler)
}
