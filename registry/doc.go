// Package registry provides the MCP serving layer for the citizen-services
// tools.
//
// Registry holds named tools whose handlers render plain text answers. It
// dispatches the MCP protocol methods (initialize, tools/list, tools/call)
// and wraps handler output into MCP text content.
//
// Features:
//   - Tool registration with string-returning handlers
//   - MCP protocol handlers (initialize, tools/list, tools/call)
//   - Multiple transports (stdio, HTTP, SSE)
//   - Bearer-token authentication and request logging middleware for HTTP
//   - Prometheus call counters and durations
//
// Example usage:
//
//	reg := registry.New(registry.Config{
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "nagrik-mitra",
//	        Version: "1.0.0",
//	    },
//	})
//
//	reg.RegisterFunc(
//	    "seva",
//	    "Step-by-step guides for government services",
//	    map[string]any{
//	        "type": "object",
//	        "properties": map[string]any{
//	            "service_name": map[string]any{"type": "string"},
//	        },
//	        "required": []string{"service_name"},
//	    },
//	    func(ctx context.Context, args map[string]any) (string, error) {
//	        return resolver.Resolve(args["service_name"].(string)), nil
//	    },
//	)
//
//	http.ListenAndServe(":8086", registry.WithAuth(verifier, logger, registry.ServeHTTP(reg)))
//
// Every tool call is an independent read-only operation; Registry is safe
// for concurrent use once tools are registered.
package registry
