package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// ToolHandler answers a tool call. It receives a context for cancellation
// and the arguments parsed from the MCP request, and returns the rendered
// text answer. A handler error or panic never reaches the caller; the
// registry converts both into the fixed apology string.
type ToolHandler func(ctx context.Context, args map[string]any) (string, error)

// Config configures a Registry.
type Config struct {
	ServerInfo ServerInfo
	// Logger receives per-call logs. Nil defaults to a no-op logger.
	Logger *zap.Logger
	// Metrics receives call counters and durations. Nil disables metrics.
	Metrics *Metrics
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

type registeredTool struct {
	tool    mcp.Tool
	handler ToolHandler
}

// Registry is an MCP tool registry dispatching named text-rendering tools.
type Registry struct {
	mu     sync.RWMutex
	config Config
	logger *zap.Logger

	tools  []registeredTool // registration order, drives tools/list
	byName map[string]int
}

// New creates a new Registry with the given config.
func New(cfg Config) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		config: cfg,
		logger: logger,
		byName: make(map[string]int),
	}
}

// Register registers a tool with its handler.
func (r *Registry) Register(tool mcp.Tool, handler ToolHandler) error {
	if strings.TrimSpace(tool.Name) == "" {
		return fmt.Errorf("%w: tool name is required", ErrInvalidRequest)
	}
	if handler == nil {
		return fmt.Errorf("%w: handler is required", ErrInvalidRequest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name)
	}
	r.byName[tool.Name] = len(r.tools)
	r.tools = append(r.tools, registeredTool{tool: tool, handler: handler})
	return nil
}

// RegisterFunc is a convenience for inline tool definition.
func (r *Registry) RegisterFunc(name, description string, inputSchema map[string]any, handler ToolHandler) error {
	return r.Register(mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema,
	}, handler)
}

// Tools returns all registered tools in registration order.
func (r *Registry) Tools() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]mcp.Tool, 0, len(r.tools))
	for _, registered := range r.tools {
		tools = append(tools, registered.tool)
	}
	return tools
}

// Execute runs a tool by name with the given arguments. It returns
// ErrToolNotFound for unknown tools; any failure inside a known tool's
// handler is logged and converted to the apology string.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	r.mu.RLock()
	idx, ok := r.byName[name]
	var registered registeredTool
	if ok {
		registered = r.tools[idx]
	}
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	start := time.Now()
	result, status := r.invoke(ctx, registered, args)
	if r.config.Metrics != nil {
		r.config.Metrics.observe(name, status, time.Since(start))
	}
	return result, nil
}

// invoke calls the handler with panic recovery.
func (r *Registry) invoke(ctx context.Context, registered registeredTool, args map[string]any) (result, status string) {
	name := registered.tool.Name

	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.Error("tool handler panicked",
				zap.String("tool", name), zap.Any("panic", recovered))
			result, status = ApologyMessage, StatusError
		}
	}()

	r.logger.Info("tool call started", zap.String("tool", name))
	out, err := registered.handler(ctx, args)
	if err != nil {
		r.logger.Error("tool call failed", zap.String("tool", name), zap.Error(err))
		return ApologyMessage, StatusError
	}

	r.logger.Info("tool call completed", zap.String("tool", name))
	return out, StatusOK
}
