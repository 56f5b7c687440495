package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Handler executes one tool call. Arguments arrive as the raw JSON object
// produced by the model; the returned value must be JSON-marshalable.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Tool binds a stable name and a structured description to a typed handler.
// The parameters schema is what the host runtime hands to the model when
// building invocation requests.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
	Handler     Handler        `json:"-"`
}

// ErrUnknownTool is returned by Invoke for names that were never registered.
var ErrUnknownTool = errors.New("unknown tool")

// Registry maps tool names to their definitions. All validation happens at
// registration time so a malformed tool is a startup failure, not a
// mid-conversation one.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("register tool: name is required")
	}
	if t.Description == "" {
		return fmt.Errorf("register tool %q: description is required", t.Name)
	}
	if t.Handler == nil {
		return fmt.Errorf("register tool %q: handler is required", t.Name)
	}
	if t.Parameters != nil {
		if typ, _ := t.Parameters["type"].(string); typ != "object" {
			return fmt.Errorf("register tool %q: parameters schema must be an object schema", t.Name)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("register tool %q: already registered", t.Name)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Invoke dispatches a tool call by name.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	r.mu.RLock()
	t, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t.Handler(ctx, args)
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}
