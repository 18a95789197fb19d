package agent

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"barberflow/services/booking"
	"barberflow/utils"
)

// ToolContractVersion identifies the tool set exposed to the reasoning engine.
const ToolContractVersion = "v1"

// Param types accepted in tool schemas.
const (
	TypeString  = "string"
	TypeInteger = "integer"
)

// Param describes one tool parameter.
type Param struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// Args holds the raw arguments of a tool call after validation.
type Args map[string]any

// String returns a string argument, or "" when absent.
func (a Args) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// Int returns an integer argument, or 0 when absent. The model sends numbers
// as float64.
func (a Args) Int(key string) int {
	switch v := a[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// Handler executes a validated tool call. Business failures are returned as
// errors (coded booking errors where possible) and converted to ok:false
// results by Dispatch; they never cross into the reasoning engine as Go errors.
type Handler func(ctx context.Context, args Args) (map[string]any, error)

// Tool is one entry in the explicit dispatch table.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	Handle      Handler
}

// Registry is the versioned table mapping tool names to schemas and handlers.
// It is the only path by which the reasoning engine affects persisted state.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Duplicate names panic at wiring time.
func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Name]; exists {
		panic(fmt.Sprintf("tool %q registered twice", t.Name))
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Dispatch validates and runs a tool call, converting every failure into a
// flat ok:false result the reasoning engine can branch on. The engine is an
// untrusted caller: unknown tools and malformed arguments are rejected before
// any side effect.
func (r *Registry) Dispatch(ctx context.Context, name string, raw map[string]any) map[string]any {
	logger := utils.GetLogger()

	tool, ok := r.tools[name]
	if !ok {
		return map[string]any{
			"ok":     false,
			"code":   booking.CodeValidation,
			"reason": fmt.Sprintf("unknown tool %q", name),
		}
	}

	args := Args{}
	for _, p := range tool.Params {
		v, present := raw[p.Name]
		if !present || v == nil {
			if p.Required {
				return map[string]any{
					"ok":     false,
					"code":   booking.CodeValidation,
					"reason": fmt.Sprintf("missing required parameter %q", p.Name),
				}
			}
			continue
		}
		switch p.Type {
		case TypeString:
			s, isStr := v.(string)
			if !isStr {
				return map[string]any{
					"ok":     false,
					"code":   booking.CodeValidation,
					"reason": fmt.Sprintf("parameter %q must be a string", p.Name),
				}
			}
			if p.Required && s == "" {
				return map[string]any{
					"ok":     false,
					"code":   booking.CodeValidation,
					"reason": fmt.Sprintf("parameter %q must not be empty", p.Name),
				}
			}
			args[p.Name] = s
		case TypeInteger:
			switch v.(type) {
			case float64, int:
				args[p.Name] = v
			default:
				return map[string]any{
					"ok":     false,
					"code":   booking.CodeValidation,
					"reason": fmt.Sprintf("parameter %q must be an integer", p.Name),
				}
			}
		default:
			args[p.Name] = v
		}
	}

	result, err := tool.Handle(ctx, args)
	if err != nil {
		code := booking.CodeOf(err)
		if code == "" {
			// Unexpected internal error: log detail, surface a generic failure.
			logger.Error("tool call failed", zap.String("tool", name), zap.Error(err))
			return map[string]any{
				"ok":     false,
				"code":   "internal_error",
				"reason": "An unexpected error occurred. Please try again.",
			}
		}
		reason := err.Error()
		if be, isCoded := err.(*booking.Error); isCoded {
			reason = be.Message
		}
		return map[string]any{"ok": false, "code": code, "reason": reason}
	}

	if result == nil {
		result = map[string]any{}
	}
	if _, has := result["ok"]; !has {
		result["ok"] = true
	}
	return result
}

// Declarations converts the registry into genai function declarations.
func (r *Registry) Declarations() []*genai.FunctionDeclaration {
	var decls []*genai.FunctionDeclaration
	for _, name := range r.order {
		tool := r.tools[name]
		props := make(map[string]*genai.Schema, len(tool.Params))
		var required []string
		for _, p := range tool.Params {
			schemaType := genai.TypeString
			if p.Type == TypeInteger {
				schemaType = genai.TypeInteger
			}
			props[p.Name] = &genai.Schema{Type: schemaType, Description: p.Description}
			if p.Required {
				required = append(required, p.Name)
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
				Required:   required,
			},
		})
	}
	return decls
}
