// Package auth implements the optional shared-secret gate in front of the
// MCP tools. When no secret is configured the server runs in public mode and
// the gate is a no-op.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmarchand/pappers-mcp/internal/common"
)

type contextKey int

const callerTokenKey contextKey = iota

// WithCallerToken stores the caller-supplied token in the request context.
func WithCallerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, callerTokenKey, token)
}

// CallerTokenFromContext retrieves the caller token from context, or empty
// string if absent.
func CallerTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(callerTokenKey).(string)
	return token
}

// FromHTTPRequest is an HTTP context function for the streamable transport.
// It copies the caller token from the Authorization bearer header (or the
// X-MCP-Token fallback) into the request context so Gate.Check can see it.
func FromHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return WithCallerToken(ctx, strings.TrimPrefix(h, "Bearer "))
	}
	if t := r.Header.Get("X-MCP-Token"); t != "" {
		return WithCallerToken(ctx, t)
	}
	return ctx
}

// Gate compares caller-supplied tokens against a configured shared secret.
// A plain string comparison, no hashing or expiry.
type Gate struct {
	token string
}

// NewGate creates a gate from config. An empty token disables the check.
func NewGate(cfg common.AuthConfig) *Gate {
	return &Gate{token: cfg.Token}
}

// Enabled reports whether a secret is configured.
func (g *Gate) Enabled() bool {
	return g.token != ""
}

// Check validates the caller token in ctx. Returns an empty string when the
// call may proceed, otherwise a message describing the failure.
func (g *Gate) Check(ctx context.Context) string {
	if !g.Enabled() {
		return ""
	}
	supplied := CallerTokenFromContext(ctx)
	if supplied == "" {
		return "Authentication required: no token supplied"
	}
	if supplied != g.token {
		return "Authentication failed: invalid token"
	}
	return ""
}

// Middleware wraps every tool handler with the gate check. Failures are
// returned as tool error results before any tool logic runs.
func Middleware(gate *Gate, logger *common.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if msg := gate.Check(ctx); msg != "" {
				logger.Warn().Str("tool", request.Params.Name).Msg("Tool call rejected by auth gate")
				return mcp.NewToolResultError(msg), nil
			}
			return next(ctx, request)
		}
	}
}
