// Package mcp exposes the workout data to AI assistants over the Model
// Context Protocol: history, completed sessions, routines, and the
// coaching heuristics as tools, plus a couple of read-only resources.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("SmartGym", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("SmartGym workout tracker. Query training history, completed sessions, and routines; get training recommendations and weight-progression suggestions; log new sets."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetHistory, Handler: h.getHistory},
		server.ServerTool{Tool: toolGetCompletedExercises, Handler: h.getCompletedExercises},
		server.ServerTool{Tool: toolListRoutines, Handler: h.listRoutines},
		server.ServerTool{Tool: toolGetRecommendation, Handler: h.getRecommendation},
		server.ServerTool{Tool: toolSuggestWeights, Handler: h.suggestWeights},
		server.ServerTool{Tool: toolLogWorkout, Handler: h.logWorkout},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentHistory, Handler: h.recentHistory},
		server.ServerResource{Resource: resRecommendation, Handler: h.recommendation},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resRecentHistory = mcp.NewResource(
	"smartgym://recent_history",
	"Recent History",
	mcp.WithResourceDescription("The most recent workout log entries, newest first"),
	mcp.WithMIMEType("application/json"),
)

var resRecommendation = mcp.NewResource(
	"smartgym://recommendation",
	"Training Recommendation",
	mcp.WithResourceDescription("The current next-workout recommendation derived from history"),
	mcp.WithMIMEType("application/json"),
)
