package mcp

import (
	"log/slog"

	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, cat *catalog.Catalog, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("RunPlans", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("RunPlans training plan server. Generate periodized race training plans, look up pace zones and workouts, and apply race-day or injury-recovery adjustments to stored plans."),
	)

	h := &handlers{ds: ds, cat: cat, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolGetPlan, Handler: h.getPlan},
		server.ServerTool{Tool: toolListPlans, Handler: h.listPlans},
		server.ServerTool{Tool: toolGetPaceZones, Handler: h.getPaceZones},
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolApplyRaceDay, Handler: h.applyRaceDay},
		server.ServerTool{Tool: toolApplyInjuryRecovery, Handler: h.applyInjuryRecovery},
		server.ServerTool{Tool: toolRevertPlan, Handler: h.revertPlan},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.catalogResource},
		server.ServerResource{Resource: resLatestPlan, Handler: h.latestPlanResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	cat *catalog.Catalog
	log *slog.Logger
}

// --- Resource definitions ---

var resCatalog = mcp.NewResource(
	"runplans://catalog",
	"Workout Catalog",
	mcp.WithResourceDescription("All workout descriptors by category: running quality sessions and cross-training equivalents"),
	mcp.WithMIMEType("application/json"),
)

var resLatestPlan = mcp.NewResource(
	"runplans://latest_plan",
	"Latest Plan",
	mcp.WithResourceDescription("The most recently stored training plan revision"),
	mcp.WithMIMEType("application/json"),
)
