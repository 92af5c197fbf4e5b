package mcp

import (
	"context"
	"encoding/json"

	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) catalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	all := make(map[string][]catalog.Workout)
	for _, cat := range h.cat.Categories() {
		all[cat] = h.cat.Workouts(cat)
	}

	data, err := json.Marshal(all)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) latestPlanResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	doc, err := h.ds.LatestPlan(ctx, 0)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
