package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// recentHistoryLimit caps the smartgym://recent_history resource so it
// stays digestible as assistant context.
const recentHistoryLimit = 20

func (h *handlers) recentHistory(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	logs, err := h.ds.ListLogs(ctx)
	if err != nil {
		return nil, err
	}
	if len(logs) > recentHistoryLimit {
		logs = logs[:recentHistoryLimit]
	}

	data, err := json.Marshal(logs)
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

func (h *handlers) recommendation(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	rec, err := h.ds.Recommendation(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(map[string]string{"recommendation": rec})
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
