package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetHistory = mcp.NewTool("get_history",
	mcp.WithDescription("Retrieve workout log entries, newest first. Each entry is one logged set with exercise, muscle group, weight, reps, and RPE."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of entries to return. Defaults to 50.")),
)

var toolGetCompletedExercises = mcp.NewTool("get_completed_exercises",
	mcp.WithDescription("Retrieve completed-session exercise records, newest first. Each record holds all sets of one exercise from one finished session."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of records to return. Defaults to 50.")),
)

var toolListRoutines = mcp.NewTool("list_routines",
	mcp.WithDescription("List saved workout routines with their exercise configurations."),
)

var toolGetRecommendation = mcp.NewTool("get_recommendation",
	mcp.WithDescription("Get the current next-workout recommendation (push/pull/legs rotation with a rest-day rule)."),
)

var toolSuggestWeights = mcp.NewTool("suggest_weights",
	mcp.WithDescription("Get a weight-progression suggestion for a muscle group based on its most recent logged set."),
	mcp.WithString("muscle", mcp.Required(), mcp.Description("Muscle group (e.g. Chest, Back, Legs)")),
)

var toolLogWorkout = mcp.NewTool("log_workout",
	mcp.WithDescription("Log a single completed set to the workout history."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name")),
	mcp.WithString("muscle", mcp.Required(), mcp.Description("Muscle group")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight used, in kg")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed")),
	mcp.WithNumber("rpe", mcp.Required(), mcp.Description("Perceived effort, 1-10")),
)

// --- Tool handlers ---

func (h *handlers) getHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 50)

	logs, err := h.ds.ListLogs(ctx)
	if err != nil {
		h.log.Error("mcp get_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}

	result, err := mcp.NewToolResultJSON(logs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCompletedExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 50)

	records, err := h.ds.ListCompletedExercises(ctx)
	if err != nil {
		h.log.Error("mcp get_completed_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listRoutines(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	routines, err := h.ds.ListRoutines(ctx)
	if err != nil {
		h.log.Error("mcp list_routines", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(routines)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getRecommendation(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, err := h.ds.Recommendation(ctx)
	if err != nil {
		h.log.Error("mcp get_recommendation", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText(rec), nil
}

func (h *handlers) suggestWeights(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	muscle, err := req.RequireString("muscle")
	if err != nil {
		return mcp.NewToolResultError("muscle parameter is required"), nil
	}

	suggestion, err := h.ds.SuggestWeights(ctx, muscle)
	if err != nil {
		h.log.Error("mcp suggest_weights", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText(suggestion), nil
}

func (h *handlers) logWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	muscle, err := req.RequireString("muscle")
	if err != nil {
		return mcp.NewToolResultError("muscle parameter is required"), nil
	}
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	rpe, err := req.RequireInt("rpe")
	if err != nil {
		return mcp.NewToolResultError("rpe parameter is required"), nil
	}

	saved, err := h.ds.LogWorkout(ctx, exercise, muscle, weight, reps, rpe)
	if err != nil {
		h.log.Error("mcp log_workout", "error", err)
		return mcp.NewToolResultError("logging failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(saved)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
