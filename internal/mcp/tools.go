package mcp

import (
	"context"
	"encoding/json"

	"github.com/DanOgh07/quantumin-solver/internal/classify"
	"github.com/DanOgh07/quantumin-solver/internal/solver"
	"github.com/DanOgh07/quantumin-solver/internal/storage"
	"github.com/DanOgh07/quantumin-solver/internal/symbolic"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerSolveTool adds the solve_expression tool to the server.
func registerSolveTool(s *server.MCPServer) {
	tool := mcp.NewTool("solve_expression",
		mcp.WithDescription("Solve a calculus problem. Accepts derivative, integral, limit, equation and plain expression syntax, e.g. 'd/dx(x^2)', 'integral(sin(x))', 'x^2 - 5x + 6 = 0'."),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("The problem text in expression syntax"),
		),
	)

	s.AddTool(tool, solveHandler)
}

func solveHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, ok := req.GetArguments()["input"].(string)
	if !ok || input == "" {
		return mcp.NewToolResultError("input is required"), nil
	}

	sol, err := solver.Solve(input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, _ := json.MarshalIndent(sol, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

// registerDifferentiateTool adds the differentiate tool to the server.
func registerDifferentiateTool(s *server.MCPServer) {
	tool := mcp.NewTool("differentiate",
		mcp.WithDescription("Differentiate an expression with respect to a variable. Returns the derivative as text."),
		mcp.WithString("expression",
			mcp.Required(),
			mcp.Description("The expression to differentiate, e.g. 'x^3 + sin(x)'"),
		),
		mcp.WithString("variable",
			mcp.Description("The variable to differentiate by (default: x)"),
		),
	)

	s.AddTool(tool, differentiateHandler)
}

func differentiateHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	exprText, ok := args["expression"].(string)
	if !ok || exprText == "" {
		return mcp.NewToolResultError("expression is required"), nil
	}
	v := "x"
	if s, ok := args["variable"].(string); ok && s != "" {
		v = s
	}

	expr, err := symbolic.Parse(exprText)
	if err != nil {
		return mcp.NewToolResultError("parse expression: " + err.Error()), nil
	}
	return mcp.NewToolResultText(symbolic.Diff(expr, v).String()), nil
}

// registerIntegrateTool adds the integrate tool to the server.
func registerIntegrateTool(s *server.MCPServer) {
	tool := mcp.NewTool("integrate",
		mcp.WithDescription("Integrate an expression with respect to a variable. Returns the antiderivative with the constant of integration."),
		mcp.WithString("expression",
			mcp.Required(),
			mcp.Description("The expression to integrate, e.g. 'x^2' or 'sin(2x)'"),
		),
		mcp.WithString("variable",
			mcp.Description("The variable to integrate by (default: x)"),
		),
	)

	s.AddTool(tool, integrateHandler)
}

func integrateHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	exprText, ok := args["expression"].(string)
	if !ok || exprText == "" {
		return mcp.NewToolResultError("expression is required"), nil
	}
	v := "x"
	if s, ok := args["variable"].(string); ok && s != "" {
		v = s
	}

	expr, err := symbolic.Parse(exprText)
	if err != nil {
		return mcp.NewToolResultError("parse expression: " + err.Error()), nil
	}
	anti, err := symbolic.Integrate(expr, v)
	if err != nil {
		return mcp.NewToolResultError("integrate: " + err.Error()), nil
	}
	return mcp.NewToolResultText(anti.String() + " + C"), nil
}

// registerClassifyTool adds the classify_expression tool to the server.
func registerClassifyTool(s *server.MCPServer) {
	tool := mcp.NewTool("classify_expression",
		mcp.WithDescription("Classify a problem into one category: Derivative, Integral, Limit, Partial Derivative, Implicit Differentiation, Quadratic, Trigonometric, Logarithmic, Equation or Expression."),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("The problem text to classify"),
		),
	)

	s.AddTool(tool, classifyHandler)
}

func classifyHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, ok := req.GetArguments()["input"].(string)
	if !ok || input == "" {
		return mcp.NewToolResultError("input is required"), nil
	}
	return mcp.NewToolResultText(string(classify.Classify(input))), nil
}

// registerSimplifyTool adds the simplify tool to the server.
func registerSimplifyTool(s *server.MCPServer) {
	tool := mcp.NewTool("simplify",
		mcp.WithDescription("Simplify an expression and return the rewrite trail as JSON."),
		mcp.WithString("expression",
			mcp.Required(),
			mcp.Description("The expression to simplify, e.g. 'sin(x)^2 + cos(x)^2'"),
		),
	)

	s.AddTool(tool, simplifyHandler)
}

func simplifyHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exprText, ok := req.GetArguments()["expression"].(string)
	if !ok || exprText == "" {
		return mcp.NewToolResultError("expression is required"), nil
	}

	expr, err := symbolic.Parse(exprText)
	if err != nil {
		return mcp.NewToolResultError("parse expression: " + err.Error()), nil
	}
	simplified, rewrites := symbolic.SimplifySteps(expr)

	payload := struct {
		Result   string             `json:"result"`
		Rewrites []symbolic.Rewrite `json:"rewrites"`
	}{Result: simplified.String(), Rewrites: rewrites}

	result, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

// registerHistoryTool adds the query_solve_history tool to the server.
func registerHistoryTool(s *server.MCPServer) {
	tool := mcp.NewTool("query_solve_history",
		mcp.WithDescription("Search past solutions by input or result text, or list the most recent ones."),
		mcp.WithString("pattern",
			mcp.Description("Search pattern to match inputs and results (e.g., 'sin', 'x^2')"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (default: 10)"),
		),
	)

	s.AddTool(tool, historyHandler)
}

func historyHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	pattern := ""
	if p, ok := args["pattern"].(string); ok {
		pattern = p
	}
	limit := 10
	if l, ok := args["limit"].(float64); ok {
		limit = int(l)
	}

	db, err := storage.InitDB()
	if err != nil {
		return mcp.NewToolResultError("failed to open database: " + err.Error()), nil
	}
	defer db.Close()

	var items []*solver.Solution
	if pattern != "" {
		items, err = storage.SearchSolutions(db, pattern)
		if len(items) > limit {
			items = items[:limit]
		}
	} else {
		items, err = storage.RecentSolutions(db, limit)
	}
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}
