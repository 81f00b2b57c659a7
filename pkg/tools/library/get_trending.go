package library

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-openlibrary/core"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/openlibrary"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/tools"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/tools/utils"
)

const GetTrendingToolName = "get_trending"

// GetTrendingTool lists currently popular works.
type GetTrendingTool struct {
	*tools.BaseTool
	catalog Catalog
}

// NewGetTrendingTool creates the get_trending tool.
func NewGetTrendingTool(catalog Catalog) core.Tool {
	return &GetTrendingTool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			GetTrendingToolName,
			mcp.WithDescription("Get trending/popular books."),
			mcp.WithString(
				"type",
				mcp.Description("Trending period (default daily)"),
				mcp.Enum(openlibrary.TrendingPeriods...),
				mcp.DefaultString(openlibrary.DefaultTrendingPeriod),
			),
			mcp.WithNumber(
				"limit",
				mcp.Description("Maximum number of books to return (1-50, default 10)"),
				mcp.Min(1),
				mcp.Max(openlibrary.MaxTrendingLimit),
				mcp.DefaultNumber(openlibrary.DefaultTrendingLimit),
			),
		)),
		catalog: catalog,
	}
}

func (tool *GetTrendingTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	period, err := utils.GetStringParamOrDefault(request, "type", openlibrary.DefaultTrendingPeriod)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	limit, err := utils.GetIntParamOrDefault(request, "limit", openlibrary.DefaultTrendingLimit)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	req, err := openlibrary.NewTrendingRequest(period, limit)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	books, err := tool.catalog.GetTrending(ctx, req)
	if err != nil {
		return tools.HandleError(err, "Failed to get trending books"), nil
	}

	return tools.NewJSONResult(books)
}
