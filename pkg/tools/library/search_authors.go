package library

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-openlibrary/core"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/openlibrary"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/tools"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/tools/utils"
)

const SearchAuthorsToolName = "search_authors"

// SearchAuthorsTool searches authors by name.
type SearchAuthorsTool struct {
	*tools.BaseTool
	catalog Catalog
}

// NewSearchAuthorsTool creates the search_authors tool.
func NewSearchAuthorsTool(catalog Catalog) core.Tool {
	return &SearchAuthorsTool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			SearchAuthorsToolName,
			mcp.WithDescription("Search for authors."),
			mcp.WithString(
				"query",
				mcp.Required(),
				mcp.Description("Author name to search for"),
			),
			mcp.WithNumber(
				"limit",
				mcp.Description("Maximum number of authors to return (1-100, default 10)"),
				mcp.Min(1),
				mcp.Max(openlibrary.MaxSearchLimit),
				mcp.DefaultNumber(openlibrary.DefaultSearchLimit),
			),
		)),
		catalog: catalog,
	}
}

func (tool *SearchAuthorsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := utils.GetRequiredStringParam(request, "query")
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	limit, err := utils.GetIntParamOrDefault(request, "limit", openlibrary.DefaultSearchLimit)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	req, err := openlibrary.NewSearchAuthorsRequest(query, limit)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	res, err := tool.catalog.SearchAuthors(ctx, req)
	if err != nil {
		return tools.HandleError(err, "Failed to search authors"), nil
	}

	return tools.NewJSONResult(res)
}
