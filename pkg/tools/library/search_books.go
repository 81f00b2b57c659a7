package library

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-openlibrary/core"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/openlibrary"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/tools"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/tools/utils"
)

const SearchBooksToolName = "search_books"

// SearchBooksTool searches books by free text.
type SearchBooksTool struct {
	*tools.BaseTool
	catalog Catalog
}

// NewSearchBooksTool creates the search_books tool.
func NewSearchBooksTool(catalog Catalog) core.Tool {
	return &SearchBooksTool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			SearchBooksToolName,
			mcp.WithDescription("Search for books."),
			mcp.WithString(
				"query",
				mcp.Required(),
				mcp.Description("Free-text search, e.g. a title, author or subject"),
			),
			mcp.WithNumber(
				"limit",
				mcp.Description("Maximum number of books to return (1-100, default 10)"),
				mcp.Min(1),
				mcp.Max(openlibrary.MaxSearchLimit),
				mcp.DefaultNumber(openlibrary.DefaultSearchLimit),
			),
			mcp.WithString(
				"sort",
				mcp.Description("Sort order; relevance when omitted"),
				mcp.Enum(openlibrary.SortOrders...),
			),
		)),
		catalog: catalog,
	}
}

func (tool *SearchBooksTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := utils.GetRequiredStringParam(request, "query")
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	limit, err := utils.GetIntParamOrDefault(request, "limit", openlibrary.DefaultSearchLimit)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	sort, err := utils.GetStringParamOrDefault(request, "sort", "")
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	req, err := openlibrary.NewSearchBooksRequest(query, limit, sort)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	res, err := tool.catalog.SearchBooks(ctx, req)
	if err != nil {
		return tools.HandleError(err, "Failed to search books"), nil
	}

	return tools.NewJSONResult(res)
}
