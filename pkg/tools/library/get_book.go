package library

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-openlibrary/core"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/openlibrary"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/tools"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/tools/utils"
)

const GetBookToolName = "get_book"

// GetBookTool returns a work, edition or ISBN record as Open Library serves it.
type GetBookTool struct {
	*tools.BaseTool
	catalog Catalog
}

// NewGetBookTool creates the get_book tool.
func NewGetBookTool(catalog Catalog) core.Tool {
	return &GetBookTool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			GetBookToolName,
			mcp.WithDescription("Get book details by Open Library key or ISBN."),
			mcp.WithString(
				"key",
				mcp.Required(),
				mcp.Description("OL key (e.g. '/works/OL45883W') or ISBN"),
			),
		)),
		catalog: catalog,
	}
}

func (tool *GetBookTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := utils.GetRequiredStringParam(request, "key")
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	req, err := openlibrary.NewGetBookRequest(key)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	doc, err := tool.catalog.GetBook(ctx, req)
	if err != nil {
		return tools.HandleError(err, "Failed to get book"), nil
	}

	return tools.NewRawJSONResult(doc.Raw), nil
}
