package library

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-openlibrary/core"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/openlibrary"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/tools"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/tools/utils"
)

const GetAuthorWorksToolName = "get_author_works"

// GetAuthorWorksTool lists the works of one author.
type GetAuthorWorksTool struct {
	*tools.BaseTool
	catalog Catalog
}

// NewGetAuthorWorksTool creates the get_author_works tool.
func NewGetAuthorWorksTool(catalog Catalog) core.Tool {
	return &GetAuthorWorksTool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			GetAuthorWorksToolName,
			mcp.WithDescription("Get works by an author."),
			mcp.WithString(
				"authorKey",
				mcp.Required(),
				mcp.Description("Author key (e.g. 'OL23919A')"),
			),
			mcp.WithNumber(
				"limit",
				mcp.Description("Maximum number of works to return (1-100, default 20)"),
				mcp.Min(1),
				mcp.Max(openlibrary.MaxSearchLimit),
				mcp.DefaultNumber(openlibrary.DefaultWorksLimit),
			),
		)),
		catalog: catalog,
	}
}

func (tool *GetAuthorWorksTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	authorKey, err := utils.GetRequiredStringParam(request, "authorKey")
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	limit, err := utils.GetIntParamOrDefault(request, "limit", openlibrary.DefaultWorksLimit)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	req, err := openlibrary.NewAuthorWorksRequest(authorKey, limit)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	res, err := tool.catalog.GetAuthorWorks(ctx, req)
	if err != nil {
		return tools.HandleError(err, "Failed to get author works"), nil
	}

	return tools.NewJSONResult(res)
}
