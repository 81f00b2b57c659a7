// Package library exposes Open Library lookups as MCP tools.
package library

import (
	"context"

	"github.com/theapemachine/mcp-server-openlibrary/core"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/openlibrary"
	"github.com/tidwall/gjson"
)

// Catalog is the set of lookups the tools delegate to. *openlibrary.Client
// satisfies it.
type Catalog interface {
	SearchBooks(ctx context.Context, req openlibrary.SearchBooksRequest) (*openlibrary.BookSearchResult, error)
	GetBook(ctx context.Context, req openlibrary.GetBookRequest) (gjson.Result, error)
	SearchAuthors(ctx context.Context, req openlibrary.SearchAuthorsRequest) (*openlibrary.AuthorSearchResult, error)
	GetAuthorWorks(ctx context.Context, req openlibrary.AuthorWorksRequest) (*openlibrary.AuthorWorksResult, error)
	GetTrending(ctx context.Context, req openlibrary.TrendingRequest) ([]openlibrary.TrendingBook, error)
}

// Provider owns the Open Library tools, keyed by tool name.
type Provider struct {
	Tools map[string]core.Tool
}

// NewProvider builds every Open Library tool on top of catalog.
func NewProvider(catalog Catalog) *Provider {
	return &Provider{
		Tools: map[string]core.Tool{
			SearchBooksToolName:    NewSearchBooksTool(catalog),
			GetBookToolName:        NewGetBookTool(catalog),
			SearchAuthorsToolName:  NewSearchAuthorsTool(catalog),
			GetAuthorWorksToolName: NewGetAuthorWorksTool(catalog),
			GetTrendingToolName:    NewGetTrendingTool(catalog),
		},
	}
}
