package openlibrary

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Client performs the Open Library lookups exposed as tools. Each method
// issues exactly one request through the Getter.
type Client struct {
	getter  Getter
	baseURL string
}

// NewClient creates a Client that resolves paths against baseURL.
func NewClient(getter Getter, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		getter:  getter,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// SearchBooks runs a book search and projects the matching documents.
func (c *Client) SearchBooks(ctx context.Context, req SearchBooksRequest) (*BookSearchResult, error) {
	doc, err := c.getter.Fetch(ctx, c.endpoint("/search.json", req.Values()))
	if err != nil {
		return nil, err
	}
	return ProjectBookSearch(doc), nil
}

// GetBook returns the work, edition or ISBN record unmodified.
func (c *Client) GetBook(ctx context.Context, req GetBookRequest) (gjson.Result, error) {
	return c.getter.Fetch(ctx, c.endpoint(req.Path(), nil))
}

// SearchAuthors runs an author search and projects the matching documents.
func (c *Client) SearchAuthors(ctx context.Context, req SearchAuthorsRequest) (*AuthorSearchResult, error) {
	doc, err := c.getter.Fetch(ctx, c.endpoint("/search/authors.json", req.Values()))
	if err != nil {
		return nil, err
	}
	return ProjectAuthorSearch(doc), nil
}

// GetAuthorWorks lists an author's works.
func (c *Client) GetAuthorWorks(ctx context.Context, req AuthorWorksRequest) (*AuthorWorksResult, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(req.Limit))

	doc, err := c.getter.Fetch(ctx, c.endpoint(req.Path(), query))
	if err != nil {
		return nil, err
	}
	return ProjectAuthorWorks(doc), nil
}

// GetTrending lists trending works for the requested period.
func (c *Client) GetTrending(ctx context.Context, req TrendingRequest) ([]TrendingBook, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(req.Limit))

	doc, err := c.getter.Fetch(ctx, c.endpoint(req.Path(), query))
	if err != nil {
		return nil, err
	}
	return ProjectTrending(doc), nil
}
