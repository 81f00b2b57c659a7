package library

import (
	"context"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/openlibrary"
)

func TestSearchBooksTool(t *testing.T) {
	Convey("Given a search_books tool", t, func() {
		catalog := &MockCatalog{}
		tool := NewSearchBooksTool(catalog)
		ctx := context.Background()

		Convey("When limit is omitted", func() {
			expected := openlibrary.SearchBooksRequest{Query: "dune", Limit: 10}
			catalog.On("SearchBooks", mock.Anything, expected).Return(&openlibrary.BookSearchResult{
				Total: 1,
				Books: []openlibrary.BookSummary{{
					Title:    "Dune",
					Key:      "/works/OL893415W",
					CoverURL: openlibrary.CoverURL(12345),
				}},
			}, nil)

			result, err := tool.Handler(ctx, newMockRequest(SearchBooksToolName, map[string]any{"query": "dune"}))

			Convey("It should search with the default limit and return pretty JSON", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeFalse)
				text := resultText(result)
				So(text, ShouldContainSubstring, "\n  \"total\": 1,")
				So(text, ShouldContainSubstring, `"coverUrl": "https://covers.openlibrary.org/b/id/12345-M.jpg"`)
				catalog.AssertExpectations(t)
			})
		})

		Convey("When a sort order and limit are supplied", func() {
			expected := openlibrary.SearchBooksRequest{Query: "dune", Limit: 3, Sort: "new"}
			catalog.On("SearchBooks", mock.Anything, expected).Return(&openlibrary.BookSearchResult{Books: []openlibrary.BookSummary{}}, nil)

			result, err := tool.Handler(ctx, newMockRequest(SearchBooksToolName, map[string]any{
				"query": "dune",
				"limit": float64(3),
				"sort":  "new",
			}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeFalse)
			catalog.AssertExpectations(t)
		})

		Convey("When limit exceeds 100", func() {
			result, err := tool.Handler(ctx, newMockRequest(SearchBooksToolName, map[string]any{
				"query": "dune",
				"limit": float64(150),
			}))

			Convey("It should fail validation before any lookup", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeTrue)
				So(resultText(result), ShouldContainSubstring, "limit")
				catalog.AssertNotCalled(t, "SearchBooks", mock.Anything, mock.Anything)
			})
		})

		Convey("When limit is fractional", func() {
			result, _ := tool.Handler(ctx, newMockRequest(SearchBooksToolName, map[string]any{
				"query": "dune",
				"limit": 2.5,
			}))

			So(result.IsError, ShouldBeTrue)
			catalog.AssertNotCalled(t, "SearchBooks", mock.Anything, mock.Anything)
		})

		Convey("When the sort order is unknown", func() {
			result, _ := tool.Handler(ctx, newMockRequest(SearchBooksToolName, map[string]any{
				"query": "dune",
				"sort":  "popular",
			}))

			So(result.IsError, ShouldBeTrue)
			So(resultText(result), ShouldContainSubstring, "sort")
			catalog.AssertNotCalled(t, "SearchBooks", mock.Anything, mock.Anything)
		})

		Convey("When query is missing", func() {
			result, _ := tool.Handler(ctx, newMockRequest(SearchBooksToolName, map[string]any{}))

			So(result.IsError, ShouldBeTrue)
			So(resultText(result), ShouldContainSubstring, "query")
		})

		Convey("When Open Library answers 404", func() {
			catalog.On("SearchBooks", mock.Anything, mock.Anything).
				Return(nil, &openlibrary.RemoteError{StatusCode: http.StatusNotFound, URL: "https://openlibrary.org/search.json"})

			result, err := tool.Handler(ctx, newMockRequest(SearchBooksToolName, map[string]any{"query": "dune"}))

			Convey("It should return an error result carrying the status", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeTrue)
				text := resultText(result)
				So(text, ShouldContainSubstring, "404")
				So(text, ShouldNotContainSubstring, "total")
			})
		})
	})
}
