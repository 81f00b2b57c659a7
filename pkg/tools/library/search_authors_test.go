package library

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/openlibrary"
)

func TestSearchAuthorsTool(t *testing.T) {
	Convey("Given a search_authors tool", t, func() {
		catalog := &MockCatalog{}
		tool := NewSearchAuthorsTool(catalog)
		ctx := context.Background()

		Convey("When an author has no birth date", func() {
			catalog.On("SearchAuthors", mock.Anything, openlibrary.SearchAuthorsRequest{Query: "homer", Limit: 10}).
				Return(&openlibrary.AuthorSearchResult{
					Total:   1,
					Authors: []openlibrary.AuthorSummary{{Name: "Homer", Key: "OL1A", TopWork: strPtr("The Odyssey")}},
				}, nil)

			result, err := tool.Handler(ctx, newMockRequest(SearchAuthorsToolName, map[string]any{"query": "homer"}))

			Convey("It should succeed and leave the field out", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeFalse)
				text := resultText(result)
				So(text, ShouldContainSubstring, `"topWork": "The Odyssey"`)
				So(text, ShouldNotContainSubstring, "birthDate")
			})
		})

		Convey("When limit is below 1", func() {
			result, _ := tool.Handler(ctx, newMockRequest(SearchAuthorsToolName, map[string]any{
				"query": "homer",
				"limit": float64(0),
			}))

			So(result.IsError, ShouldBeTrue)
			catalog.AssertNotCalled(t, "SearchAuthors", mock.Anything, mock.Anything)
		})

		Convey("When the response cannot be decoded", func() {
			catalog.On("SearchAuthors", mock.Anything, mock.Anything).
				Return(nil, &openlibrary.DecodeError{URL: "https://openlibrary.org/search/authors.json"})

			result, err := tool.Handler(ctx, newMockRequest(SearchAuthorsToolName, map[string]any{"query": "homer"}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(resultText(result), ShouldContainSubstring, "not valid JSON")
		})
	})
}
