package library

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/openlibrary"
)

func TestGetAuthorWorksTool(t *testing.T) {
	Convey("Given a get_author_works tool", t, func() {
		catalog := &MockCatalog{}
		tool := NewGetAuthorWorksTool(catalog)
		ctx := context.Background()

		Convey("When limit is omitted", func() {
			catalog.On("GetAuthorWorks", mock.Anything, openlibrary.AuthorWorksRequest{AuthorKey: "OL23919A", Limit: 20}).
				Return(&openlibrary.AuthorWorksResult{
					Total: 2,
					Works: []openlibrary.WorkSummary{{Title: "Harry Potter and the Philosopher's Stone", Key: "/works/OL82563W"}},
				}, nil)

			result, err := tool.Handler(ctx, newMockRequest(GetAuthorWorksToolName, map[string]any{"authorKey": "OL23919A"}))

			Convey("It should list works with the default limit of 20", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeFalse)
				So(resultText(result), ShouldContainSubstring, `"total": 2`)
				catalog.AssertExpectations(t)
			})
		})

		Convey("When authorKey is not a string", func() {
			result, _ := tool.Handler(ctx, newMockRequest(GetAuthorWorksToolName, map[string]any{"authorKey": float64(42)}))

			So(result.IsError, ShouldBeTrue)
			So(resultText(result), ShouldContainSubstring, "authorKey")
			catalog.AssertNotCalled(t, "GetAuthorWorks", mock.Anything, mock.Anything)
		})
	})
}
