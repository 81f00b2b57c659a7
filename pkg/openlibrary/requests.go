package openlibrary

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults and upper bounds applied to tool arguments.
const (
	// DefaultSearchLimit is used by search_books and search_authors.
	DefaultSearchLimit = 10

	// DefaultWorksLimit is used by get_author_works.
	DefaultWorksLimit = 20

	DefaultTrendingLimit = 10

	MaxSearchLimit   = 100
	MaxTrendingLimit = 50

	DefaultTrendingPeriod = "daily"
)

// SortOrders lists the accepted values of SearchBooksRequest.Sort.
var SortOrders = []string{"relevance", "new", "old", "rating", "editions"}

// TrendingPeriods lists the accepted values of TrendingRequest.Period.
var TrendingPeriods = []string{"daily", "weekly", "monthly", "yearly"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report argument names rather than Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return v
}

func check(req any) error {
	if err := validate.Struct(req); err != nil {
		return fromValidator(err)
	}
	return nil
}

// SearchBooksRequest holds the arguments of search_books.
type SearchBooksRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit" validate:"min=1,max=100"`
	Sort  string `json:"sort,omitempty" validate:"omitempty,oneof=relevance new old rating editions"`
}

// NewSearchBooksRequest validates and returns a SearchBooksRequest.
func NewSearchBooksRequest(query string, limit int, sort string) (SearchBooksRequest, error) {
	req := SearchBooksRequest{Query: query, Limit: limit, Sort: sort}
	return req, check(req)
}

// Values returns the query string for /search.json.
func (r SearchBooksRequest) Values() url.Values {
	v := url.Values{}
	v.Set("q", r.Query)
	v.Set("limit", strconv.Itoa(r.Limit))
	if r.Sort != "" {
		v.Set("sort", r.Sort)
	}
	return v
}

// GetBookRequest holds the argument of get_book: an Open Library key such as
// /works/OL45883W, or a bare ISBN.
type GetBookRequest struct {
	Key string `json:"key" validate:"required"`
}

// NewGetBookRequest validates and returns a GetBookRequest.
func NewGetBookRequest(key string) (GetBookRequest, error) {
	req := GetBookRequest{Key: key}
	return req, check(req)
}

// Path returns the API path for the requested book.
func (r GetBookRequest) Path() string {
	return BookPath(r.Key)
}

// BookPath maps a key to {key}.json and anything else to /isbn/{isbn}.json.
func BookPath(key string) string {
	if strings.HasPrefix(key, "/") {
		return key + ".json"
	}
	return "/isbn/" + url.PathEscape(key) + ".json"
}

// SearchAuthorsRequest holds the arguments of search_authors.
type SearchAuthorsRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit" validate:"min=1,max=100"`
}

// NewSearchAuthorsRequest validates and returns a SearchAuthorsRequest.
func NewSearchAuthorsRequest(query string, limit int) (SearchAuthorsRequest, error) {
	req := SearchAuthorsRequest{Query: query, Limit: limit}
	return req, check(req)
}

// Values returns the query string for /search/authors.json.
func (r SearchAuthorsRequest) Values() url.Values {
	v := url.Values{}
	v.Set("q", r.Query)
	v.Set("limit", strconv.Itoa(r.Limit))
	return v
}

// AuthorWorksRequest holds the arguments of get_author_works.
type AuthorWorksRequest struct {
	AuthorKey string `json:"authorKey" validate:"required"`
	Limit     int    `json:"limit" validate:"min=1,max=100"`
}

// NewAuthorWorksRequest validates and returns an AuthorWorksRequest.
func NewAuthorWorksRequest(authorKey string, limit int) (AuthorWorksRequest, error) {
	req := AuthorWorksRequest{AuthorKey: authorKey, Limit: limit}
	if err := check(req); err != nil {
		return req, err
	}

	if strings.TrimPrefix(authorKey, "/authors/") == "" {
		return req, &ValidationError{Field: "authorKey", Reason: "is required"}
	}

	return req, nil
}

// Path returns the works listing path for the author.
func (r AuthorWorksRequest) Path() string {
	return AuthorWorksPath(r.AuthorKey)
}

// AuthorWorksPath accepts either OL23919A or /authors/OL23919A.
func AuthorWorksPath(authorKey string) string {
	return "/authors/" + strings.TrimPrefix(authorKey, "/authors/") + "/works.json"
}

// TrendingRequest holds the arguments of get_trending.
type TrendingRequest struct {
	Period string `json:"type" validate:"required,oneof=daily weekly monthly yearly"`
	Limit  int    `json:"limit" validate:"min=1,max=50"`
}

// NewTrendingRequest validates and returns a TrendingRequest.
func NewTrendingRequest(period string, limit int) (TrendingRequest, error) {
	req := TrendingRequest{Period: period, Limit: limit}
	return req, check(req)
}

// Path returns the trending path for the period.
func (r TrendingRequest) Path() string {
	return TrendingPath(r.Period)
}

// TrendingPath returns "/trending/{period}.json".
func TrendingPath(period string) string {
	return "/trending/" + period + ".json"
}
