package openlibrary

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// CoversURL is the root of the Open Library cover image service.
const CoversURL = "https://covers.openlibrary.org"

const maxSubjects = 5

// BookSummary is the projection of one /search.json document.
type BookSummary struct {
	Title          string    `json:"title,omitempty"`
	Author         *string   `json:"author,omitempty"`
	FirstPublished *int64    `json:"firstPublished,omitempty"`
	ISBN           *string   `json:"isbn,omitempty"`
	Subjects       *[]string `json:"subjects,omitempty"`
	EditionCount   *int64    `json:"editionCount,omitempty"`
	Key            string    `json:"key,omitempty"`
	CoverURL       *string   `json:"coverUrl"`
}

// BookSearchResult is the output of search_books.
type BookSearchResult struct {
	Total int64         `json:"total"`
	Books []BookSummary `json:"books"`
}

// AuthorSummary is the projection of one /search/authors.json document.
type AuthorSummary struct {
	Name      string  `json:"name,omitempty"`
	Key       string  `json:"key,omitempty"`
	WorkCount *int64  `json:"workCount,omitempty"`
	TopWork   *string `json:"topWork,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
}

// AuthorSearchResult is the output of search_authors.
type AuthorSearchResult struct {
	Total   int64           `json:"total"`
	Authors []AuthorSummary `json:"authors"`
}

// WorkSummary is the projection of one entry of an author's works listing.
type WorkSummary struct {
	Title          string  `json:"title,omitempty"`
	Key            string  `json:"key,omitempty"`
	FirstPublished *string `json:"firstPublished,omitempty"`
}

// AuthorWorksResult is the output of get_author_works.
type AuthorWorksResult struct {
	Total int64         `json:"total"`
	Works []WorkSummary `json:"works"`
}

// TrendingBook is the projection of one trending work.
type TrendingBook struct {
	Title    string  `json:"title,omitempty"`
	Author   *string `json:"author,omitempty"`
	Key      string  `json:"key,omitempty"`
	CoverURL *string `json:"coverUrl"`
}

// CoverURL returns the medium cover image URL for a cover id, or nil when
// the id does not reference a cover.
func CoverURL(id int64) *string {
	if id <= 0 {
		return nil
	}
	u := CoversURL + "/b/id/" + strconv.FormatInt(id, 10) + "-M.jpg"
	return &u
}

func coverOf(doc gjson.Result) *string {
	c := doc.Get("cover_i")
	if c.Type != gjson.Number {
		return nil
	}
	return CoverURL(c.Int())
}

func optString(r gjson.Result) *string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	s := r.String()
	return &s
}

func optInt(r gjson.Result) *int64 {
	if r.Type != gjson.Number {
		return nil
	}
	n := r.Int()
	return &n
}

// joined comma-joins a string array, nil when the field is missing.
func joined(r gjson.Result) *string {
	if !r.IsArray() {
		return optString(r)
	}
	var names []string
	for _, v := range r.Array() {
		names = append(names, v.String())
	}
	s := strings.Join(names, ", ")
	return &s
}

// ProjectBook maps a search document to a BookSummary.
func ProjectBook(doc gjson.Result) BookSummary {
	book := BookSummary{
		Title:          doc.Get("title").String(),
		Author:         joined(doc.Get("author_name")),
		FirstPublished: optInt(doc.Get("first_publish_year")),
		ISBN:           optString(doc.Get("isbn.0")),
		EditionCount:   optInt(doc.Get("edition_count")),
		Key:            doc.Get("key").String(),
		CoverURL:       coverOf(doc),
	}

	// An empty subject list stays in the output as []; a missing one is omitted.
	if subjects := doc.Get("subject"); subjects.IsArray() {
		list := []string{}
		for i, s := range subjects.Array() {
			if i == maxSubjects {
				break
			}
			list = append(list, s.String())
		}
		book.Subjects = &list
	}

	return book
}

// ProjectBookSearch maps a /search.json response.
func ProjectBookSearch(doc gjson.Result) *BookSearchResult {
	res := &BookSearchResult{
		Total: doc.Get("numFound").Int(),
		Books: []BookSummary{},
	}
	for _, d := range doc.Get("docs").Array() {
		res.Books = append(res.Books, ProjectBook(d))
	}
	return res
}

// ProjectAuthor maps an author search document to an AuthorSummary.
func ProjectAuthor(doc gjson.Result) AuthorSummary {
	return AuthorSummary{
		Name:      doc.Get("name").String(),
		Key:       doc.Get("key").String(),
		WorkCount: optInt(doc.Get("work_count")),
		TopWork:   optString(doc.Get("top_work")),
		BirthDate: optString(doc.Get("birth_date")),
	}
}

// ProjectAuthorSearch maps a /search/authors.json response.
func ProjectAuthorSearch(doc gjson.Result) *AuthorSearchResult {
	res := &AuthorSearchResult{
		Total:   doc.Get("numFound").Int(),
		Authors: []AuthorSummary{},
	}
	for _, d := range doc.Get("docs").Array() {
		res.Authors = append(res.Authors, ProjectAuthor(d))
	}
	return res
}

// ProjectWork maps one works listing entry to a WorkSummary.
func ProjectWork(doc gjson.Result) WorkSummary {
	return WorkSummary{
		Title:          doc.Get("title").String(),
		Key:            doc.Get("key").String(),
		FirstPublished: optString(doc.Get("first_publish_date")),
	}
}

// ProjectAuthorWorks maps an /authors/{key}/works.json response.
func ProjectAuthorWorks(doc gjson.Result) *AuthorWorksResult {
	res := &AuthorWorksResult{
		Total: doc.Get("size").Int(),
		Works: []WorkSummary{},
	}
	for _, e := range doc.Get("entries").Array() {
		res.Works = append(res.Works, ProjectWork(e))
	}
	return res
}

// ProjectTrendingBook maps one trending work to a TrendingBook.
func ProjectTrendingBook(doc gjson.Result) TrendingBook {
	return TrendingBook{
		Title:    doc.Get("title").String(),
		Author:   joined(doc.Get("author_name")),
		Key:      doc.Get("key").String(),
		CoverURL: coverOf(doc),
	}
}

// ProjectTrending maps a /trending/{period}.json response.
func ProjectTrending(doc gjson.Result) []TrendingBook {
	books := []TrendingBook{}
	for _, w := range doc.Get("works").Array() {
		books = append(books, ProjectTrendingBook(w))
	}
	return books
}
