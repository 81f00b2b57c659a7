package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/config"
	"github.com/tidwall/gjson"
)

type fakeOpenLibrary struct {
	mu    sync.Mutex
	paths []string
	srv   *httptest.Server
}

func newFakeOpenLibrary() *fakeOpenLibrary {
	f := &fakeOpenLibrary{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.paths = append(f.paths, r.URL.RequestURI())
		f.mu.Unlock()

		switch r.URL.Path {
		case "/search.json":
			_, _ = w.Write([]byte(`{"numFound": 1, "docs": [{"title": "Dune", "author_name": ["Frank Herbert"], "cover_i": 12345}]}`))
		case "/works/OL45883W.json":
			_, _ = w.Write([]byte(`{"title": "Fantastic Mr Fox"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "notfound"}`))
		}
	}))
	return f
}

func call(registry *ToolRegistry, id int, method string, params any) gjson.Result {
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
		"params":  params,
	})
	So(err, ShouldBeNil)

	resp := registry.server.HandleMessage(context.Background(), msg)
	out, err := json.Marshal(resp)
	So(err, ShouldBeNil)
	return gjson.ParseBytes(out)
}

func TestServer(t *testing.T) {
	Convey("Given the server wired against a fake Open Library", t, func() {
		fake := newFakeOpenLibrary()
		defer fake.srv.Close()

		v := viper.New()
		v.Set("base_url", fake.srv.URL)
		v.Set("min_interval", "0s")
		cfg := config.New(v)
		So(cfg.Validate(), ShouldBeNil)

		registry := newRegistry(cfg, log.New(io.Discard))

		Convey("tools/list should announce the five tools", func() {
			resp := call(registry, 1, "tools/list", map[string]any{})
			names := []string{}
			for _, tool := range resp.Get("result.tools").Array() {
				names = append(names, tool.Get("name").String())
			}
			So(names, ShouldHaveLength, 5)
			So(names, ShouldContain, "search_books")
			So(names, ShouldContain, "get_book")
			So(names, ShouldContain, "search_authors")
			So(names, ShouldContain, "get_author_works")
			So(names, ShouldContain, "get_trending")
		})

		Convey("search_books should return projected books", func() {
			resp := call(registry, 2, "tools/call", map[string]any{
				"name":      "search_books",
				"arguments": map[string]any{"query": "dune"},
			})

			So(resp.Get("result.isError").Bool(), ShouldBeFalse)
			text := gjson.Parse(resp.Get("result.content.0.text").String())
			So(text.Get("total").Int(), ShouldEqual, 1)
			So(text.Get("books.0.author").String(), ShouldEqual, "Frank Herbert")
			So(text.Get("books.0.coverUrl").String(), ShouldEqual, "https://covers.openlibrary.org/b/id/12345-M.jpg")
			So(fake.paths, ShouldResemble, []string{"/search.json?limit=10&q=dune"})
		})

		Convey("get_book should fetch the key path", func() {
			resp := call(registry, 3, "tools/call", map[string]any{
				"name":      "get_book",
				"arguments": map[string]any{"key": "/works/OL45883W"},
			})

			So(resp.Get("result.isError").Bool(), ShouldBeFalse)
			So(resp.Get("result.content.0.text").String(), ShouldEqual, "{\n  \"title\": \"Fantastic Mr Fox\"\n}")
			So(fake.paths, ShouldResemble, []string{"/works/OL45883W.json"})
		})

		Convey("A 404 should surface as an error result", func() {
			resp := call(registry, 4, "tools/call", map[string]any{
				"name":      "get_book",
				"arguments": map[string]any{"key": "9780140328721"},
			})

			So(resp.Get("result.isError").Bool(), ShouldBeTrue)
			So(resp.Get("result.content.0.text").String(), ShouldContainSubstring, "404")
			So(fake.paths, ShouldResemble, []string{"/isbn/9780140328721.json"})
		})

		Convey("Invalid arguments should never reach Open Library", func() {
			resp := call(registry, 5, "tools/call", map[string]any{
				"name":      "get_trending",
				"arguments": map[string]any{"type": "hourly"},
			})

			So(resp.Get("result.isError").Bool(), ShouldBeTrue)
			So(fake.paths, ShouldBeEmpty)
		})
	})
}
