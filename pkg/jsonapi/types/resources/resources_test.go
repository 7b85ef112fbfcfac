package resources

import (
	"encoding/json"
	"testing"

	"github.com/diwise/jsonapi/pkg/jsonapi/types"
	"github.com/matryer/is"
)

func TestUnmarshalResource(t *testing.T) {
	is := is.New(t)

	r, err := NewFromJSON([]byte(postJSON))
	is.NoErr(err)

	is.Equal(r.Type, "post")
	is.Equal(r.ID, "9")
	is.Equal(r.Attributes["title"], "Hi")
	is.Equal(len(r.Relationships), 3)

	author, ok := r.Relationships["author"].Data.Single()
	is.True(ok)
	is.Equal(author, types.ResourceID{Type: "author", ID: "1"})

	is.Equal(r.Relationships["tags"].Data.Len(), 2)
	is.True(r.Relationships["editor"].Data.IsAbsent())
}

func TestUnmarshalResourceWithNumericID(t *testing.T) {
	is := is.New(t)

	r, err := NewFromJSON([]byte(`{"type":"author","id":42}`))
	is.NoErr(err)

	is.Equal(r.ID, "42")
	is.Equal(len(r.Attributes), 0)
	is.Equal(len(r.Relationships), 0)
}

func TestMarshalResource(t *testing.T) {
	is := is.New(t)

	r := New("post", "9", Title("Hi"), ToOne("author", "author", "1"))

	b, err := json.Marshal(r)
	is.NoErr(err)
	is.Equal(string(b), `{"attributes":{"title":"Hi"},"id":"9","relationships":{"author":{"data":{"type":"author","id":"1"}}},"type":"post"}`)
}

func TestMergeLaterValuesWinPerKey(t *testing.T) {
	is := is.New(t)

	first := New("author", "1",
		Name("Ada"),
		A("born", 1815.0),
		A("address", map[string]any{"city": "London", "street": "St James's Square"}),
		A("languages", []any{"en", "fr"}),
		ToOne("spouse", "author", "2"),
	)

	second := New("author", "1",
		Name("Ada Lovelace"),
		A("address", map[string]any{"city": "Marylebone"}),
		A("languages", []any{"it"}),
		ToMany("works", ID("note", "G")),
	)

	merged := Merge(first, second)

	is.Equal(merged.Attributes["name"], "Ada Lovelace")
	is.Equal(merged.Attributes["born"], 1815.0) // keys only in the first copy should survive
	is.Equal(merged.Attributes["address"], map[string]any{"city": "Marylebone", "street": "St James's Square"})
	is.Equal(merged.Attributes["languages"], []any{"it"}) // arrays are replaced, not merged
	is.Equal(len(merged.Relationships), 2)
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	is := is.New(t)

	address := map[string]any{"city": "London"}
	first := New("author", "1", A("address", address))
	second := New("author", "1", A("address", map[string]any{"city": "Paris", "zip": "75000"}), Name("Ada"))

	_ = Merge(first, second)

	is.Equal(address, map[string]any{"city": "London"})
	is.Equal(len(first.Attributes), 1)
	is.Equal(len(second.Attributes), 2)
}

const postJSON string = `{
	"type": "post",
	"id": "9",
	"attributes": {
		"title": "Hi"
	},
	"relationships": {
		"author": {
			"data": { "type": "author", "id": "1" }
		},
		"tags": {
			"data": [
				{ "type": "tag", "id": "1" },
				{ "type": "tag", "id": "2" }
			]
		},
		"editor": {
			"links": { "related": "/posts/9/editor" }
		}
	},
	"links": {
		"self": "/posts/9"
	}
}`
