package index

import (
	"testing"

	"github.com/diwise/jsonapi/pkg/jsonapi/types"
	"github.com/diwise/jsonapi/pkg/jsonapi/types/resources"
	"github.com/matryer/is"
)

func TestBuildFromNothingIsEmpty(t *testing.T) {
	is := is.New(t)

	idx := Build(nil)

	is.Equal(idx.Len(), 0)
	is.Equal(len(idx.Types()), 0)

	_, found := idx.Lookup(types.ResourceID{Type: "author", ID: "1"})
	is.True(!found)
}

func TestBuildIndexesByTypeAndID(t *testing.T) {
	is := is.New(t)

	idx := Build([]resources.Resource{
		resources.New("author", "1", resources.Name("Ada")),
		resources.New("author", "2", resources.Name("Grace")),
		resources.New("tag", "1", resources.Name("go")),
	})

	is.Equal(idx.Len(), 3)
	is.Equal(idx.Types(), []string{"author", "tag"})

	author, found := idx.Lookup(types.ResourceID{Type: "author", ID: "1"})
	is.True(found)
	is.Equal(author.Attributes["name"], "Ada")

	tag, found := idx.Lookup(types.ResourceID{Type: "tag", ID: "1"})
	is.True(found)
	is.Equal(tag.Attributes["name"], "go") // same id under another type is another resource

	_, found = idx.Lookup(types.ResourceID{Type: "tag", ID: "2"})
	is.True(!found)
}

func TestBuildMergesDuplicates(t *testing.T) {
	is := is.New(t)

	idx := Build([]resources.Resource{
		resources.New("author", "1", resources.Name("Ada"), resources.A("born", 1815.0)),
		resources.New("tag", "1"),
		resources.New("author", "1", resources.Name("Ada Lovelace"), resources.ToOne("spouse", "author", "2")),
	})

	is.Equal(idx.Len(), 2) // duplicates should count once

	author, found := idx.Lookup(types.ResourceID{Type: "author", ID: "1"})
	is.True(found)
	is.Equal(author.Attributes["name"], "Ada Lovelace")
	is.Equal(author.Attributes["born"], 1815.0)
	is.Equal(len(author.Relationships), 1)
}

func TestBuildDoesNotShareAttributesWithInput(t *testing.T) {
	is := is.New(t)

	included := []resources.Resource{resources.New("author", "1", resources.Name("Ada"))}
	idx := Build(included)

	author, _ := idx.Lookup(types.ResourceID{Type: "author", ID: "1"})
	author.Attributes["name"] = "changed"

	is.Equal(included[0].Attributes["name"], "Ada")
}
