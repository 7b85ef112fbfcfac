package jsonapi

import (
	"testing"

	"github.com/diwise/jsonapi/pkg/jsonapi/types"
	"github.com/matryer/is"
)

func TestNodeFieldOrder(t *testing.T) {
	is := is.New(t)

	n := newNode(
		map[string]any{"zeta": 1, "alpha": "a"},
		"7",
		map[string]types.Multiple[*Node]{
			"tags":   types.Many[*Node](),
			"author": types.One(newReference("1")),
		},
	)

	is.Equal(n.Keys(), []string{"alpha", "zeta", "id", "author", "tags"})
	is.Equal(n.Len(), 5)
	is.Equal(toJSON(is, n), `{"alpha":"a","zeta":1,"id":"7","author":{"id":"1"},"tags":[]}`)
}

func TestNodeRelationshipIgnoresAttributes(t *testing.T) {
	is := is.New(t)

	n := newNode(map[string]any{"name": "Ada"}, "1", nil)

	name, ok := n.Get("name")
	is.True(ok)
	is.Equal(name, "Ada")

	_, ok = n.Relationship("name")
	is.True(!ok) // an attribute is not a relationship

	_, ok = n.Relationship("missing")
	is.True(!ok)
}

func TestReferenceNodeOnlyHasID(t *testing.T) {
	is := is.New(t)

	n := newReference("42")

	is.Equal(n.Keys(), []string{IDField})
	is.Equal(n.ID(), "42")
}
