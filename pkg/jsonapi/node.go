package jsonapi

import (
	"maps"
	"slices"

	"github.com/diwise/jsonapi/pkg/jsonapi/types"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const IDField string = "id"

// Node is a denormalized resource, an ordered set of fields made of the resource's
// attributes, its id and its resolved relationships, in that order. A field that is
// assigned again keeps its position and takes the later value, so the id overrides an
// attribute named "id" and a relationship overrides an attribute of the same name.
type Node struct {
	fields *orderedmap.OrderedMap[string, any]
}

func newNode(attributes map[string]any, id string, relations map[string]types.Multiple[*Node]) *Node {
	n := &Node{
		fields: orderedmap.New[string, any](len(attributes) + len(relations) + 1),
	}

	for _, name := range slices.Sorted(maps.Keys(attributes)) {
		n.fields.Set(name, attributes[name])
	}

	n.fields.Set(IDField, id)

	for _, name := range slices.Sorted(maps.Keys(relations)) {
		n.fields.Set(name, relations[name])
	}

	return n
}

// newReference returns a node that only carries the id of a resource
func newReference(id string) *Node {
	return newNode(nil, id, nil)
}

func (n *Node) ID() string {
	id, _ := n.fields.Get(IDField)
	s, _ := id.(string)
	return s
}

func (n *Node) Get(name string) (any, bool) {
	return n.fields.Get(name)
}

// Relationship returns the resolved value of a relationship field. It reports false
// if the field does not exist or holds an attribute.
func (n *Node) Relationship(name string) (types.Multiple[*Node], bool) {
	v, ok := n.fields.Get(name)
	if !ok {
		return types.Absent[*Node](), false
	}

	rel, ok := v.(types.Multiple[*Node])
	return rel, ok
}

func (n *Node) Keys() []string {
	keys := make([]string, 0, n.fields.Len())
	for pair := n.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (n *Node) Len() int {
	return n.fields.Len()
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return n.fields.MarshalJSON()
}
