package index

import (
	"slices"

	"github.com/diwise/jsonapi/pkg/jsonapi/types"
	"github.com/diwise/jsonapi/pkg/jsonapi/types/resources"
)

// Index is a read only lookup of included resources keyed by type and then by id
type Index struct {
	byType map[string]map[string]resources.Resource
	count  int
}

// Build indexes the included resources of a document. Copies of the same resource
// are merged in the order they are included, see resources.Merge.
func Build(included []resources.Resource) Index {
	idx := Index{
		byType: map[string]map[string]resources.Resource{},
	}

	for _, r := range included {
		ids, ok := idx.byType[r.Type]
		if !ok {
			ids = map[string]resources.Resource{}
			idx.byType[r.Type] = ids
		}

		if existing, found := ids[r.ID]; found {
			ids[r.ID] = resources.Merge(existing, r)
			continue
		}

		ids[r.ID] = resources.Merge(resources.Resource{}, r)
		idx.count++
	}

	return idx
}

func (idx Index) Lookup(rid types.ResourceID) (resources.Resource, bool) {
	ids, ok := idx.byType[rid.Type]
	if !ok {
		return resources.Resource{}, false
	}

	r, ok := ids[rid.ID]
	return r, ok
}

// Len returns the number of distinct resources in the index
func (idx Index) Len() int {
	return idx.count
}

func (idx Index) Types() []string {
	names := make([]string, 0, len(idx.byType))
	for t := range idx.byType {
		names = append(names, t)
	}
	slices.Sort(names)
	return names
}
