package resources

import (
	"github.com/diwise/jsonapi/pkg/jsonapi/types"
	"github.com/diwise/jsonapi/pkg/jsonapi/types/relationships"
)

func ToOne(name, resourceType, resourceID string) ResourceDecoratorFunc {
	return R(name, relationships.NewToOne(resourceType, resourceID))
}

func ToMany(name string, ids ...types.ResourceID) ResourceDecoratorFunc {
	return R(name, relationships.NewToMany(ids...))
}

func Empty(name string) ResourceDecoratorFunc {
	return R(name, relationships.NewEmpty())
}

func Attributes(attrs map[string]any) ResourceDecoratorFunc {
	return func(r *Resource) {
		for k, v := range attrs {
			r.Attributes[k] = v
		}
	}
}

func Name(value string) ResourceDecoratorFunc {
	return A("name", value)
}

func Title(value string) ResourceDecoratorFunc {
	return A("title", value)
}

// ID is shorthand for building resource identifiers in to-many linkage
func ID(resourceType, resourceID string) types.ResourceID {
	return types.ResourceID{Type: resourceType, ID: resourceID}
}
