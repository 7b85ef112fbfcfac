package relationships

import (
	"encoding/json"
	"fmt"

	"github.com/diwise/jsonapi/pkg/jsonapi/types"
)

//Relationship stores the resource linkage of a named relation, absent, to-one or to-many
type Relationship struct {
	Data types.Multiple[types.ResourceID] `json:"data"`
}

//NewToOne accepts a resource type and id and returns a new to-one Relationship
func NewToOne(resourceType, resourceID string) Relationship {
	return Relationship{
		Data: types.One(types.ResourceID{Type: resourceType, ID: resourceID}),
	}
}

//NewToMany accepts a list of resource identifiers and returns a new to-many Relationship
func NewToMany(ids ...types.ResourceID) Relationship {
	return Relationship{
		Data: types.Many(ids...),
	}
}

func NewEmpty() Relationship {
	return Relationship{Data: types.Absent[types.ResourceID]()}
}

func (r Relationship) IsToMany() bool {
	return r.Data.IsMany()
}

func (r *Relationship) UnmarshalJSON(data []byte) error {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return fmt.Errorf("failed to unmarshal relationship: %w", err)
	}

	*r = UnmarshalR(body)
	return nil
}

// UnmarshalR converts a decoded relationship object into a Relationship. Entries
// that are not resource identifiers become zero identifiers so that a to-many
// linkage keeps its length.
func UnmarshalR(body map[string]any) Relationship {
	data, ok := body["data"]
	if !ok || data == nil {
		return NewEmpty()
	}

	switch typedData := data.(type) {
	case map[string]any:
		return Relationship{Data: types.One(identifier(typedData))}
	case []any:
		ids := make([]types.ResourceID, 0, len(typedData))
		for _, d := range typedData {
			obj, _ := d.(map[string]any)
			ids = append(ids, identifier(obj))
		}
		return NewToMany(ids...)
	default:
		return NewEmpty()
	}
}

func identifier(obj map[string]any) types.ResourceID {
	rid := types.ResourceID{}
	if obj == nil {
		return rid
	}

	rid.Type, _ = obj["type"].(string)

	switch id := obj["id"].(type) {
	case string:
		rid.ID = id
	case float64:
		rid.ID = fmt.Sprintf("%v", id)
	}

	return rid
}
