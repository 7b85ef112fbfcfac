package resources

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/diwise/jsonapi/pkg/jsonapi/types"
	"github.com/diwise/jsonapi/pkg/jsonapi/types/relationships"
)

type ResourceDecoratorFunc func(r *Resource)

// Resource is a single normalized entity of a document
type Resource struct {
	Type          string
	ID            string
	Attributes    map[string]any
	Relationships map[string]relationships.Relationship
}

func New(resourceType, resourceID string, decorators ...ResourceDecoratorFunc) Resource {
	r := &Resource{
		Type:          resourceType,
		ID:            resourceID,
		Attributes:    map[string]any{},
		Relationships: map[string]relationships.Relationship{},
	}

	for _, decorator := range decorators {
		decorator(r)
	}

	return *r
}

func NewFromJSON(body []byte) (Resource, error) {
	r := Resource{}
	err := json.Unmarshal(body, &r)

	if err != nil {
		return Resource{}, fmt.Errorf("failed to unmarshal resource: %w", err)
	}

	return r, nil
}

func NewFromSlice(body []byte) ([]Resource, error) {
	arr := []Resource{}
	err := json.Unmarshal(body, &arr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal resources: %w", err)
	}

	return arr, nil
}

func (r Resource) Identifier() types.ResourceID {
	return types.ResourceID{Type: r.Type, ID: r.ID}
}

func (r Resource) MarshalJSON() ([]byte, error) {
	contents := map[string]any{
		"type": r.Type,
		"id":   r.ID,
	}

	if len(r.Attributes) > 0 {
		contents["attributes"] = r.Attributes
	}

	if len(r.Relationships) > 0 {
		contents["relationships"] = r.Relationships
	}

	return json.Marshal(&contents)
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	contents := struct {
		Type          string                     `json:"type"`
		ID            json.RawMessage            `json:"id"`
		Attributes    map[string]any             `json:"attributes"`
		Relationships map[string]json.RawMessage `json:"relationships"`
	}{}

	err := json.Unmarshal(data, &contents)
	if err != nil {
		return fmt.Errorf("failed to unmarshal resource: %w", err)
	}

	r.Type = contents.Type
	r.ID = idFromJSON(contents.ID)

	r.Attributes = contents.Attributes
	if r.Attributes == nil {
		r.Attributes = map[string]any{}
	}

	r.Relationships = map[string]relationships.Relationship{}

	for name, raw := range contents.Relationships {
		var body map[string]any
		// anything other than an object carries no linkage
		if err := json.Unmarshal(raw, &body); err != nil {
			r.Relationships[name] = relationships.NewEmpty()
			continue
		}
		r.Relationships[name] = relationships.UnmarshalR(body)
	}

	return nil
}

// ids are strings in JSON:API, but numeric ids are common enough to accept them
func idFromJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var id any
	if err := json.Unmarshal(raw, &id); err != nil {
		return ""
	}

	switch typedID := id.(type) {
	case string:
		return typedID
	case float64:
		return fmt.Sprintf("%v", typedID)
	default:
		return ""
	}
}

// Merge combines two copies of the same resource. Attributes are merged recursively,
// nested objects key by key and any other value (arrays included) replaced by the value
// in src. Relationships are replaced by name. Neither dst nor src is modified.
func Merge(dst, src Resource) Resource {
	merged := Resource{
		Type:          src.Type,
		ID:            src.ID,
		Attributes:    mergeObjects(dst.Attributes, src.Attributes),
		Relationships: make(map[string]relationships.Relationship, len(dst.Relationships)+len(src.Relationships)),
	}

	maps.Copy(merged.Relationships, dst.Relationships)
	maps.Copy(merged.Relationships, src.Relationships)

	return merged
}

func mergeObjects(dst, src map[string]any) map[string]any {
	result := make(map[string]any, len(dst)+len(src))
	maps.Copy(result, dst)

	for k, v := range src {
		result[k] = mergeValues(result[k], v)
	}

	return result
}

func mergeValues(dst, src any) any {
	dstObj, dstIsObj := dst.(map[string]any)
	srcObj, srcIsObj := src.(map[string]any)

	if dstIsObj && srcIsObj {
		return mergeObjects(dstObj, srcObj)
	}

	return src
}

func A(name string, value any) ResourceDecoratorFunc {
	return func(r *Resource) { r.Attributes[name] = value }
}

func R(name string, value relationships.Relationship) ResourceDecoratorFunc {
	return func(r *Resource) { r.Relationships[name] = value }
}
