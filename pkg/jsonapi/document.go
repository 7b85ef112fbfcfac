package jsonapi

import (
	"encoding/json"
	"fmt"

	"github.com/diwise/jsonapi/pkg/jsonapi/errors"
	"github.com/diwise/jsonapi/pkg/jsonapi/types"
	"github.com/diwise/jsonapi/pkg/jsonapi/types/resources"
)

// Document is a normalized JSON:API document. Members other than data and included
// (meta, links, jsonapi, errors) are not read.
type Document struct {
	Data     types.Multiple[resources.Resource] `json:"data"`
	Included []resources.Resource               `json:"included,omitempty"`
}

func NewDocument(data types.Multiple[resources.Resource], included ...resources.Resource) Document {
	return Document{
		Data:     data,
		Included: included,
	}
}

func NewDocumentFromJSON(body []byte) (Document, error) {
	doc := Document{}
	err := json.Unmarshal(body, &doc)

	if err != nil {
		return Document{}, errors.NewBadDocumentError(fmt.Sprintf("failed to unmarshal document: %s", err.Error()))
	}

	return doc, nil
}
