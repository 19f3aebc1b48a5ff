package services

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// ContainerCodec converts between the wire form of a container and the
// stored record.
type ContainerCodec interface {
	Marshal(c *models.Container) ([]byte, error)
	Unmarshal(b []byte) (*models.Container, error)
}

// JSONCodec reads and writes containers as JSON objects. "id" and "kind"
// are optional strings; a missing id is left empty for the caller to
// assign. Every other member goes to Container.Payload as a JSON object.
// Member values keep their meaning but not their formatting: whitespace is
// compacted and keys come back sorted.
type JSONCodec struct{}

func (JSONCodec) Unmarshal(b []byte) (*models.Container, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		return nil, &common.Error{Code: common.CodeBadRequest, Message: "malformed store", Cause: err}
	}

	c := &models.Container{}

	if rawID, ok := fields["id"]; ok {
		if err := json.Unmarshal(rawID, &c.ID); err != nil {
			return nil, common.BadRequest("store id must be a string")
		}
	}

	if rawKind, ok := fields["kind"]; ok {
		if err := json.Unmarshal(rawKind, &c.Kind); err != nil {
			return nil, common.BadRequest("store kind must be a string")
		}
	}

	delete(fields, "id")
	delete(fields, "kind")

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	c.Payload = payload

	return c, nil
}

func (JSONCodec) Marshal(c *models.Container) ([]byte, error) {
	fields := map[string]json.RawMessage{}
	if len(c.Payload) > 0 {
		if err := json.Unmarshal(c.Payload, &fields); err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
	}

	id, err := json.Marshal(c.ID)
	if err != nil {
		return nil, err
	}
	fields["id"] = id

	if c.Kind != "" {
		kind, err := json.Marshal(c.Kind)
		if err != nil {
			return nil, err
		}
		fields["kind"] = kind
	}

	return json.Marshal(fields)
}
