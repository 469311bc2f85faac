package pearls

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/matzehuels/mobius/pkg/errors"
	"github.com/matzehuels/mobius/pkg/geom"
)

// Meta describes the run that produced a circle set.
type Meta struct {
	RunID     string  `json:"run_id"`
	Preset    string  `json:"preset,omitempty"`
	Depth     int     `json:"depth"`
	Threshold float64 `json:"threshold"`
}

// Document is the JSON export format.
type Document struct {
	Meta    Meta           `json:"meta"`
	Count   int            `json:"count"`
	Circles []CircleRecord `json:"circles"`
}

// CircleRecord is the serialized form of a [geom.Circle]; encoding/json
// has no representation for complex numbers.
type CircleRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// RenderJSON exports circles and meta as indented JSON. An empty RunID is
// filled with a fresh UUID.
func RenderJSON(circles []geom.Circle, meta Meta) ([]byte, error) {
	if meta.RunID == "" {
		meta.RunID = uuid.NewString()
	}
	doc := Document{
		Meta:    meta,
		Count:   len(circles),
		Circles: make([]CircleRecord, len(circles)),
	}
	for i, c := range circles {
		doc.Circles[i] = CircleRecord{X: c.X(), Y: c.Y(), R: c.Radius}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode json")
	}
	return data, nil
}

// ParseJSON reads a document written by [RenderJSON] back into circles.
func ParseJSON(data []byte) ([]geom.Circle, Meta, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, Meta{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse circle json")
	}
	circles := make([]geom.Circle, len(doc.Circles))
	for i, rec := range doc.Circles {
		circles[i] = geom.C(rec.X, rec.Y, rec.R)
	}
	return circles, doc.Meta, nil
}
