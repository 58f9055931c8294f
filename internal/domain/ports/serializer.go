package ports

import "github.com/ersonp/outfitgen/internal/domain/entities"

// SerializationSkip describes a record that could not be rendered and was left out.
type SerializationSkip struct {
	Name   string
	Key    string
	Reason string
}

func (s SerializationSkip) Error() string {
	if s.Key != "" {
		return s.Name + ": attribute " + s.Key + ": " + s.Reason
	}
	return s.Name + ": " + s.Reason
}

// Serializer renders a document of records.
// Records that cannot be rendered are reported in the returned skips rather than failing the document.
type Serializer interface {
	Encode(doc entities.Document) ([]byte, []SerializationSkip, error)
}
