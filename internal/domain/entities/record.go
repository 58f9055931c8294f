// Package entities holds the domain types shared by the extraction pipeline.
package entities

// Record is one entity extracted from a script file.
// Name is the dedup key; Attributes always carries "looktype" once normalized.
type Record struct {
	Name       string
	Attributes *Attributes
	SourceFile string
}

// LookType returns the normalized looktype attribute.
func (r Record) LookType() string {
	v, _ := r.Attributes.Get(AttrLookType)
	return v
}

// Document is the input to a serializer: a kind plus its records in output order.
type Document struct {
	Kind    Kind
	Records []Record
}

// Attribute keys with special handling during normalization.
const (
	AttrName       = "name"
	AttrLookType   = "looktype"
	AttrLookTypeEx = "looktypeex"
	AttrLookItem   = "lookitem"
)

// DefaultLookType is used when a source gives no usable looktype.
const DefaultLookType = "0"
