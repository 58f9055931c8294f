package entities

// Kind identifies which family of script files a pipeline run reads.
type Kind string

// Supported kinds.
const (
	KindMonster Kind = "monster"
	KindNpc     Kind = "npc"
)

// ValidKinds returns all supported kinds.
func ValidKinds() []Kind {
	return []Kind{KindMonster, KindNpc}
}

// IsValid checks if the kind is supported.
func (k Kind) IsValid() bool {
	switch k {
	case KindMonster, KindNpc:
		return true
	default:
		return false
	}
}

// ItemTag is the XML element name used for one entity.
func (k Kind) ItemTag() string {
	return string(k)
}

// RootTag is the XML root element name.
func (k Kind) RootTag() string {
	return string(k) + "s"
}

// DefaultOutputFile is the file name written when no output path is given.
func (k Kind) DefaultOutputFile() string {
	return k.RootTag() + ".xml"
}
