// Package xmlout renders entity documents as attribute-only XML.
package xmlout

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/ersonp/outfitgen/internal/domain/entities"
	"github.com/ersonp/outfitgen/internal/domain/ports"
)

// Header is the declaration written at the top of every document.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// DefaultIndent is the per-level indentation.
const DefaultIndent = "  "

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	`"`, "&quot;",
	"\t", "&#x9;",
	"\n", "&#xA;",
	"\r", "&#xD;",
)

// Encoder implements ports.Serializer.
type Encoder struct {
	indent string
}

var _ ports.Serializer = (*Encoder)(nil)

// NewEncoder creates an encoder using DefaultIndent.
func NewEncoder() *Encoder {
	return &Encoder{indent: DefaultIndent}
}

// Encode renders doc as one root element with a self-closing child per record.
// The name attribute comes first, followed by the record's attributes in insertion order.
// Records carrying a key that is not a valid XML name are left out and reported.
func (e *Encoder) Encode(doc entities.Document) ([]byte, []ports.SerializationSkip, error) {
	var (
		buf     bytes.Buffer
		body    bytes.Buffer
		skips   []ports.SerializationSkip
		written int
	)

	for _, rec := range doc.Records {
		if skip, ok := checkRecord(rec); !ok {
			skips = append(skips, skip)
			continue
		}
		e.writeRecord(&body, doc.Kind.ItemTag(), rec)
		written++
	}

	root := doc.Kind.RootTag()
	buf.WriteString(Header)
	buf.WriteByte('\n')
	if written == 0 {
		buf.WriteString("<" + root + "/>")
		return buf.Bytes(), skips, nil
	}
	buf.WriteString("<" + root + ">\n")
	buf.Write(body.Bytes())
	buf.WriteString("</" + root + ">")

	return buf.Bytes(), skips, nil
}

func (e *Encoder) writeRecord(w *bytes.Buffer, tag string, rec entities.Record) {
	w.WriteString(e.indent)
	w.WriteString("<" + tag)
	writeAttr(w, entities.AttrName, rec.Name)
	rec.Attributes.Each(func(key, value string) {
		if key == entities.AttrName {
			return
		}
		writeAttr(w, key, value)
	})
	w.WriteString("/>\n")
}

func writeAttr(w *bytes.Buffer, key, value string) {
	w.WriteByte(' ')
	w.WriteString(key)
	w.WriteString(`="`)
	w.WriteString(attrEscaper.Replace(value))
	w.WriteByte('"')
}

// checkRecord reports why rec cannot be rendered, if it cannot.
func checkRecord(rec entities.Record) (ports.SerializationSkip, bool) {
	if rec.Name == "" {
		return ports.SerializationSkip{Reason: "empty name"}, false
	}
	for _, key := range rec.Attributes.Keys() {
		if !IsName(key) {
			return ports.SerializationSkip{
				Name:   rec.Name,
				Key:    key,
				Reason: "not a valid XML attribute name",
			}, false
		}
	}
	return ports.SerializationSkip{}, true
}

// IsName reports whether s is usable as an XML element or attribute name.
func IsName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if isNameStart(r) {
			continue
		}
		if i > 0 && isNameChar(r) {
			continue
		}
		return false
	}
	return true
}

func isNameStart(r rune) bool {
	return r == '_' || r == ':' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return r == '-' || r == '.' || r == 0xB7 ||
		unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
