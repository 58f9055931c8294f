package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ersonp/outfitgen/internal/domain/entities"
)

// Merger deduplicates records by name. A later record replaces an earlier one entirely.
type Merger struct {
	index   map[string]int
	records []entities.Record
}

// NewMerger creates an empty merger.
func NewMerger() *Merger {
	return &Merger{index: make(map[string]int)}
}

// Add stores record, returning the record it replaced, if any.
func (m *Merger) Add(record entities.Record) (entities.Record, bool) {
	if i, ok := m.index[record.Name]; ok {
		prev := m.records[i]
		m.records[i] = record
		return prev, true
	}
	m.index[record.Name] = len(m.records)
	m.records = append(m.records, record)
	return entities.Record{}, false
}

// Len returns the number of distinct names seen.
func (m *Merger) Len() int {
	return len(m.records)
}

// Records returns the deduplicated records in first-seen order.
func (m *Merger) Records() []entities.Record {
	out := make([]entities.Record, len(m.records))
	copy(out, m.records)
	return out
}

// SortByName orders records by name using locale-aware collation.
// Names the collator considers equal fall back to byte order so output is stable.
func SortByName(records []entities.Record) {
	c := collate.New(language.English)
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Name, records[j].Name
		if r := c.CompareString(a, b); r != 0 {
			return r < 0
		}
		return a < b
	})
}
