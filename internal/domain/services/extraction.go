// Package services contains domain business logic.
package services

import (
	"regexp"
	"strings"

	"github.com/ersonp/outfitgen/internal/domain/entities"
)

// CommentToken starts a Lua line comment.
const CommentToken = "--"

// LookTypeExPolicy decides what happens to a looktypeex value during normalization.
type LookTypeExPolicy int

const (
	// LookTypeExDrop removes looktypeex without keeping its value.
	LookTypeExDrop LookTypeExPolicy = iota
	// LookTypeExToLookItem moves the looktypeex value into lookitem.
	LookTypeExToLookItem
)

// ExtractionRules holds the patterns and normalization quirks for one entity kind.
type ExtractionRules struct {
	Kind entities.Kind
	// NamePattern may have several alternative groups; the first non-empty one is the name.
	NamePattern *regexp.Regexp
	// OutfitPattern captures the text between the outfit braces in group 1.
	OutfitPattern *regexp.Regexp
	LookTypeEx    LookTypeExPolicy
}

var reLineComment = regexp.MustCompile(`--.*(?:\n|$)`)

var (
	// MonsterRules matches Canary monster scripts.
	MonsterRules = ExtractionRules{
		Kind:          entities.KindMonster,
		NamePattern:   regexp.MustCompile(`Game\.createMonsterType\("([^"]+)"\)`),
		OutfitPattern: regexp.MustCompile(`monster\.outfit\s*=\s*\{([^}]+)\}`),
		LookTypeEx:    LookTypeExDrop,
	}

	// NpcRules matches Canary npc scripts, declared either through the constructor or a local name.
	NpcRules = ExtractionRules{
		Kind:          entities.KindNpc,
		NamePattern:   regexp.MustCompile(`Game\.createNpcType\("([^"]+)"\)|local internalNpcName = "([^"]+)"`),
		OutfitPattern: regexp.MustCompile(`npcConfig\.outfit\s*=\s*\{([^}]+)\}`),
		LookTypeEx:    LookTypeExToLookItem,
	}
)

// RulesFor returns the extraction rules for kind.
func RulesFor(kind entities.Kind) (ExtractionRules, bool) {
	switch kind {
	case entities.KindMonster:
		return MonsterRules, true
	case entities.KindNpc:
		return NpcRules, true
	default:
		return ExtractionRules{}, false
	}
}

// Extractor pulls one entity record out of a script file's text.
type Extractor struct {
	rules ExtractionRules
}

// NewExtractor creates an extractor for the given rules.
func NewExtractor(rules ExtractionRules) *Extractor {
	return &Extractor{rules: rules}
}

// Kind returns the entity kind this extractor recognizes.
func (e *Extractor) Kind() entities.Kind {
	return e.rules.Kind
}

// Extract recognizes the entity declaration and outfit block in text.
// A file without either returns an *ExtractionSkip.
func (e *Extractor) Extract(text string) (entities.Record, error) {
	stripped := StripComments(text)

	name, ok := e.matchName(stripped)
	if !ok {
		return entities.Record{}, &ExtractionSkip{Reason: SkipReasonName}
	}

	outfit := e.rules.OutfitPattern.FindStringSubmatch(stripped)
	if outfit == nil {
		return entities.Record{}, &ExtractionSkip{Reason: SkipReasonOutfit}
	}

	return entities.Record{
		Name:       name,
		Attributes: ParseOutfit(outfit[1], e.rules.LookTypeEx),
	}, nil
}

func (e *Extractor) matchName(text string) (string, bool) {
	m := e.rules.NamePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	for _, group := range m[1:] {
		if group != "" {
			return group, true
		}
	}
	return "", false
}

// StripComments removes every line comment together with its line break.
func StripComments(text string) string {
	return reLineComment.ReplaceAllString(text, "")
}

// ParseOutfit turns a flat "key = value, ..." block into normalized attributes.
// Keys are lower-cased, values kept as raw trimmed tokens, and looktype is always set.
func ParseOutfit(block string, policy LookTypeExPolicy) *entities.Attributes {
	attrs := entities.NewAttributes()

	for _, part := range strings.Split(block, ",") {
		segments := strings.Split(part, "=")
		key := strings.ToLower(strings.TrimSpace(segments[0]))

		// A looktype pair left behind by a partial comment strip still counts as unset.
		if key == CommentToken+entities.AttrLookType {
			attrs.Set(entities.AttrLookType, entities.DefaultLookType)
			continue
		}
		if len(segments) < 2 {
			continue
		}
		attrs.Set(key, strings.TrimSpace(segments[1]))
	}

	if ex, ok := attrs.Get(entities.AttrLookTypeEx); ok {
		attrs.Delete(entities.AttrLookTypeEx)
		if policy == LookTypeExToLookItem {
			attrs.Set(entities.AttrLookItem, ex)
		}
		attrs.Set(entities.AttrLookType, entities.DefaultLookType)
	}

	if !attrs.Has(entities.AttrLookType) {
		attrs.Set(entities.AttrLookType, entities.DefaultLookType)
	}

	return attrs
}
