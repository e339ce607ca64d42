// Package conversion translates a PanCasting character into D&D 3.5 and
// 5th edition representations: character sheets, class and background
// suggestions, validation reports and export text. The source character
// is never modified.
package conversion

import (
	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/errors"
)

// Edition is a supported target rule system
type Edition string

// Supported editions
const (
	Edition35 Edition = "3.5"
	Edition5e Edition = "5e"
)

// ParseEdition maps an edition tag onto an Edition. Unknown tags are an
// InvalidArgument error naming the tag.
func ParseEdition(tag string) (Edition, error) {
	switch Edition(tag) {
	case Edition35:
		return Edition35, nil
	case Edition5e:
		return Edition5e, nil
	default:
		return "", errors.InvalidArgumentf("Unsupported D&D edition: %s", tag).WithMeta("edition", tag)
	}
}

// Converter is one edition's rules mapping
type Converter interface {
	Edition() Edition
	Convert(c *character.Character) *Sheet
	SuggestClasses(c *character.Character) []ClassSuggestion
	Validate(c *character.Character) *ValidationReport
	RenderText(sheet *Sheet) string
}

// BackgroundSuggester is implemented by editions with a background system
type BackgroundSuggester interface {
	SuggestBackgrounds(c *character.Character) []BackgroundSuggestion
}

// StatsGenerator is implemented by editions that can produce a unified
// stat block
type StatsGenerator interface {
	GenerateUnifiedStats(c *character.Character) *UnifiedStats
}
