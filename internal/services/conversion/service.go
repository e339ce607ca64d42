package conversion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/errors"
)

// Export formats
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatPDF  = "pdf"
)

// ExportOptions controls ExportCharacter
type ExportOptions struct {
	Format             string `json:"format"`
	IncludeSuggestions bool   `json:"includeSuggestions,omitempty"`
	IncludeValidation  bool   `json:"includeValidation,omitempty"`
}

// ExportResult is a structured export outcome. Format failures are
// reported here rather than as errors.
type ExportResult struct {
	Success bool     `json:"success"`
	Data    string   `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Format  string   `json:"format"`
}

// exportDocument is the JSON export payload
type exportDocument struct {
	Sheet       *Sheet                 `json:"sheet"`
	Classes     []ClassSuggestion      `json:"classSuggestions,omitempty"`
	Backgrounds []BackgroundSuggestion `json:"backgroundSuggestions,omitempty"`
	Validation  *ValidationReport      `json:"validation,omitempty"`
}

// Service dispatches to the converter for an edition tag
type Service struct {
	dnd35 Converter
	dnd5e Converter
}

// NewService returns a service backed by the built-in converters
func NewService() *Service {
	return &Service{
		dnd35: New35Converter(),
		dnd5e: New5eConverter(),
	}
}

// Converter returns the converter for tag
func (s *Service) Converter(tag string) (Converter, error) {
	edition, err := ParseEdition(tag)
	if err != nil {
		return nil, err
	}
	switch edition {
	case Edition35:
		return s.dnd35, nil
	case Edition5e:
		return s.dnd5e, nil
	default:
		return nil, errors.InvalidArgumentf("Unsupported D&D edition: %s", tag)
	}
}

// ConvertCharacter builds the edition sheet for c
func (s *Service) ConvertCharacter(c *character.Character, tag string) (*Sheet, error) {
	conv, err := s.resolve(c, tag)
	if err != nil {
		return nil, err
	}
	return conv.Convert(c), nil
}

// SuggestClasses ranks the edition's classes for c
func (s *Service) SuggestClasses(c *character.Character, tag string) ([]ClassSuggestion, error) {
	conv, err := s.resolve(c, tag)
	if err != nil {
		return nil, err
	}
	return conv.SuggestClasses(c), nil
}

// SuggestBackgrounds ranks backgrounds for c. Only editions with a
// background system support it.
func (s *Service) SuggestBackgrounds(c *character.Character, tag string) ([]BackgroundSuggestion, error) {
	conv, err := s.resolve(c, tag)
	if err != nil {
		return nil, err
	}
	bs, ok := conv.(BackgroundSuggester)
	if !ok {
		return nil, errors.FailedPreconditionf("background suggestions are not available for D&D %s", tag).
			WithMeta("edition", tag)
	}
	return bs.SuggestBackgrounds(c), nil
}

// ValidateCharacter reports edition-specific problems with c
func (s *Service) ValidateCharacter(c *character.Character, tag string) (*ValidationReport, error) {
	conv, err := s.resolve(c, tag)
	if err != nil {
		return nil, err
	}
	return conv.Validate(c), nil
}

// GenerateUnifiedStats builds a flat stat block. Only 5e supports it.
func (s *Service) GenerateUnifiedStats(c *character.Character, tag string) (*UnifiedStats, error) {
	conv, err := s.resolve(c, tag)
	if err != nil {
		return nil, err
	}
	sg, ok := conv.(StatsGenerator)
	if !ok {
		return nil, errors.FailedPreconditionf("unified stats are not available for D&D %s", tag).
			WithMeta("edition", tag)
	}
	return sg.GenerateUnifiedStats(c), nil
}

// ExportCharacter serializes the converted sheet. An unsupported edition
// is an error; an unsupported format is an unsuccessful result.
func (s *Service) ExportCharacter(ctx context.Context, c *character.Character, tag string, opts ExportOptions) (*ExportResult, error) {
	conv, err := s.resolve(c, tag)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{Format: opts.Format}
	sheet := conv.Convert(c)

	switch opts.Format {
	case FormatJSON:
		doc := exportDocument{Sheet: sheet}
		if opts.IncludeSuggestions {
			doc.Classes = conv.SuggestClasses(c)
			if bs, ok := conv.(BackgroundSuggester); ok {
				doc.Backgrounds = bs.SuggestBackgrounds(c)
			}
		}
		if opts.IncludeValidation {
			doc.Validation = conv.Validate(c)
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return s.failed(ctx, result, "Failed to encode character: "+err.Error()), nil
		}
		result.Success = true
		result.Data = string(data)

	case FormatText:
		text := conv.RenderText(sheet)
		if opts.IncludeSuggestions {
			text += renderSuggestions(conv.SuggestClasses(c))
		}
		result.Success = true
		result.Data = text

	case FormatPDF:
		return s.failed(ctx, result, "PDF export not yet implemented"), nil

	default:
		return s.failed(ctx, result, "Unsupported export format: "+opts.Format), nil
	}

	slog.DebugContext(ctx, "character exported",
		"character_id", c.ID,
		"edition", tag,
		"format", opts.Format,
		"bytes", len(result.Data))
	return result, nil
}

func (s *Service) resolve(c *character.Character, tag string) (Converter, error) {
	conv, err := s.Converter(tag)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	return conv, nil
}

func (s *Service) failed(ctx context.Context, result *ExportResult, msg string) *ExportResult {
	slog.WarnContext(ctx, "character export failed",
		"format", result.Format,
		"reason", msg)
	result.Success = false
	result.Errors = []string{msg}
	return result
}

func renderSuggestions(classes []ClassSuggestion) string {
	w := &textWriter{title: cases.Title(language.English)}
	w.section("class suggestions")
	for _, cs := range classes {
		if cs.Suitability == 0 {
			continue
		}
		w.line(fmt.Sprintf("%s: %s (%d)", cs.Name, cs.Potential, cs.Suitability))
	}
	return w.String()
}
