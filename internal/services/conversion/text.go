package conversion

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// textWriter lays out the fixed plain-text sheet. Headings are title-cased;
// character-provided values are written verbatim.
type textWriter struct {
	b     strings.Builder
	sheet *Sheet
	title cases.Caser
}

func newTextWriter(banner string, sheet *Sheet) *textWriter {
	w := &textWriter{sheet: sheet, title: cases.Title(language.English)}
	w.line(banner)
	w.line("")
	w.field("name", sheet.Name)
	race := sheet.Race
	if sheet.Subrace != "" {
		race = fmt.Sprintf("%s (%s)", sheet.Race, sheet.Subrace)
	}
	w.field("race", race)
	if sheet.Culture != "" {
		w.field("culture", sheet.Culture)
	}
	if sheet.SocialStatus != "" {
		w.field("social status", sheet.SocialStatus)
	}
	if sheet.Age > 0 {
		w.field("age", fmt.Sprintf("%d", sheet.Age))
	}
	w.field("level", fmt.Sprintf("%d", sheet.Level))
	if sheet.Alignment != "" {
		w.field("alignment", sheet.Alignment)
	}
	if sheet.SuggestedClass != "" {
		w.field("suggested class", sheet.SuggestedClass)
	}
	return w
}

func (w *textWriter) line(s string) {
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *textWriter) field(label, value string) {
	w.line(fmt.Sprintf("%s: %s", w.title.String(label), value))
}

func (w *textWriter) section(name string) {
	w.line("")
	w.line(fmt.Sprintf("--- %s ---", w.title.String(name)))
}

func (w *textWriter) list(label string, items []string) {
	if len(items) == 0 {
		return
	}
	w.field(label, strings.Join(items, ", "))
}

func (w *textWriter) abilities() {
	w.section("ability scores")
	for _, a := range w.sheet.AbilityScores {
		w.line(fmt.Sprintf("%-13s %2d (%+d)", a.Name, a.Score, a.Modifier))
	}
}

func (w *textWriter) skills(format func(SheetSkill) string) {
	w.section("skills")
	if len(w.sheet.Skills) == 0 {
		w.line("None")
		return
	}
	for _, s := range w.sheet.Skills {
		w.line(format(s))
	}
}

func (w *textWriter) personality() {
	p := w.sheet.Personality
	if len(p.Traits)+len(p.Ideals)+len(p.Bonds)+len(p.Flaws) == 0 {
		return
	}
	w.section("personality")
	w.list("traits", p.Traits)
	w.list("ideals", p.Ideals)
	w.list("bonds", p.Bonds)
	w.list("flaws", p.Flaws)
}

// common writes the sections both editions share
func (w *textWriter) common() {
	if len(w.sheet.RacialTraits) > 0 {
		w.section("racial traits")
		for _, t := range w.sheet.RacialTraits {
			w.line("- " + t)
		}
	}
	if len(w.sheet.Occupations) > 0 {
		w.section("occupations")
		for _, o := range w.sheet.Occupations {
			w.line("- " + o)
		}
	}
	if len(w.sheet.History) > 0 {
		w.section("history")
		for _, h := range w.sheet.History {
			w.line("- " + h)
		}
	}
	w.list("languages", w.sheet.Languages)
	w.list("equipment", w.sheet.Equipment)
	w.list("special abilities", w.sheet.SpecialAbilities)
}

func (w *textWriter) String() string {
	return w.b.String()
}
