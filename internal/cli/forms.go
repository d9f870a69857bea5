package cli

import (
	"fmt"

	"github.com/alexanderramin/cutsheet/internal/cli/formatter"
	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/alexanderramin/cutsheet/internal/importer"
	"github.com/alexanderramin/cutsheet/internal/quickentry"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cutsheetHuhTheme returns a custom huh theme using the formatter palette.
func cutsheetHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// entryForm collects one batch row and whether another follows.
func entryForm(spec batchSpec, n int, raw *string, more *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Entry %d (%s)", n, spec.pattern())).
				Description(spec.units).
				Placeholder(placeholderFor(spec)).
				Value(raw).
				Validate(func(s string) error {
					e, err := spec.parseEntry(s)
					if err != nil {
						return err
					}
					return validateEntry(spec, e)
				}),
			huh.NewConfirm().
				Title("Add another entry?").
				Affirmative("Yes").
				Negative("Done").
				Value(more),
		),
	).WithTheme(cutsheetHuhTheme()).WithShowHelp(false)
}

// runEntryForms loops entryForm until the user is done.
func runEntryForms(spec batchSpec) ([]importer.BatchEntryImport, error) {
	var entries []importer.BatchEntryImport
	for {
		var raw string
		more := true
		if err := entryForm(spec, len(entries)+1, &raw, &more).Run(); err != nil {
			return nil, err
		}
		e, err := spec.parseEntry(raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		if !more {
			return entries, nil
		}
	}
}

// validateEntry checks a row with the same quick-entry rules the batch
// applies, so the form reports the DimensionError a bad row would raise.
func validateEntry(spec batchSpec, e importer.BatchEntryImport) error {
	return quickEntry(spec.kind, e).Validate()
}

func quickEntry(kind string, e importer.BatchEntryImport) quickentry.Entry {
	switch kind {
	case importer.BatchChainsaw:
		return quickentry.ChainsawEntry{NumCuts: e.Cuts, LengthInches: e.Length, DepthInches: e.Depth}
	case importer.BatchBreakRemove, importer.BatchJackhammer:
		return quickentry.AreaEntry{Length: e.Length, Width: e.Width}
	case importer.BatchBrokk:
		return quickentry.BrokkEntry{Length: e.Length, Width: e.Width, ThicknessInches: e.Thickness}
	default:
		return quickentry.CutEntry{NumCuts: e.Cuts, LengthFeet: e.Length, DepthInches: e.Depth}
	}
}

func placeholderFor(spec batchSpec) string {
	switch len(spec.columns) {
	case 2:
		return "10x4"
	default:
		return "2x10x6"
	}
}

// bladesForm asks for the comma-separated blades used on a cut batch.
func bladesForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Blades Used").
				Description("comma separated").
				Placeholder(`24", 30"`).
				Value(value).
				Validate(func(s string) error {
					if len(splitList(s)) == 0 {
						return domain.ErrNoBlades
					}
					return nil
				}),
		),
	).WithTheme(cutsheetHuhTheme()).WithShowHelp(false)
}

// multiCutTypeForm selects which saw a multi-cut batch belongs to.
func multiCutTypeForm(result *domain.WorkTypeID) *huh.Form {
	var options []huh.Option[domain.WorkTypeID]
	for _, id := range domain.AllWorkTypes {
		if id.IsMultiCut() {
			options = append(options, huh.NewOption(id.Title(), id))
		}
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.WorkTypeID]().
				Title("Saw").
				Options(options...).
				Value(result),
		),
	).WithTheme(cutsheetHuhTheme()).WithShowHelp(false)
}
