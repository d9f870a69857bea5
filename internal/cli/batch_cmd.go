package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cutsheet/internal/aggregate"
	"github.com/alexanderramin/cutsheet/internal/cli/formatter"
	"github.com/alexanderramin/cutsheet/internal/compose"
	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/alexanderramin/cutsheet/internal/importer"
	"github.com/spf13/cobra"
)

// batchSpec describes one quick-entry calculator. Columns name the
// x-separated values of an --entry in order.
type batchSpec struct {
	kind     string
	short    string
	columns  []string
	units    string
	workType domain.WorkTypeID
	cuts     bool
	area     bool
}

var batchSpecs = []batchSpec{
	{
		kind:     importer.BatchMultiCut,
		short:    "Total repeated slab, wall or hand saw cuts",
		columns:  []string{"cuts", "length", "depth"},
		units:    "length in feet, depth in inches",
		workType: domain.SlabSawing,
		cuts:     true,
	},
	{
		kind:     importer.BatchChainsaw,
		short:    "Total repeated chainsaw cuts",
		columns:  []string{"cuts", "length", "depth"},
		units:    "length and depth in inches",
		workType: domain.ChainSaw,
		cuts:     true,
	},
	{
		kind:     importer.BatchBreakRemove,
		short:    "Total break and remove areas",
		columns:  []string{"length", "width"},
		units:    "feet",
		workType: domain.BreakAndRemove,
		area:     true,
	},
	{
		kind:     importer.BatchJackhammer,
		short:    "Total jackhammered areas",
		columns:  []string{"length", "width"},
		units:    "feet",
		workType: domain.JackHammering,
		area:     true,
	},
	{
		kind:     importer.BatchBrokk,
		short:    "Total brokk areas and average thickness",
		columns:  []string{"length", "width", "thickness"},
		units:    "length and width in feet, thickness in inches",
		workType: domain.Brokk,
	},
}

func (s batchSpec) pattern() string {
	return strings.ToUpper(strings.Join(s.columns, "x"))
}

// parseEntry reads one "AxBxC" row in the column order of s.
func (s batchSpec) parseEntry(raw string) (importer.BatchEntryImport, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(raw)), "x")
	if len(parts) != len(s.columns) {
		return importer.BatchEntryImport{}, fmt.Errorf("entry %q: want %s", raw, s.pattern())
	}

	var e importer.BatchEntryImport
	for i, col := range s.columns {
		p := strings.TrimSpace(parts[i])
		if col == "cuts" {
			n, err := strconv.Atoi(p)
			if err != nil {
				return importer.BatchEntryImport{}, fmt.Errorf("entry %q: cuts must be a whole number", raw)
			}
			e.Cuts = n
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return importer.BatchEntryImport{}, fmt.Errorf("entry %q: %s must be a number", raw, col)
		}
		switch col {
		case "length":
			e.Length = v
		case "width":
			e.Width = v
		case "depth":
			e.Depth = v
		case "thickness":
			e.Thickness = v
		}
	}
	return e, nil
}

func newBatchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Quick-entry calculators for repeated cuts and areas",
	}
	for _, spec := range batchSpecs {
		cmd.AddCommand(newBatchKindCmd(app, spec))
	}
	return cmd
}

func newBatchKindCmd(app *App, spec batchSpec) *cobra.Command {
	var rawEntries, blades []string
	var workType, removalMethod, equipment string

	cmd := &cobra.Command{
		Use:   spec.kind,
		Short: spec.short,
		Long: fmt.Sprintf(`%s.

Each --entry is %s (%s). Without entries on an
interactive terminal a form collects them one at a time.`, spec.short, spec.pattern(), spec.units),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := spec.workType
			if workType != "" {
				parsed, err := domain.ParseWorkType(strings.ToUpper(workType))
				if err != nil {
					return err
				}
				id = parsed
			}

			b := importer.BatchImport{
				Kind:          spec.kind,
				Blades:        blades,
				RemovalMethod: removalMethod,
				Equipment:     equipment,
			}
			for _, raw := range rawEntries {
				e, err := spec.parseEntry(raw)
				if err != nil {
					return err
				}
				b.Entries = append(b.Entries, e)
			}

			if app.interactive() {
				if spec.kind == importer.BatchMultiCut && workType == "" {
					if err := multiCutTypeForm(&id).Run(); err != nil {
						return err
					}
				}
				if len(b.Entries) == 0 {
					entries, err := runEntryForms(spec)
					if err != nil {
						return err
					}
					b.Entries = entries
				}
				if spec.cuts && len(b.Blades) == 0 {
					var raw string
					if err := bladesForm(&raw).Run(); err != nil {
						return err
					}
					b.Blades = splitList(raw)
				}
			}

			item, err := importer.BatchWorkItem(id, &b)
			if err != nil {
				return err
			}
			final, err := aggregate.Commit(domain.NewWorkOrder(), item)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s from %d entries\n",
				formatter.Dim("Total:"),
				formatter.Bold(domain.FormatQuantity(final.Quantity)), final.Unit, len(b.Entries))
			fmt.Fprintf(out, "  %s\n", compose.ItemLine(final))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rawEntries, "entry", "e", nil, "Batch row as "+spec.pattern()+" (repeatable)")
	if spec.cuts {
		cmd.Flags().StringArrayVar(&blades, "blade", nil, "Blade used (repeatable)")
	}
	if spec.kind == importer.BatchMultiCut {
		cmd.Flags().StringVar(&workType, "type", "", "Saw work type (default SLAB_SAWING)")
	}
	if spec.area {
		cmd.Flags().StringVar(&removalMethod, "removal-method", "", "How the broken concrete was removed")
	}
	if !spec.cuts {
		cmd.Flags().StringVar(&equipment, "equipment", "", "Equipment used")
	}
	return cmd
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
