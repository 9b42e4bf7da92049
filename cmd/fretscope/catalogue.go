package main

import (
	"fmt"

	"github.com/cwbudde/algo-fretboard/measure/guitar"
	"github.com/spf13/cobra"
)

type catalogueReport struct {
	Notes []guitar.Note `json:"notes" yaml:"notes"`
}

func newCatalogueCmd(a *app) *cobra.Command {
	var (
		str       int
		freq      float64
		tolerance float64
	)

	cmd := &cobra.Command{
		Use:     "catalogue",
		Aliases: []string{"catalog"},
		Short:   "List the fretboard note table",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes := guitar.AllNotes()
			switch {
			case str != 0:
				notes = guitar.NotesByString(str)
				if notes == nil {
					return fmt.Errorf("string must be between 1 and %d: %d", guitar.Strings, str)
				}
			case cmd.Flags().Changed("frequency"):
				notes = guitar.NotesByFrequency(freq, tolerance)
				if len(notes) == 0 {
					return fmt.Errorf("no fretboard position within %g Hz of %g Hz", tolerance, freq)
				}
			}
			report := catalogueReport{Notes: notes}
			return a.write(report, report.table)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&str, "string", "s", 0, "only list this string (1 = low E, 6 = high E)")
	f.Float64VarP(&freq, "frequency", "f", 0, "only list positions playing this frequency in Hz")
	f.Float64Var(&tolerance, "tolerance", 0.5, "frequency match tolerance in Hz")
	cmd.MarkFlagsMutuallyExclusive("string", "frequency")
	return cmd
}

func (r catalogueReport) table(t *tableWriter) {
	t.printf("STRING\tFRET\tNOTE\tFREQ (Hz)\n")
	for _, n := range r.Notes {
		t.printf("%d\t%d\t%s\t%.0f\n", n.String, n.Fret, n.Name, n.Frequency)
	}
}
