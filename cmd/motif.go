package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"genviz/internal/motif"
)

func newMotifCmd(a *app) *cobra.Command {
	var (
		index    int
		header   string
		jsonMode bool
	)
	cmd := &cobra.Command{
		Use:   "motif <fasta> <pattern>",
		Short: "Search a record for a motif",
		Long: `Search a record for a motif

The pattern is a case-insensitive regular expression (RE2 syntax), e.g. ATG
or TATA.*. Matches never overlap: each search resumes after the previous
match. One "position<TAB>text" line is printed per match, positions are
zero-based.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.readRecords(args[0])
			if err != nil {
				return err
			}
			rec, err := selectRecord(records, index, header)
			if err != nil {
				return err
			}
			matches, err := motif.Find(rec.Sequence, args[1])
			if err != nil {
				return err
			}
			a.logger.Info("motif search", "header", rec.Header, "pattern", args[1], "matches", len(matches))

			out := cmd.OutOrStdout()
			if jsonMode {
				b, err := json.MarshalIndent(matches, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(out, "%d\t%s\n", m.Position, m.Text)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", 0, "zero-based index of the record to search")
	cmd.Flags().StringVar(&header, "header", "", "search the record with this header (or header prefix)")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "print matches as a JSON array")
	return cmd
}
