package commands

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minilang/minic/loader"
)

var (
	verdictsOnly bool
	writeOutput  bool
)

var checkCmd = &cobra.Command{
	Use:   "check <input_file>",
	Short: "Runs the front end over a statement-per-line source file",
	Long: `The check command tokenizes and parses every line of the input file
independently. By default it prints the token classification records for
accepted lines and a tagged failure for rejected ones; with --verdicts it
prints only the per-line verdict (No Error / Lexical Error / Syntax Error).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := loader.NewLocalFS(".")
		analyzer := loader.NewAnalyzer(extraKeywords()...)
		analyzer.SetLogger(slog.Default())

		results, err := analyzer.AnalyzeFile(fs, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		ok := color.New(color.FgGreen)
		bad := color.New(color.FgRed)
		for _, r := range results {
			if verdictsOnly {
				if r.Ok() {
					ok.Fprintln(out, r.Verdict())
				} else {
					bad.Fprintln(out, r.Verdict())
				}
				continue
			}
			if r.Ok() {
				for _, rec := range r.Records() {
					fmt.Fprintln(out, rec)
				}
			} else {
				bad.Fprintf(out, "%s: %v\n", phaseTag(r), r.Err)
			}
		}

		if writeOutput {
			if err := loader.WriteVerdicts(fs, args[0], results); err != nil {
				return err
			}
			fmt.Fprintln(out, "wrote", loader.OutputPath(args[0]))
		}
		return nil
	},
}

func phaseTag(r loader.LineResult) string {
	if r.Phase() == loader.PhaseLexical {
		return "Lexical Error"
	}
	return "Syntax Error"
}

func init() {
	AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&verdictsOnly, "verdicts", false, "Print only per-line verdicts")
	checkCmd.Flags().BoolVarP(&writeOutput, "output", "o", false, "Also write verdicts to <base>_output.txt")
}
