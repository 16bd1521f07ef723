package commands

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minilang/minic/hmm"
	"github.com/minilang/minic/loader"
)

var hmmWriteOutput bool

var hmmCmd = &cobra.Command{
	Use:   "hmm",
	Short: "Frequency-trained hidden Markov model tools",
}

var hmmTrainCmd = &cobra.Command{
	Use:   "train <dataset_file>",
	Short: "Estimates transition and emission matrices from a dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := loader.NewLocalFS(".")
		model, err := trainFromFile(fs, args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if hmmWriteOutput {
			if err := fs.WriteFile(loader.OutputPath(args[0]), []byte(model.String())); err != nil {
				return err
			}
			fmt.Fprintln(out, "wrote", loader.OutputPath(args[0]))
			return nil
		}
		fmt.Fprint(out, model.String())
		return nil
	},
}

var hmmPredictCmd = &cobra.Command{
	Use:   "predict <dataset_file> <test_file>",
	Short: "Decodes the most likely state path for each test observation sequence",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := loader.NewLocalFS(".")
		model, err := trainFromFile(fs, args[0])
		if err != nil {
			return err
		}
		data, err := fs.ReadFile(args[1])
		if err != nil {
			return err
		}
		paths, err := model.DecodeTests(bytes.NewReader(data))
		if err != nil {
			return err
		}

		var sb strings.Builder
		for _, path := range paths {
			for i, s := range path {
				if i > 0 {
					sb.WriteByte(' ')
				}
				fmt.Fprintf(&sb, "%d", s)
			}
			sb.WriteByte('\n')
		}
		out := cmd.OutOrStdout()
		if hmmWriteOutput {
			if err := fs.WriteFile(loader.OutputPath(args[1]), []byte(sb.String())); err != nil {
				return err
			}
			fmt.Fprintln(out, "wrote", loader.OutputPath(args[1]))
			return nil
		}
		fmt.Fprint(out, sb.String())
		return nil
	},
}

func trainFromFile(fs loader.FileSystem, path string) (*hmm.Model, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return hmm.Train(bytes.NewReader(data))
}

func init() {
	AddCommand(hmmCmd)
	hmmCmd.AddCommand(hmmTrainCmd)
	hmmCmd.AddCommand(hmmPredictCmd)
	hmmCmd.PersistentFlags().BoolVarP(&hmmWriteOutput, "output", "o", false, "Write results to <base>_output.txt instead of stdout")
}
