package loader

import (
	"strings"
)

// OutputPath derives the verdict file path the batch mode writes next to its
// input: "<base>_output.txt".
func OutputPath(inputPath string) string {
	base := inputPath
	if idx := strings.LastIndex(base, "."); idx > strings.LastIndex(base, "/") {
		base = base[:idx]
	}
	return base + "_output.txt"
}

// WriteVerdicts writes one verdict per input line to the derived output
// path through fs.
func WriteVerdicts(fs FileSystem, inputPath string, results []LineResult) error {
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r.Verdict())
		sb.WriteString("\n")
	}
	return fs.WriteFile(OutputPath(inputPath), []byte(sb.String()))
}
