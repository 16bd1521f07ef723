// Package hmm estimates a hidden Markov model from frequency counts over
// labeled runs and decodes maximum-likelihood state paths. It is a
// self-contained numeric component and shares no code or data with the
// compiler front end.
package hmm

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Model holds the frequency-estimated transition matrix A (state x state)
// and emission matrix B (state x observable). Rows and columns follow
// States and Observables in ascending order.
type Model struct {
	States      []int
	Observables []int
	A           [][]float64
	B           [][]float64

	// StartState is the designated initial hidden state; its outgoing
	// transition row seeds decoding. Defaults to state 0.
	StartState int

	stateIdx map[int]int
	obsIdx   map[int]int
}

// Train builds a Model from a dataset: the first line is the run count N,
// followed by N pairs of lines, each pair a state sequence and its
// observation sequence (whitespace-separated integers).
func Train(r io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nRuns, err := readCount(scanner)
	if err != nil {
		return nil, err
	}

	transCounts := map[int]map[int]int{}
	emissCounts := map[int]map[int]int{}
	stateCounts := map[int]int{}
	stateSet := map[int]bool{}
	obsSet := map[int]bool{}

	for run := 0; run < nRuns; run++ {
		states, err := readIntLine(scanner)
		if err != nil {
			return nil, fmt.Errorf("run %d states: %w", run+1, err)
		}
		obs, err := readIntLine(scanner)
		if err != nil {
			return nil, fmt.Errorf("run %d observations: %w", run+1, err)
		}

		for i := 0; i+1 < len(states); i++ {
			bump(transCounts, states[i], states[i+1])
		}
		// Emissions pair states with observations positionally; a longer
		// sequence's tail is ignored.
		n := min(len(states), len(obs))
		for i := 0; i < n; i++ {
			bump(emissCounts, states[i], obs[i])
			stateCounts[states[i]]++
		}
		for _, s := range states {
			stateSet[s] = true
		}
		for _, o := range obs {
			obsSet[o] = true
		}
	}

	m := &Model{
		States:      sortedKeys(stateSet),
		Observables: sortedKeys(obsSet),
	}
	m.stateIdx = indexOf(m.States)
	m.obsIdx = indexOf(m.Observables)

	n, k := len(m.States), len(m.Observables)
	m.A = newMatrix(n, n)
	m.B = newMatrix(n, k)

	for _, from := range m.States {
		total := 0
		for _, to := range m.States {
			total += transCounts[from][to]
		}
		if total == 0 {
			continue
		}
		i := m.stateIdx[from]
		for _, to := range m.States {
			m.A[i][m.stateIdx[to]] = float64(transCounts[from][to]) / float64(total)
		}
	}

	for _, s := range m.States {
		total := stateCounts[s]
		if total == 0 {
			continue
		}
		i := m.stateIdx[s]
		for _, o := range m.Observables {
			m.B[i][m.obsIdx[o]] = float64(emissCounts[s][o]) / float64(total)
		}
	}
	return m, nil
}

// String renders the transition rows then the emission rows, five decimal
// places, space-separated.
func (m *Model) String() string {
	var sb strings.Builder
	writeMatrix(&sb, m.A)
	writeMatrix(&sb, m.B)
	return sb.String()
}

func writeMatrix(sb *strings.Builder, mat [][]float64) {
	for _, row := range mat {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(sb, "%.5f", v)
		}
		sb.WriteByte('\n')
	}
}

func readCount(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("dataset is empty")
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("invalid count line %q: %w", scanner.Text(), err)
	}
	return n, nil
}

func readIntLine(scanner *bufio.Scanner) ([]int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected end of dataset")
	}
	fields := strings.Fields(scanner.Text())
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func bump(counts map[int]map[int]int, a, b int) {
	row, ok := counts[a]
	if !ok {
		row = map[int]int{}
		counts[a] = row
	}
	row[b]++
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func indexOf(vals []int) map[int]int {
	out := make(map[int]int, len(vals))
	for i, v := range vals {
		out[v] = i
	}
	return out
}

func newMatrix(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	return out
}
