package hmm

import (
	"bufio"
	"fmt"
	"io"
)

// MostLikelyPath decodes the maximum-likelihood hidden state sequence for
// the given observations using the Viterbi recurrence. Decoding starts from
// StartState, which is excluded from the returned path; ties break toward
// the lowest-numbered state. The second return value is the probability of
// the decoded path.
func (m *Model) MostLikelyPath(obs []int) ([]int, float64, error) {
	if len(obs) == 0 {
		return nil, 0, fmt.Errorf("empty observation sequence")
	}
	startIdx, ok := m.stateIdx[m.StartState]
	if !ok {
		return nil, 0, fmt.Errorf("start state %d not in model", m.StartState)
	}

	obsIds := make([]int, len(obs))
	for t, o := range obs {
		idx, ok := m.obsIdx[o]
		if !ok {
			return nil, 0, fmt.Errorf("unknown observable %d", o)
		}
		obsIds[t] = idx
	}

	// hidden is every state except the start state
	var hidden []int
	for _, s := range m.States {
		if s != m.StartState {
			hidden = append(hidden, s)
		}
	}
	if len(hidden) == 0 {
		return nil, 0, fmt.Errorf("model has no states beyond the start state")
	}

	T := len(obs)
	prob := make([]map[int]float64, T)
	back := make([]map[int]int, T)
	for t := range prob {
		prob[t] = make(map[int]float64, len(hidden))
		back[t] = make(map[int]int, len(hidden))
	}

	for _, s := range hidden {
		i := m.stateIdx[s]
		prob[0][s] = m.A[startIdx][i] * m.B[i][obsIds[0]]
		back[0][s] = m.StartState
	}

	for t := 1; t < T; t++ {
		for _, cur := range hidden {
			ci := m.stateIdx[cur]
			best, bestPrev := -1.0, hidden[0]
			for _, prev := range hidden {
				pi := m.stateIdx[prev]
				p := prob[t-1][prev] * m.A[pi][ci] * m.B[ci][obsIds[t]]
				if p > best {
					best = p
					bestPrev = prev
				}
			}
			prob[t][cur] = best
			back[t][cur] = bestPrev
		}
	}

	final, finalProb := hidden[0], prob[T-1][hidden[0]]
	for _, s := range hidden[1:] {
		if prob[T-1][s] > finalProb {
			final, finalProb = s, prob[T-1][s]
		}
	}

	path := make([]int, T)
	path[T-1] = final
	for t := T - 1; t > 0; t-- {
		path[t-1] = back[t][path[t]]
	}
	return path, finalProb, nil
}

// DecodeTests runs batch decoding over a test file: the first line is the
// test count, then each test is a pair of lines, the observation count
// followed by the observations themselves. Returns one decoded path per
// test.
func (m *Model) DecodeTests(r io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nTests, err := readCount(scanner)
	if err != nil {
		return nil, err
	}

	paths := make([][]int, 0, nTests)
	for i := 0; i < nTests; i++ {
		if _, err := readCount(scanner); err != nil {
			return nil, fmt.Errorf("test %d length: %w", i+1, err)
		}
		obs, err := readIntLine(scanner)
		if err != nil {
			return nil, fmt.Errorf("test %d observations: %w", i+1, err)
		}
		path, _, err := m.MostLikelyPath(obs)
		if err != nil {
			return nil, fmt.Errorf("test %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
