// Package einsum - subscript-string parsing.
//
// The accepted grammar is the classic einsum notation: comma-separated
// input terms of single-letter labels, an optional "->" followed by the
// output term, and an optional "..." per term standing for a shared
// broadcast block. Parsing is shape-aware only where ellipses force it to
// be: the width of each "..." is the operand rank minus the explicit
// label count, and every broadcast block must carry the same dimensions.
package einsum

import (
	"fmt"
	"sort"
	"strings"
)

// symbolPool is the replacement alphabet for ellipsis expansion, consumed
// in order; symbols already used by the expression are skipped.
const symbolPool = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// expression is a parsed, ellipsis-expanded subscript string: one term of
// plain letter labels per operand plus the (explicit or inferred) output.
type expression struct {
	inputs []string
	output string
}

// parse validates and normalizes a subscript string against the operand
// shapes. On return every term consists solely of letters, each letter is
// unique within its term, and the output is fully resolved.
//
// Complexity: O(total subscript length + rank sum).
func parse(subscripts string, shapes [][]int) (expression, error) {
	for _, r := range subscripts {
		if !isLabelRune(r) && !strings.ContainsRune(",.->", r) {
			return expression{}, fmt.Errorf("%w: %q", ErrBadSymbol, r)
		}
	}

	inputPart, outputPart, explicit, err := splitArrow(subscripts)
	if err != nil {
		return expression{}, err
	}

	inputs := strings.Split(inputPart, ",")
	if len(inputs) != len(shapes) {
		return expression{}, fmt.Errorf("%w: %d terms, %d operands", ErrOperandCount, len(inputs), len(shapes))
	}

	if strings.Contains(subscripts, ".") {
		inputs, outputPart, err = expandEllipsis(inputs, outputPart, explicit, shapes)
		if err != nil {
			return expression{}, err
		}
	}

	for tnum, term := range inputs {
		if term == "" {
			if len(shapes[tnum]) == 0 {
				continue // scalar operand, empty term is legitimate
			}

			return expression{}, fmt.Errorf("%w: term %d is empty", ErrBadSubscript, tnum)
		}
		if dup := repeatedRune(term); dup != 0 {
			return expression{}, fmt.Errorf("%w: %q in term %d", ErrRepeatedLabel, dup, tnum)
		}
	}

	if !explicit {
		outputPart = implicitOutput(inputs)
	}
	if err := checkOutput(inputs, outputPart); err != nil {
		return expression{}, err
	}

	return expression{inputs: inputs, output: outputPart}, nil
}

// splitArrow separates the input and output halves. A subscript string
// either contains no '-' / '>' at all, or exactly one well-formed "->".
func splitArrow(subscripts string) (in, out string, explicit bool, err error) {
	if !strings.ContainsAny(subscripts, "->") {
		return subscripts, "", false, nil
	}
	if strings.Count(subscripts, "-") != 1 || strings.Count(subscripts, ">") != 1 {
		return "", "", false, fmt.Errorf("%w: malformed arrow", ErrBadSubscript)
	}
	parts := strings.Split(subscripts, "->")
	if len(parts) != 2 {
		return "", "", false, fmt.Errorf("%w: malformed arrow", ErrBadSubscript)
	}

	return parts[0], parts[1], true, nil
}

// expandEllipsis replaces every "..." with concrete labels drawn from the
// unused part of the symbol pool. All broadcast blocks must resolve to the
// same dimensions, and the output must be explicit and carry an ellipsis
// of its own.
func expandEllipsis(inputs []string, output string, explicit bool, shapes [][]int) ([]string, string, error) {
	if !explicit || !strings.Contains(output, "...") {
		return nil, "", fmt.Errorf("%w: ellipsis requires an explicit output containing \"...\"", ErrEllipsis)
	}
	if strings.Count(output, ".") != 3 {
		return nil, "", fmt.Errorf("%w: stray '.' in output", ErrEllipsis)
	}

	// Width and dims of the broadcast block, fixed by the first term that
	// carries an ellipsis; every other carrier must agree exactly.
	var block []int
	haveBlock := false
	for tnum, term := range inputs {
		if !strings.Contains(term, ".") {
			continue
		}
		if strings.Count(term, ".") != 3 || !strings.Contains(term, "...") {
			return nil, "", fmt.Errorf("%w: stray '.' in term %d", ErrEllipsis, tnum)
		}
		width := len(shapes[tnum]) - (len(term) - 3)
		if width < 0 {
			return nil, "", fmt.Errorf("%w: term %d has more labels than operand axes", ErrRankMismatch, tnum)
		}
		head := strings.Index(term, "...")
		dims := shapes[tnum][head : head+width]
		if !haveBlock {
			block = dims
			haveBlock = true
			continue
		}
		if !equalDims(block, dims) {
			return nil, "", fmt.Errorf("%w: broadcast blocks differ across terms", ErrEllipsis)
		}
	}

	if !haveBlock {
		return nil, "", fmt.Errorf("%w: output has an ellipsis but no input term does", ErrEllipsis)
	}

	fresh := unusedSymbols(inputs, output, len(block))
	if fresh == "" && len(block) > 0 {
		return nil, "", fmt.Errorf("%w: no free symbols left for expansion", ErrEllipsis)
	}

	expanded := make([]string, len(inputs))
	for tnum, term := range inputs {
		expanded[tnum] = strings.Replace(term, "...", fresh, 1)
	}

	return expanded, strings.Replace(output, "...", fresh, 1), nil
}

// unusedSymbols returns the first n pool symbols not already used by the
// expression, or "" if the pool runs dry.
func unusedSymbols(inputs []string, output string, n int) string {
	used := strings.Join(inputs, "") + output
	var b strings.Builder
	for _, r := range symbolPool {
		if b.Len() == n {
			break
		}
		if !strings.ContainsRune(used, r) {
			b.WriteRune(r)
		}
	}
	if b.Len() < n {
		return ""
	}

	return b.String()
}

// implicitOutput derives the output term when no "->" is present: every
// label occurring exactly once across the inputs, in ascending symbol
// order.
func implicitOutput(inputs []string) string {
	counts := make(map[rune]int)
	for _, term := range inputs {
		for _, r := range term {
			counts[r]++
		}
	}
	once := make([]rune, 0, len(counts))
	for r, c := range counts {
		if c == 1 {
			once = append(once, r)
		}
	}
	sort.Slice(once, func(i, j int) bool { return once[i] < once[j] })

	return string(once)
}

// checkOutput rejects output terms with repeats or labels no input carries.
func checkOutput(inputs []string, output string) error {
	if dup := repeatedRune(output); dup != 0 {
		return fmt.Errorf("%w: output repeats %q", ErrBadSubscript, dup)
	}
	all := strings.Join(inputs, "")
	for _, r := range output {
		if !strings.ContainsRune(all, r) {
			return fmt.Errorf("%w: output label %q appears in no input", ErrBadSubscript, r)
		}
	}

	return nil
}

// repeatedRune returns the first rune occurring more than once in s, or 0.
func repeatedRune(s string) rune {
	seen := make(map[rune]bool, len(s))
	for _, r := range s {
		if seen[r] {
			return r
		}
		seen[r] = true
	}

	return 0
}

// isLabelRune reports whether r is a legal axis label.
func isLabelRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
