package text

import "unicode/utf8"

// DiffOptions bounds diff computation between unrelated texts.
type DiffOptions struct {
	// MaxLines limits the number of lines fed to the Myers diff.
	// Beyond it a single replacement of the differing region is produced.
	// Zero means DefaultMaxDiffLines; negative disables the limit.
	MaxLines int

	// MaxMemoryMB limits the estimated memory of the Myers trace.
	// Zero means DefaultMaxDiffMemoryMB; negative disables the limit.
	MaxMemoryMB int
}

// Default limits for diff computation.
const (
	DefaultMaxDiffLines    = 10000
	DefaultMaxDiffMemoryMB = 100
)

// DefaultDiffOptions returns default diff options.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{
		MaxLines:    DefaultMaxDiffLines,
		MaxMemoryMB: DefaultMaxDiffMemoryMB,
	}
}

// Diff returns the changes that transform oldStr into newStr.
//
// The common prefix and suffix are trimmed first. The remaining region is
// diffed line by line with the Myers algorithm, and every resulting hunk is
// narrowed to the bytes that actually differ. All boundaries fall on rune
// starts.
func Diff(oldStr, newStr string, opts DiffOptions) []TextChange {
	if oldStr == newStr {
		return nil
	}

	prefix := commonPrefix(oldStr, newStr)
	suffix := commonSuffix(oldStr[prefix:], newStr[prefix:])
	oldMid := oldStr[prefix : len(oldStr)-suffix]
	newMid := newStr[prefix : len(newStr)-suffix]

	whole := []TextChange{{Span: NewSpan(prefix, len(oldMid)), NewText: newMid}}
	if oldMid == "" || newMid == "" {
		return whole
	}

	oldLines := splitKeepEnds(oldMid)
	newLines := splitKeepEnds(newMid)
	if len(oldLines) == 1 && len(newLines) == 1 {
		return whole
	}
	if exceedsLimits(len(oldLines), len(newLines), opts) {
		return whole
	}

	ops := myersDiff(oldLines, newLines)

	var changes []TextChange
	var oldPos, newPos int
	var hunkOld, hunkNew int
	inHunk := false

	flush := func() {
		if !inHunk {
			return
		}
		inHunk = false
		oldSeg := oldMid[hunkOld:oldPos]
		newSeg := newMid[hunkNew:newPos]
		p := commonPrefix(oldSeg, newSeg)
		sfx := commonSuffix(oldSeg[p:], newSeg[p:])
		c := TextChange{
			Span:    NewSpan(prefix+hunkOld+p, len(oldSeg)-p-sfx),
			NewText: newSeg[p : len(newSeg)-sfx],
		}
		if !c.IsNoOp() {
			changes = append(changes, c)
		}
	}

	for _, op := range ops {
		switch op.kind {
		case opEqual:
			flush()
			oldPos += len(oldLines[op.oldIndex])
			newPos += len(newLines[op.newIndex])
		case opDelete:
			if !inHunk {
				inHunk, hunkOld, hunkNew = true, oldPos, newPos
			}
			oldPos += len(oldLines[op.oldIndex])
		case opInsert:
			if !inHunk {
				inHunk, hunkOld, hunkNew = true, oldPos, newPos
			}
			newPos += len(newLines[op.newIndex])
		}
	}
	flush()

	return changes
}

// exceedsLimits reports whether an n-by-m line diff is too large to run.
func exceedsLimits(n, m int, opts DiffOptions) bool {
	maxLines := opts.MaxLines
	if maxLines == 0 {
		maxLines = DefaultMaxDiffLines
	}
	if maxLines > 0 && (n > maxLines || m > maxLines) {
		return true
	}

	// The trace keeps one V vector of 2*(n+m)+1 ints per edit distance step,
	// and the edit distance is at most n+m.
	maxMemMB := opts.MaxMemoryMB
	if maxMemMB == 0 {
		maxMemMB = DefaultMaxDiffMemoryMB
	}
	if maxMemMB > 0 {
		maxD := int64(n + m)
		estimatedMB := maxD * (2*maxD + 1) * 8 / (1024 * 1024)
		if estimatedMB > int64(maxMemMB) {
			return true
		}
	}
	return false
}

// commonPrefix returns the length of the longest common prefix of a and b
// that ends on a rune boundary in both.
func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	p := 0
	for p < n && a[p] == b[p] {
		p++
	}
	for p > 0 && !(runeBoundary(a, p) && runeBoundary(b, p)) {
		p--
	}
	return p
}

// commonSuffix returns the length of the longest common suffix of a and b
// that starts on a rune boundary.
func commonSuffix(a, b string) int {
	n := min(len(a), len(b))
	s := 0
	for s < n && a[len(a)-1-s] == b[len(b)-1-s] {
		s++
	}
	for s > 0 && !utf8.RuneStart(a[len(a)-s]) {
		s--
	}
	return s
}

func runeBoundary(s string, i int) bool {
	return i == len(s) || utf8.RuneStart(s[i])
}

// splitKeepEnds splits s after every '\n', keeping the terminators, so the
// pieces concatenate back to s.
func splitKeepEnds(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

type opKind uint8

const (
	opEqual opKind = iota
	opInsert
	opDelete
)

// lineOp is a single step of a line edit script.
type lineOp struct {
	kind     opKind
	oldIndex int
	newIndex int
}

// myersDiff returns the shortest edit script turning oldLines into newLines.
func myersDiff(oldLines, newLines []string) []lineOp {
	n := len(oldLines)
	m := len(newLines)

	if n == 0 && m == 0 {
		return nil
	}
	if n == 0 {
		ops := make([]lineOp, m)
		for i := range m {
			ops[i] = lineOp{kind: opInsert, newIndex: i}
		}
		return ops
	}
	if m == 0 {
		ops := make([]lineOp, n)
		for i := range n {
			ops[i] = lineOp{kind: opDelete, oldIndex: i}
		}
		return ops
	}

	maxD := n + m
	offset := maxD // V[-max..max] maps to v[0..2*max]
	v := make([]int, 2*maxD+1)

	var trace [][]int

outer:
	for d := 0; d <= maxD; d++ {
		// Snapshot the state left by step d-1; backtracking reads it.
		snap := make([]int, len(v))
		copy(snap, v)
		trace = append(trace, snap)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k

			for x < n && y < m && oldLines[x] == newLines[y] {
				x++
				y++
			}

			v[offset+k] = x

			if x >= n && y >= m {
				break outer
			}
		}
	}

	return backtrack(trace, n, m, offset)
}

// backtrack walks the trace from (n, m) back to the origin and returns the
// edit script in forward order.
func backtrack(trace [][]int, n, m, offset int) []lineOp {
	x, y := n, m
	var ops []lineOp

	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}

		prevX := v[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			ops = append(ops, lineOp{kind: opEqual, oldIndex: x, newIndex: y})
		}

		if d > 0 {
			if x > prevX {
				x--
				ops = append(ops, lineOp{kind: opDelete, oldIndex: x})
			} else {
				y--
				ops = append(ops, lineOp{kind: opInsert, newIndex: y})
			}
		}
	}

	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
	return ops
}
