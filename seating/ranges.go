package seating

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Seat ranges are the persisted form of a booking's seats: either a single
// label ("C01") or an inclusive same-row run ("C01 - C03"). Expansion and
// compaction are pure string transforms and deliberately do not depend on
// any Layout; records may describe seats a layout revision no longer has.

const rangeSeparator = " - "

// splitLabel parses "C08" into ("C", 8). ok is false for anything that is
// not a row letter followed by one or two digits.
func splitLabel(s string) (row string, num int, ok bool) {
	if !labelPattern.MatchString(s) {
		return "", 0, false
	}
	i := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	num, err := strconv.Atoi(s[i:])
	if err != nil {
		return "", 0, false
	}
	return s[:i], num, true
}

func formatSeat(row string, num int) string {
	return fmt.Sprintf("%s%02d", row, num)
}

// ExpandRanges turns range notation into individual seat labels. Each entry
// may carry several comma-separated parts. A part with a "-" expands to
// every seat from start to end when both ends share a row; ends on
// different rows fall back to two standalone seats instead of failing the
// whole booking. Single seats are normalized to two-digit form ("C1" ->
// "C01"). Parts that do not parse as labels are skipped.
func ExpandRanges(ranges []string) []string {
	var out []string
	for _, entry := range ranges {
		for _, part := range strings.Split(entry, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if !strings.Contains(part, "-") {
				if row, num, ok := splitLabel(part); ok {
					out = append(out, formatSeat(row, num))
				}
				continue
			}
			ends := strings.SplitN(part, "-", 2)
			startRow, startNum, okStart := splitLabel(strings.TrimSpace(ends[0]))
			endRow, endNum, okEnd := splitLabel(strings.TrimSpace(ends[1]))
			if !okStart || !okEnd {
				continue
			}
			if startRow != endRow {
				out = append(out, formatSeat(startRow, startNum), formatSeat(endRow, endNum))
				continue
			}
			for n := startNum; n <= endNum; n++ {
				out = append(out, formatSeat(startRow, n))
			}
		}
	}
	return out
}

// CompactLabels is the inverse of ExpandRanges for well-formed input: it
// sorts labels by row letter and numeric seat number, deduplicates, and
// folds maximal runs of consecutive same-row seats into "C01 - C03"
// notation. Single seats stay as-is. Labels that do not parse are dropped.
func CompactLabels(labels []string) []string {
	byRow := make(map[string][]int)
	for _, label := range labels {
		row, num, ok := splitLabel(strings.TrimSpace(label))
		if !ok {
			continue
		}
		byRow[row] = append(byRow[row], num)
	}

	rows := make([]string, 0, len(byRow))
	for row := range byRow {
		rows = append(rows, row)
	}
	sort.Strings(rows)

	var out []string
	for _, row := range rows {
		nums := byRow[row]
		sort.Ints(nums)
		start, prev := nums[0], nums[0]
		flush := func() {
			if start == prev {
				out = append(out, formatSeat(row, start))
			} else {
				out = append(out, formatSeat(row, start)+rangeSeparator+formatSeat(row, prev))
			}
		}
		for _, n := range nums[1:] {
			if n == prev || n == prev+1 {
				if n == prev+1 {
					prev = n
				}
				continue
			}
			flush()
			start, prev = n, n
		}
		flush()
	}
	return out
}

// SortLabels orders labels by row letter then numeric seat number, so that
// "C02" sorts before "C10". Unparseable labels sort last, lexically.
func SortLabels(labels []string) {
	sort.Slice(labels, func(i, j int) bool {
		ri, ni, oki := splitLabel(labels[i])
		rj, nj, okj := splitLabel(labels[j])
		if !oki || !okj {
			if oki != okj {
				return oki
			}
			return labels[i] < labels[j]
		}
		if ri != rj {
			return ri < rj
		}
		return ni < nj
	})
}
