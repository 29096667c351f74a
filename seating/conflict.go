package seating

// Conflict returns the labels of proposed that are already reserved, in
// row/number order with duplicates removed. A non-empty result means the
// booking must be rejected without touching the store; the caller is
// responsible for recomputing reserved from the record store immediately
// before this check, since the fetch-to-insert window is the only place
// two clients can race.
func Conflict(proposed []string, reserved map[string]struct{}) []string {
	var overlap []string
	seen := make(map[string]struct{}, len(proposed))
	for _, label := range proposed {
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		if _, taken := reserved[label]; taken {
			overlap = append(overlap, label)
		}
	}
	SortLabels(overlap)
	return overlap
}
