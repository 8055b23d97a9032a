package trend

// ============================================================================
// GROUP-BY — Explicit tag partitioning
// ============================================================================
// Grouping produces an ordered sequence of (tag, row indices) pairs rather
// than a bare map, so both the grouping contract and the ordering contract
// are visible to callers. Index lists point into the caller's slice — no
// record is copied.
// ============================================================================

// TagGroup pairs a tag with the indices of its records, in input order.
type TagGroup struct {
	Tag     string
	Indices []int
}

// GroupByTag partitions records by tag. Groups appear in first-seen input
// order; indices within a group preserve input order.
func GroupByTag(records []Record) []TagGroup {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i, r := range records {
		if _, exists := grouped[r.Tag]; !exists {
			order = append(order, r.Tag)
		}
		grouped[r.Tag] = append(grouped[r.Tag], i)
	}

	groups := make([]TagGroup, 0, len(order))
	for _, tag := range order {
		groups = append(groups, TagGroup{Tag: tag, Indices: grouped[tag]})
	}
	return groups
}
