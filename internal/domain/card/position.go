package card

// NextPosition returns the position for a card appended to a column holding
// the given cards: one past the maximum existing position, or 0 when the
// column is empty. Allocation is append-only; a moved card always lands
// last in its target column, and there is no re-compaction.
func NextPosition(cards []Card) int {
	max := -1
	for _, c := range cards {
		if c.Position > max {
			max = c.Position
		}
	}
	return max + 1
}
