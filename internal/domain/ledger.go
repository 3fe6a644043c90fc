package domain

// CostLedger accumulates token usage and approximate spend for the lifetime
// of the process. It is owned by the chat session, which is its only writer.
type CostLedger struct {
	TotalTokens int
	TotalCost   float64
}

// Add records tokens for one send priced at pricePer1K dollars per 1000
// tokens and returns the cost of this increment.
func (l *CostLedger) Add(tokens int, pricePer1K float64) float64 {
	l.TotalTokens += tokens
	cost := float64(tokens) / 1000.0 * pricePer1K
	l.TotalCost += cost
	return cost
}
