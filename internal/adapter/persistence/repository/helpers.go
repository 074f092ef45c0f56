package repository

import "strconv"

// formatAmount renders a BRL amount for a DynamoDB Number attribute.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
