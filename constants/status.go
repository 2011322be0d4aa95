package constants

// TableStatus describes the outcome of scanning one page's product table.
type TableStatus string

// Stable values (these exact strings appear in logs).
const (
	TableFound    TableStatus = "FOUND"     // header located, at least one item kept
	TableNoHeader TableStatus = "NO_HEADER" // header token absent; page has no product table
	TableNoItems  TableStatus = "NO_ITEMS"  // header located but no usable item rows
)
