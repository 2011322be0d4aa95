package constants

// Currency codes a purchase order can be denominated in.
const (
	CurrencyUSD = "USD"
	CurrencyDOP = "DOP"
)
