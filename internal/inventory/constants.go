package inventory

// Log message constants
const (
	LogMsgStockIncremented = "Part stock incremented"
)
