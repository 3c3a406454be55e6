package market

// Error message format constants
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log message constants
const (
	LogMsgListingCreated   = "Listing created"
	LogMsgListingCancelled = "Listing cancelled"
	LogMsgTradeSettled     = "Trade settled"
)
