package squad

// Error message format constants
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log message constants
const (
	LogMsgSlotAssigned = "Squad slot assigned"
)
