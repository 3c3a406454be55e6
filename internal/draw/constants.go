package draw

// Error message format constants
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgRandomFailed            = "failed to read random source: %w"
)

// Log message constants
const (
	LogMsgDrawCompleted = "Reward draw completed"
)
