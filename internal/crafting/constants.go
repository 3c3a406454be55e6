package crafting

// Error message format constants
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log message constants
const (
	LogMsgCreatureAssembled = "Creature assembled"
)
