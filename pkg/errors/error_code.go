package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidInput         ErrorCode = 101
	ErrCodeInvalidConfiguration ErrorCode = 102
	ErrCodeMissingParameter     ErrorCode = 103

	// Strategy errors (400-499)
	ErrCodeUnsupportedStrategy   ErrorCode = 403
	ErrCodeStrategyAlreadyExists ErrorCode = 404
	ErrCodeStrategyNotRegistered ErrorCode = 405

	// Run errors (600-699)
	ErrCodeRunCancelled     ErrorCode = 600
	ErrCodeEvaluationFailed ErrorCode = 601

	// Result store errors (700-799)
	ErrCodeStoreFailed          ErrorCode = 700
	ErrCodeStoreVersionMismatch ErrorCode = 701
)
