package errors

// Error codes for the mediator contracts. Keep stable; used across the core,
// the registry, and forwarder adapters.
const (
	ErrCodeHandlerExists        = "mediator.handler_exists"
	ErrCodeHandlerNotFound      = "mediator.handler_not_found"
	ErrCodeAmbiguousHandler     = "mediator.handler_ambiguous"
	ErrCodeHandlerTypeMismatch  = "mediator.handler_type_mismatch"
	ErrCodeStrategyMissing      = "mediator.strategy_missing"
	ErrCodeForwardNotConfigured = "mediator.forward_not_configured"
	ErrCodeForwardFailed        = "mediator.forward_failed"
	ErrCodeSerializationFailed  = "mediator.serialization_failed"
)

// Code returns an error value that carries only a code string.
// It implements error by returning the code string in Error().
func Code(code string) error { return codedError(code) }

type codedError string

func (e codedError) Error() string { return string(e) }

var (
	ErrHandlerExists        = Code(ErrCodeHandlerExists)
	ErrHandlerNotFound      = Code(ErrCodeHandlerNotFound)
	ErrAmbiguousHandler     = Code(ErrCodeAmbiguousHandler)
	ErrHandlerTypeMismatch  = Code(ErrCodeHandlerTypeMismatch)
	ErrStrategyMissing      = Code(ErrCodeStrategyMissing)
	ErrForwardNotConfigured = Code(ErrCodeForwardNotConfigured)
	ErrForwardFailed        = Code(ErrCodeForwardFailed)
	ErrSerializationFailed  = Code(ErrCodeSerializationFailed)
)
