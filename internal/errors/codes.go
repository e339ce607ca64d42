package errors

// Code classifies an Error. The values follow the gRPC status names.
type Code string

const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	// CodeDataLoss marks stored bytes that exist but cannot be decoded
	CodeDataLoss Code = "DATA_LOSS"
)

func (c Code) String() string {
	return string(c)
}
