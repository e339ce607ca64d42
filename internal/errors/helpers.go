package errors

import (
	"errors"
)

// As reports whether err has an *Error in its chain and stores it in target
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// GetCode returns the code of the outermost *Error in err's chain. nil is
// OK and an uncoded error is Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the meta of the outermost *Error in err's chain
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage returns the message without code or cause, falling back to
// err.Error() for uncoded errors
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

func IsDataLoss(err error) bool {
	return GetCode(err) == CodeDataLoss
}
