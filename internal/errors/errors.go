package gerr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrLookbackNotPositive = errors.New("lookback must be a positive number of days")
	ErrLookbackTooLong     = errors.New("lookback exceeds the maximum number of days")
	ErrLookbackMalformed   = errors.New("lookback must be an integer number of days")
)

// Error is a fatal snapshot failure. Code carries the kind: InvalidArgument
// or Unavailable.
type Error struct {
	Code codes.Code
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GRPCStatus lets status.Code and status.FromError see the kind.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Code, e.Error())
}

// InvalidArgument rejects a request before any read happens.
func InvalidArgument(op string, err error) error {
	return &Error{Code: codes.InvalidArgument, Op: op, Err: err}
}

// DataUnavailable reports a failed or timed out read.
func DataUnavailable(op string, err error) error {
	return &Error{Code: codes.Unavailable, Op: op, Err: err}
}

func IsInvalidArgument(err error) bool {
	return status.Code(err) == codes.InvalidArgument
}

func IsDataUnavailable(err error) bool {
	return status.Code(err) == codes.Unavailable
}
