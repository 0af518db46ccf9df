package model

import (
	"errors"

	"encore.dev/beta/errs"
)

// ErrorKind classifies every failure surfaced by the evolution service.
type ErrorKind string

const (
	KindInvalidRequest ErrorKind = "invalid_request"
	KindResourceBusy   ErrorKind = "resource_busy"
	KindNotFound       ErrorKind = "not_found"
	KindTimeout        ErrorKind = "timeout"
	KindPartialFailure ErrorKind = "partial_failure"
	KindInternal       ErrorKind = "internal"
)

// ErrorDetails is attached to every *errs.Error produced by this service.
type ErrorDetails struct {
	Kind    ErrorKind `json:"kind"`
	AssetID uint64    `json:"asset_id,omitempty"`
	BurnTx  string    `json:"burn_tx,omitempty"`
	MintTx  string    `json:"mint_tx,omitempty"`
}

func (ErrorDetails) ErrDetails() {}

var kindCodes = map[ErrorKind]errs.ErrCode{
	KindInvalidRequest: errs.InvalidArgument,
	KindResourceBusy:   errs.Aborted,
	KindNotFound:       errs.NotFound,
	KindTimeout:        errs.DeadlineExceeded,
	KindPartialFailure: errs.DataLoss,
	KindInternal:       errs.Internal,
}

// NewError builds an API error of the given kind.
func NewError(kind ErrorKind, message string) *errs.Error {
	return NewErrorWithDetails(ErrorDetails{Kind: kind}, message)
}

func NewErrorWithDetails(details ErrorDetails, message string) *errs.Error {
	code, ok := kindCodes[details.Kind]
	if !ok {
		code = errs.Internal
	}
	return &errs.Error{Code: code, Message: message, Details: details}
}

func InvalidRequest(message string) *errs.Error { return NewError(KindInvalidRequest, message) }
func ResourceBusy(message string) *errs.Error   { return NewError(KindResourceBusy, message) }
func NotFound(message string) *errs.Error       { return NewError(KindNotFound, message) }
func Timeout(message string) *errs.Error        { return NewError(KindTimeout, message) }
func Internal(message string) *errs.Error       { return NewError(KindInternal, message) }

// KindOf recovers the ErrorKind of err. Errors that carry no details are
// classified by their errs code, anything else is internal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var e *errs.Error
	if !errors.As(err, &e) {
		return KindInternal
	}
	if d, ok := e.Details.(ErrorDetails); ok && d.Kind != "" {
		return d.Kind
	}
	switch e.Code {
	case errs.InvalidArgument, errs.FailedPrecondition, errs.OutOfRange:
		return KindInvalidRequest
	case errs.Aborted, errs.AlreadyExists, errs.ResourceExhausted:
		return KindResourceBusy
	case errs.NotFound:
		return KindNotFound
	case errs.DeadlineExceeded:
		return KindTimeout
	case errs.DataLoss:
		return KindPartialFailure
	default:
		return KindInternal
	}
}
