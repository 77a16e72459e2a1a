package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidParams = New(BizCodeInvalidParams, http.StatusBadRequest, "invalid params", nil)

	ErrUnknownProduct      = New(BizCodeUnknownProduct, http.StatusNotFound, "unknown product", nil)
	ErrUnsupportedSelector = New(BizCodeUnsupportedSelector, http.StatusBadRequest, "only the 'latest' version selector is supported", nil)

	ErrRetrieval              = New(BizCodeRetrieval, http.StatusBadGateway, "failed to retrieve update feed", nil)
	ErrFeedParse              = New(BizCodeFeedParse, http.StatusBadGateway, "update feed is not a well-formed entry list", nil)
	ErrUnexpectedTriggerShape = New(BizCodeUnexpectedTriggerShape, http.StatusBadGateway, "unexpected trigger shape in feed entry", nil)
	ErrTitleFormat            = New(BizCodeTitleFormat, http.StatusBadGateway, "no version found in feed entry title", nil)
	ErrValueDecode            = New(BizCodeValueDecode, http.StatusBadGateway, "undecodable os version value in feed entry", nil)
	ErrMissingLocalization    = New(BizCodeMissingLocalization, http.StatusBadGateway, "missing localized description in feed entry", nil)
)

type Error struct {
	bizCode  int
	httpCode int
	message  string
	details  any
	internal error
}

func New(bizCode, httpCode int, message string, internal error) *Error {
	return &Error{
		bizCode:  bizCode,
		httpCode: httpCode,
		message:  message,
		internal: internal,
	}
}

func NewUnexpected(msg string, errs ...error) *Error {
	var err error
	if len(errs) != 0 {
		err = errs[0]
	}
	return &Error{
		bizCode:  -1,
		message:  msg,
		httpCode: http.StatusInternalServerError,
		internal: err,
	}
}

func (e *Error) Error() string {

	if e.internal != nil {
		return fmt.Sprintf("%s: %v", e.message, e.internal)
	}

	return e.message
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	return ok && e.bizCode == t.BizCode()
}

func (e *Error) Unwrap() error {
	return e.internal
}

func (e *Error) BizCode() int {
	return e.bizCode
}

func (e *Error) HTTPCode() int {
	return e.httpCode
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Details() any {
	return e.details
}

func (e *Error) Wrap(err error) *Error {
	return &Error{
		bizCode:  e.bizCode,
		httpCode: e.httpCode,
		message:  e.message,
		details:  e.details,
		internal: err,
	}
}

func (e *Error) WithDetails(details any) *Error {

	return &Error{
		bizCode:  e.bizCode,
		httpCode: e.httpCode,
		message:  e.message,
		details:  details,
		internal: e.internal,
	}
}
