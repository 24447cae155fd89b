package subm

import (
	"fmt"
	"net/http"

	"github.com/topfive/backend/srvcerror"
)

const (
	ErrCodeEmptyField        = "empty_field"
	ErrCodeTooLong           = "too_long"
	ErrCodeInvalidCharacters = "invalid_characters"
	ErrCodeCapacityExceeded  = "capacity_exceeded"
)

func newErrEmptyField(fieldName string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmptyField,
		fmt.Sprintf("%s cannot be empty", fieldName),
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrTooLong(fieldName string, maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTooLong,
		fmt.Sprintf("%s exceeds maximum length of %d characters", fieldName, maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInvalidCharacters(fieldName string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCharacters,
		fmt.Sprintf("%s contains invalid characters", fieldName),
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrCapacityExceeded() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCapacityExceeded,
		"Submission limit reached. Please contact administrator.",
	).SetHttpStatusCode(http.StatusServiceUnavailable)
}
