package apperror

import "errors"

var ErrPaymentNotFound = errors.New("ErrPaymentNotFound")
