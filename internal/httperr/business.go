package httperr

import (
	"errors"
	"fmt"
)

// BusinessError is a rule violation with a stable code. Detail is for logs
// and is never sent to clients.
type BusinessError struct {
	Code   string
	Detail string
}

func (e BusinessError) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return e.Code + ": " + e.Detail
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func Businessf(code, format string, args ...any) error {
	return BusinessError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// BusinessCode returns the code of a BusinessError anywhere in err's chain.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

func IsBusiness(err error, code string) bool {
	got, ok := BusinessCode(err)
	return ok && got == code
}
