package window

import "errors"

var errEmptyCoeffs = errors.New("window coefficients must not be empty")
