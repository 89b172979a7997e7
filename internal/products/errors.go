package products

import "errors"

var ErrStatusRequired = errors.New("status is required")
