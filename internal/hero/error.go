package hero

import "errors"

var ErrSectionNotFound = errors.New("hero section not found")
