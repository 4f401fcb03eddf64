package export

import "errors"

var ErrEmpty = errors.New("no data to export")
