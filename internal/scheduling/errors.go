package scheduling

import "errors"

// ErrInvalidTimeFormat время окна не соответствует формату "h:mmAM/PM"
var ErrInvalidTimeFormat = errors.New("invalid time format")
