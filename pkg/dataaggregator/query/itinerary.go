package query

import (
	"time"

	"github.com/yatrago/yatrago/pkg/tbf"
)

type Itineraries struct {
	From string
	To   string

	// Date is the requested travel day, normalised to midnight UTC
	Date time.Time

	TransportType tbf.TransportType

	// ClassType is accepted but not yet used to narrow matches
	ClassType string
}
