package tbf

import "strings"

type TransportType string

const (
	TransportTypeBus     TransportType = "bus"
	TransportTypeTrain                 = "train"
	TransportTypeAir                   = "air"
	TransportTypeUnknown               = "unknown"
)

func TransportTypeFromString(value string) TransportType {
	switch strings.ToLower(value) {
	case "bus":
		return TransportTypeBus
	case "train":
		return TransportTypeTrain
	case "air":
		return TransportTypeAir
	}

	return TransportTypeUnknown
}
