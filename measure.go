package wbs

import (
	"math"
	"time"
)

// Category distinguishes real measurements from objectives (targets).
type Category int

const (
	CategoryMeasurement Category = 1
	CategoryObjective   Category = 2
)

func (c Category) String() string {
	switch c {
	case CategoryMeasurement:
		return "measurement"
	case CategoryObjective:
		return "objective"
	default:
		return "unknown"
	}
}

// Attribution describes how a measure group was associated with the user.
type Attribution int

const (
	// AttribDeviceOwner: captured by a device, unambiguously this user's.
	AttribDeviceOwner Attribution = 0
	// AttribDeviceAmbiguous: captured by a device, may belong to several users.
	AttribDeviceAmbiguous Attribution = 1
	// AttribManual: entered manually by this user.
	AttribManual Attribution = 2
	// AttribManualAtCreation: entered manually at account creation, accuracy
	// not guaranteed.
	AttribManualAtCreation Attribution = 4
)

// String returns the human-readable label published by the service
// documentation, verbatim.
func (a Attribution) String() string {
	switch a {
	case AttribDeviceOwner:
		return "Captured by device, belongs to this user"
	case AttribDeviceAmbiguous:
		return "Captured by device, belongs others users as well"
	case AttribManual:
		return "Entered manually, belongs to this user"
	case AttribManualAtCreation:
		return "Entered manually during creating, not accurate"
	default:
		return "unknown"
	}
}

// MeasureType identifies what a measure's value means.
type MeasureType int

const (
	MeasureWeight        MeasureType = 1
	MeasureHeight        MeasureType = 4
	MeasureFatFreeMass   MeasureType = 5
	MeasureFatRatio      MeasureType = 6
	MeasureFatMassWeight MeasureType = 8
)

func (t MeasureType) String() string {
	switch t {
	case MeasureWeight:
		return "Weight"
	case MeasureHeight:
		return "Height"
	case MeasureFatFreeMass:
		return "Fat Free Mass"
	case MeasureFatRatio:
		return "Fat Ratio"
	case MeasureFatMassWeight:
		return "Fat Mass Weight"
	default:
		return "unknown"
	}
}

// Unit returns the physical unit suffix for the type.
func (t MeasureType) Unit() string {
	switch t {
	case MeasureWeight, MeasureFatFreeMass, MeasureFatMassWeight:
		return "kg"
	case MeasureHeight:
		return "meter"
	case MeasureFatRatio:
		return "%"
	default:
		return "unknown"
	}
}

// Measure is a single typed reading in fixed-point encoding: the raw integer
// value scaled by a power-of-ten exponent (the service's "unit" field).
// Measures are immutable after deserialization.
type Measure struct {
	Type     MeasureType `json:"type"`
	Value    int64       `json:"value"`
	Exponent int         `json:"unit"`
}

// PhysicalValue returns Value × 10^Exponent, e.g. value 720 with exponent -1
// is 72.0 kg.
func (m Measure) PhysicalValue() float64 {
	return float64(m.Value) * math.Pow10(m.Exponent)
}

// MeasureGroup is a dated collection of measures captured together. The
// measure order is the server-returned order and is meaningful for display.
// Groups are immutable after deserialization.
type MeasureGroup struct {
	GroupID     int64       `json:"grpid"`
	Attribution Attribution `json:"attrib"`
	Date        int64       `json:"date"` // epoch seconds
	Category    Category    `json:"category"`
	Measures    []Measure   `json:"measures"`
}

// Time returns the capture date as a time.Time.
func (g *MeasureGroup) Time() time.Time {
	return time.Unix(g.Date, 0)
}
