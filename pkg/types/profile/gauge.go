package profile

type RangeColour int

const (
	RANGE_COLOUR_NONE   RangeColour = 0
	RANGE_COLOUR_GREEN  RangeColour = 1
	RANGE_COLOUR_YELLOW RangeColour = 2
	RANGE_COLOUR_RED    RangeColour = 3
)

type GaugeRange struct {
	Colour        RangeColour `bson:"Colour" json:"Colour"`
	Min           float64     `bson:"Min" json:"Min"`
	Max           float64     `bson:"Max" json:"Max"`
	AllowDecimals *bool       `bson:"AllowDecimals,omitempty" json:"AllowDecimals,omitempty"`
}

type Gauge struct {
	Name                  string       `bson:"Name" json:"Name"`
	Min                   *float64     `bson:"Min" json:"Min"`
	Max                   *float64     `bson:"Max" json:"Max"`
	FuelInGallons         *bool        `bson:"FuelInGallons,omitempty" json:"FuelInGallons,omitempty"`
	CapacityForSingleTank *float64     `bson:"CapacityForSingleTank,omitempty" json:"CapacityForSingleTank,omitempty"`
	TorqueInFootPounds    *bool        `bson:"TorqueInFootPounds,omitempty" json:"TorqueInFootPounds,omitempty"`
	MaxPower              *float64     `bson:"MaxPower,omitempty" json:"MaxPower,omitempty"`
	Ranges                []GaugeRange `bson:"Ranges" json:"Ranges"`
	AllowDecimals         bool         `bson:"AllowDecimals" json:"AllowDecimals"`
}
