package profile

// AircraftType selects which gauge set a profile carries.
type AircraftType int

const (
	AIRCRAFT_TYPE_PISTON    AircraftType = 0
	AIRCRAFT_TYPE_TURBOPROP AircraftType = 1
	AIRCRAFT_TYPE_JET       AircraftType = 2
)

// OwnerInfo tags the account that owns a profile. Id is either a
// legacy-derived 48-char uppercase hex string or a random UUID for accounts
// created locally; the two are never distinguished by parsing.
type OwnerInfo struct {
	Id   *string `bson:"Id" json:"Id"`
	Name *string `bson:"Name" json:"Name"`
}

type SettingRange struct {
	Min float64 `bson:"Min" json:"Min"`
	Max float64 `bson:"Max" json:"Max"`
}

type VacuumPSIRange struct {
	Min        float64 `bson:"Min" json:"Min"`
	Max        float64 `bson:"Max" json:"Max"`
	GreenStart float64 `bson:"GreenStart" json:"GreenStart"`
	GreenEnd   float64 `bson:"GreenEnd" json:"GreenEnd"`
}

type FlapsRange struct {
	Markings  []*string  `bson:"Markings" json:"Markings"`
	Positions []*float64 `bson:"Positions" json:"Positions"`
}

type VSpeeds struct {
	Vs0    float64 `bson:"Vs0" json:"Vs0"`
	Vs1    float64 `bson:"Vs1" json:"Vs1"`
	Vfe    float64 `bson:"Vfe" json:"Vfe"`
	Vno    float64 `bson:"Vno" json:"Vno"`
	Vne    float64 `bson:"Vne" json:"Vne"`
	Vglide float64 `bson:"Vglide" json:"Vglide"`
	Vr     float64 `bson:"Vr" json:"Vr"`
	Vx     float64 `bson:"Vx" json:"Vx"`
	Vy     float64 `bson:"Vy" json:"Vy"`
}

// ProfileSummary is the projection used for the browse listing.
type ProfileSummary struct {
	ProfileID    string       `bson:"id" json:"id"`
	Owner        OwnerInfo    `bson:"Owner" json:"Owner"`
	LastUpdated  string       `bson:"LastUpdated" json:"LastUpdated"`
	Name         string       `bson:"Name" json:"Name"`
	AircraftType AircraftType `bson:"AircraftType" json:"AircraftType"`
	Engines      int          `bson:"Engines" json:"Engines"`
	IsPublished  bool         `bson:"IsPublished" json:"IsPublished"`
	Notes        *string      `bson:"Notes" json:"Notes"`
}

// Profile is the full panel configuration document. The schema mirrors the
// JSON files the Simionic app exports; field names are fixed.
type Profile struct {
	ProfileID    *string      `bson:"id" json:"id"`
	Owner        OwnerInfo    `bson:"Owner" json:"Owner"`
	LastUpdated  string       `bson:"LastUpdated" json:"LastUpdated"`
	Name         string       `bson:"Name" json:"Name"`
	AircraftType AircraftType `bson:"AircraftType" json:"AircraftType"`
	Engines      int          `bson:"Engines" json:"Engines"`
	IsPublished  bool         `bson:"IsPublished" json:"IsPublished"`
	Notes        *string      `bson:"Notes" json:"Notes"`
	ForkedFrom   *string      `bson:"ForkedFrom" json:"ForkedFrom"`

	// Piston only
	Cylinders        int            `bson:"Cylinders" json:"Cylinders"`
	FADEC            bool           `bson:"FADEC" json:"FADEC"`
	Turbocharged     bool           `bson:"Turbocharged" json:"Turbocharged"`
	ConstantSpeed    bool           `bson:"ConstantSpeed" json:"ConstantSpeed"`
	VacuumPSIRange   VacuumPSIRange `bson:"VacuumPSIRange" json:"VacuumPSIRange"`
	ManifoldPressure Gauge          `bson:"ManifoldPressure" json:"ManifoldPressure"`
	CHT              Gauge          `bson:"CHT" json:"CHT"`
	EGT              Gauge          `bson:"EGT" json:"EGT"`
	TIT              Gauge          `bson:"TIT" json:"TIT"`
	Load             Gauge          `bson:"Load" json:"Load"`

	// Turboprop only
	Torque Gauge `bson:"Torque" json:"Torque"`
	NG     Gauge `bson:"NG" json:"NG"`

	// Turboprop and jet
	ITT Gauge `bson:"ITT" json:"ITT"`

	// Common to all
	TemperaturesInFahrenheit bool  `bson:"TemperaturesInFahrenheit" json:"TemperaturesInFahrenheit"`
	RPM                      Gauge `bson:"RPM" json:"RPM"`
	Fuel                     Gauge `bson:"Fuel" json:"Fuel"`
	FuelFlow                 Gauge `bson:"FuelFlow" json:"FuelFlow"`
	OilPressure              Gauge `bson:"OilPressure" json:"OilPressure"`
	OilTemperature           Gauge `bson:"OilTemperature" json:"OilTemperature"`

	DisplayElevatorTrim      bool         `bson:"DisplayElevatorTrim" json:"DisplayElevatorTrim"`
	ElevatorTrimTakeOffRange SettingRange `bson:"ElevatorTrimTakeOffRange" json:"ElevatorTrimTakeOffRange"`
	DisplayRudderTrim        bool         `bson:"DisplayRudderTrim" json:"DisplayRudderTrim"`
	RudderTrimTakeOffRange   SettingRange `bson:"RudderTrimTakeOffRange" json:"RudderTrimTakeOffRange"`
	DisplayFlapsIndicator    bool         `bson:"DisplayFlapsIndicator" json:"DisplayFlapsIndicator"`
	FlapsRange               FlapsRange   `bson:"FlapsRange" json:"FlapsRange"`
	VSpeeds                  VSpeeds      `bson:"VSpeeds" json:"VSpeeds"`
}
