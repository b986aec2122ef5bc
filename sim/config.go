// config.go defines Config (spec §6) and its validation, grounded on
// the teacher's grouped config structs (sim/config.go) and its
// registry-of-valid-names validation idiom (sim/bundle.go Validate()).

package sim

// Config configures one Engine run. All fields are required unless a
// default is noted; DefaultConfig returns the spec's documented
// defaults (spec §6 table).
type Config struct {
	Name                 string  `yaml:"name"`
	DurationMinutes      int     `yaml:"duration_minutes"`
	Policy               Policy  `yaml:"policy"`
	Rooms                int     `yaml:"rooms"`
	Teams                int     `yaml:"teams"`
	WaitingCapacity      int     `yaml:"waiting_capacity"`
	RecoveryCapacity     int     `yaml:"recovery_capacity"`
	EmergencyRatePerHour float64 `yaml:"emergency_rate_per_hour"`
	ElectiveCount        int     `yaml:"elective_count"`
	SpeedFactor          float64 `yaml:"speed_factor"`
	CleaningMinutes      int     `yaml:"cleaning_minutes"`
	RecoveryMinutes      int     `yaml:"recovery_minutes"`
	Seed                 int64   `yaml:"seed"`
}

// DefaultConfig returns a Config populated with the spec §6 defaults.
// Seed is left at 0; callers wanting process-entropy seeding should
// assign one explicitly (the kernel itself never reaches for
// wall-clock or OS entropy — see spec §5/§9 wall-clock coupling removed).
func DefaultConfig() Config {
	return Config{
		Name:                 "Simulation",
		DurationMinutes:      480,
		Policy:               FCFS,
		Rooms:                3,
		Teams:                3,
		WaitingCapacity:      50,
		RecoveryCapacity:     20,
		EmergencyRatePerHour: 2.0,
		ElectiveCount:        10,
		SpeedFactor:          0,
		CleaningMinutes:      15,
		RecoveryMinutes:      60,
	}
}

// Validate checks every range constraint from spec §6 and §7, failing
// fast on the first violation found, field by field in table order.
func (c Config) Validate() error {
	if c.DurationMinutes < 1 {
		return &ConfigError{Field: "duration_minutes", Reason: "must be >= 1"}
	}
	if !IsValidPolicy(c.Policy) {
		return &ConfigError{Field: "policy", Reason: "unknown policy " + string(c.Policy)}
	}
	if c.Rooms < 1 {
		return &ConfigError{Field: "rooms", Reason: "must be >= 1"}
	}
	if c.Teams < 1 {
		return &ConfigError{Field: "teams", Reason: "must be >= 1"}
	}
	if c.WaitingCapacity < 1 {
		return &ConfigError{Field: "waiting_capacity", Reason: "must be >= 1"}
	}
	if c.RecoveryCapacity < 1 {
		return &ConfigError{Field: "recovery_capacity", Reason: "must be >= 1"}
	}
	if c.EmergencyRatePerHour < 0 {
		return &ConfigError{Field: "emergency_rate_per_hour", Reason: "must be >= 0"}
	}
	if c.ElectiveCount < 0 {
		return &ConfigError{Field: "elective_count", Reason: "must be >= 0"}
	}
	if c.SpeedFactor < 0 {
		return &ConfigError{Field: "speed_factor", Reason: "must be >= 0"}
	}
	if c.CleaningMinutes < 0 {
		return &ConfigError{Field: "cleaning_minutes", Reason: "must be >= 0"}
	}
	if c.RecoveryMinutes < 0 {
		return &ConfigError{Field: "recovery_minutes", Reason: "must be >= 0"}
	}
	return nil
}
