package service

import (
	"fmt"
	"time"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/configs"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/constants"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/taxonomy"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/helpers/dbtime"
)

// CountRange is an inclusive [Min, Max] number of students per class.
type CountRange struct {
	Min int
	Max int
}

func (r CountRange) valid() bool { return r.Min >= 0 && r.Max >= r.Min }

type Options struct {
	Taxonomy           taxonomy.Taxonomy
	FlatRange          CountRange
	StreamRange        CountRange
	WindowDays         int
	PresenceRate       float64
	RegistrationPrefix string
	MarkedTime         dbtime.Tod
	Location           *time.Location
	BackdateTimestamps bool
	FirstNames         []string
	LastNames          []string
}

// DefaultOptions reproduces the stock fixture.
func DefaultOptions() Options {
	return Options{
		Taxonomy:           taxonomy.Default(),
		FlatRange:          CountRange{Min: 25, Max: 30},
		StreamRange:        CountRange{Min: 15, Max: 20},
		WindowDays:         7,
		PresenceRate:       0.9,
		RegistrationPrefix: "2024",
		MarkedTime:         dbtime.MustParse(constants.DefaultMarkTime),
		Location:           time.Local,
		FirstNames:         firstNames,
		LastNames:          lastNames,
	}
}

func OptionsFromConfig(cfg configs.GeneratorConfig) (Options, error) {
	opts := DefaultOptions()
	opts.FlatRange = CountRange{Min: cfg.FlatMin, Max: cfg.FlatMax}
	opts.StreamRange = CountRange{Min: cfg.StreamMin, Max: cfg.StreamMax}
	opts.WindowDays = cfg.WindowDays
	opts.PresenceRate = cfg.PresenceRate
	opts.RegistrationPrefix = cfg.RegistrationPrefix
	opts.Location = dbtime.LoadLocation(cfg.Timezone)
	opts.BackdateTimestamps = cfg.BackdateTimestamps

	tod, err := dbtime.Parse(cfg.MarkedTime)
	if err != nil {
		return Options{}, fmt.Errorf("marked_time: %w", err)
	}
	opts.MarkedTime = tod
	return opts, opts.Validate()
}

func (o Options) Validate() error {
	if err := o.Taxonomy.Validate(); err != nil {
		return err
	}
	if !o.FlatRange.valid() {
		return fmt.Errorf("flat classes %d-%d: %w", o.FlatRange.Min, o.FlatRange.Max, constants.ErrInvalidRange)
	}
	if !o.StreamRange.valid() {
		return fmt.Errorf("streamed classes %d-%d: %w", o.StreamRange.Min, o.StreamRange.Max, constants.ErrInvalidRange)
	}
	if o.WindowDays < 1 {
		return constants.ErrInvalidWindowDays
	}
	if o.PresenceRate < 0 || o.PresenceRate > 1 {
		return fmt.Errorf("presence rate %v outside [0,1]: %w", o.PresenceRate, constants.ErrInvalidRange)
	}
	if len(o.FirstNames) == 0 || len(o.LastNames) == 0 {
		return fmt.Errorf("name pools must not be empty")
	}
	return nil
}

// rangeFor picks the student count range for a placement's section kind.
func (o Options) rangeFor(kind taxonomy.Kind) CountRange {
	switch kind {
	case taxonomy.KindStreamed:
		return o.StreamRange
	case taxonomy.KindFlat:
		return o.FlatRange
	default:
		panic(fmt.Sprintf("unknown section kind %q", kind))
	}
}
