// Package fao56 simulates the daily soil-water balance of a single
// cropped plot following the FAO-56 dual crop coefficient procedure
// with the ASCE standardized reference evapotranspiration. State is
// carried day to day through a strictly sequential recurrence; one run
// owns its state exclusively, so independent plots may be simulated
// concurrently by the caller.
package fao56

import "time"

// ConfigurationError reports invalid or degenerate model setup: a bad
// date range, a missing collaborator, or parameters that break the
// governing equations.
type ConfigurationError string

func (e ConfigurationError) Error() string { return string(e) }

// DataGapError reports a date within the simulation range for which no
// weather record was supplied. The recurrence cannot skip a day, so a
// gap aborts the run.
type DataGapError struct{ Date time.Time }

func (e DataGapError) Error() string {
	return " fao56: no weather record for " + e.Date.Format("2006-01-02")
}

// MissingInputError reports a weather record lacking the fields needed
// to derive reference ET or vapor pressure.
type MissingInputError string

func (e MissingInputError) Error() string { return string(e) }

// ValueRangeError reports an input value outside its physical range.
type ValueRangeError string

func (e ValueRangeError) Error() string { return string(e) }

// dayDate truncates t to its calendar date in UTC. All collaborators
// key their records by this normalized form.
func dayDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
