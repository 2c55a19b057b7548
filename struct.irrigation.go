package fao56

import (
	"fmt"
	"sort"
	"time"
)

// IrrigationEvent is one application of water.
type IrrigationEvent struct {
	Depth float64 // applied depth [mm]
	Fw    float64 // fraction of soil surface wetted, in (0,1]
}

// Irrigation is the ordered set of applications for one plot, at most
// one per date.
type Irrigation struct {
	events map[time.Time]IrrigationEvent
}

// NewIrrigation builds an empty schedule.
func NewIrrigation() *Irrigation {
	return &Irrigation{events: make(map[time.Time]IrrigationEvent)}
}

// AddEvent registers an application. A second event on the same date is
// rejected; merge policy is the caller's responsibility.
func (ir *Irrigation) AddEvent(dt time.Time, depth, fw float64) error {
	if depth < 0. {
		return ValueRangeError(fmt.Sprintf(" irrigation: negative depth %.1f mm", depth))
	}
	if fw <= 0. || fw > 1. {
		return ValueRangeError(fmt.Sprintf(" irrigation: wetted fraction %.2f outside (0,1]", fw))
	}
	k := dayDate(dt)
	if _, ok := ir.events[k]; ok {
		return ValueRangeError(fmt.Sprintf(" irrigation: duplicate event on %s", k.Format("2006-01-02")))
	}
	ir.events[k] = IrrigationEvent{Depth: depth, Fw: fw}
	return nil
}

// Event returns the application on a date, if any.
func (ir *Irrigation) Event(dt time.Time) (IrrigationEvent, bool) {
	ev, ok := ir.events[dayDate(dt)]
	return ev, ok
}

// Dates lists the event dates in order.
func (ir *Irrigation) Dates() []time.Time {
	dts := make([]time.Time, 0, len(ir.events))
	for dt := range ir.events {
		dts = append(dts, dt)
	}
	sort.Slice(dts, func(i, j int) bool { return dts[i].Before(dts[j]) })
	return dts
}
