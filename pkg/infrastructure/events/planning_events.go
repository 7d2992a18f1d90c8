package events

import (
	"github.com/optiship/optiship/pkg/transport"
)

// Event types recorded over the life of one optimization run
const (
	RunStartedEvent        = "run.started"
	LanesPenalizedEvent    = "run.lanes_penalized"
	SolveCompletedEvent    = "run.solve_completed"
	SolveFailedEvent       = "run.solve_failed"
	ScheduleAssembledEvent = "run.schedule_assembled"
)

type RunStarted struct {
	Facilities int `json:"facilities"`
	Customers  int `json:"customers"`
	Products   int `json:"products"`
}

type LanesPenalized struct {
	Count    int                  `json:"count"`
	Examples []transport.RouteKey `json:"examples"`
}

type SolveCompleted struct {
	TotalCost float64 `json:"total_cost"`
}

type SolveFailed struct {
	Status string `json:"status"`
}

type ScheduleAssembled struct {
	Records       int     `json:"records"`
	TotalQuantity float64 `json:"total_quantity"`
}

// Recorder writes planner run audit trails into a store
type Recorder struct {
	store Store
}

// NewRecorder creates a recorder backed by the given store
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) recordSetup(inputs transport.Inputs, result *transport.Result) {
	r.store.Append(result.RunID, RunStartedEvent, RunStarted{
		Facilities: inputs.Catalog.NumFacilities(),
		Customers:  inputs.Catalog.NumCustomers(),
		Products:   inputs.Catalog.NumProducts(),
	})
	if result.RouteReport.Count > 0 {
		r.store.Append(result.RunID, LanesPenalizedEvent, LanesPenalized{
			Count:    result.RouteReport.Count,
			Examples: result.RouteReport.Examples,
		})
	}
}

// RunCompleted records the trail of a run that produced a shipment plan
func (r *Recorder) RunCompleted(inputs transport.Inputs, result *transport.Result) {
	r.recordSetup(inputs, result)
	r.store.Append(result.RunID, SolveCompletedEvent, SolveCompleted{
		TotalCost: result.Solution.TotalCost,
	})
	r.store.Append(result.RunID, ScheduleAssembledEvent, ScheduleAssembled{
		Records:       result.Schedule.Len(),
		TotalQuantity: result.Schedule.TotalQuantity(),
	})
}

// RunFailed records the trail of a run whose solve produced no usable
// plan. The result must carry the diagnostic solution.
func (r *Recorder) RunFailed(inputs transport.Inputs, result *transport.Result) {
	r.recordSetup(inputs, result)
	r.store.Append(result.RunID, SolveFailedEvent, SolveFailed{
		Status: result.Solution.Status.String(),
	})
}
