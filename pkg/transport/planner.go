package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/optiship/optiship/pkg/logger"
)

// Inputs is the immutable snapshot of one optimization run: the tables
// are built once from external data and are read-only for the duration
// of the run, so the same inputs can back repeated scenario runs without
// synchronization.
type Inputs struct {
	Catalog  *Catalog
	Routes   *RouteTable
	Demand   *DemandTable
	Capacity *CapacityTable
}

// Result is the complete output of one optimization run
type Result struct {
	RunID       uuid.UUID
	Schedule    *Schedule
	Solution    *Solution
	RouteReport MissingRouteReport
	Warnings    []DecodeWarning
	Duration    time.Duration
}

// Planner runs the synchronous pipeline: model build, one blocking solve
// call, solution decode, schedule assembly. Each run produces an
// independent result.
type Planner struct {
	solver Solver
	log    zerolog.Logger
}

// NewPlanner creates a planner. A nil solver selects the default simplex
// solver.
func NewPlanner(solver Solver) *Planner {
	if solver == nil {
		solver = NewSimplexSolver()
	}
	return &Planner{
		solver: solver,
		log:    logger.New("planner"),
	}
}

// Plan executes one optimization run over the given inputs. A
// non-Optimal solve returns a SolverFailureError; the result still
// carries the solution so the caller can inspect the diagnostic status,
// but no shipment schedule is produced.
func (p *Planner) Plan(ctx context.Context, inputs Inputs) (*Result, error) {
	if inputs.Catalog == nil || inputs.Routes == nil || inputs.Demand == nil || inputs.Capacity == nil {
		return nil, fmt.Errorf("incomplete inputs: catalog, routes, demand and capacity tables are all required")
	}

	start := time.Now()
	result := &Result{
		RunID:       uuid.New(),
		RouteReport: inputs.Routes.Report(),
	}

	model, err := BuildModel(inputs.Catalog, inputs.Routes, inputs.Demand, inputs.Capacity)
	if err != nil {
		return nil, err
	}

	p.log.Info().
		Str("run_id", result.RunID.String()).
		Str("solver", p.solver.Name()).
		Int("variables", model.NumVariables()).
		Int("constraints", model.NumConstraints()).
		Msg("starting optimization run")

	sol, err := p.solver.Solve(ctx, model)
	if err != nil {
		return nil, err
	}
	result.Solution = sol

	if sol.Status != StatusOptimal {
		result.Duration = time.Since(start)
		p.log.Warn().
			Str("run_id", result.RunID.String()).
			Str("status", sol.Status.String()).
			Msg("no usable shipment plan")
		return result, &SolverFailureError{Status: sol.Status}
	}

	records, warnings, err := DecodeSolution(sol, inputs.Catalog, inputs.Routes)
	if err != nil {
		return nil, err
	}
	result.Warnings = warnings
	result.Schedule = AssembleSchedule(records)
	result.Duration = time.Since(start)

	p.log.Info().
		Str("run_id", result.RunID.String()).
		Int("shipments", result.Schedule.Len()).
		Str("total_cost", result.Schedule.TotalCost().StringFixed(2)).
		Dur("elapsed", result.Duration).
		Msg("optimization run complete")

	return result, nil
}
