package transport

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/optiship/optiship/pkg/logger"
)

// Solver accepts a formulated model and returns a solution. The solve
// call is blocking with no partial results; callers wanting a timeout
// wrap it with a context deadline and treat expiry as a solver failure.
type Solver interface {
	// Solve runs the optimization and reports the outcome. A non-nil
	// error means the adapter itself failed; Infeasible and Unbounded
	// outcomes are reported through the solution status instead.
	Solve(ctx context.Context, model *Model) (*Solution, error)

	// Name returns the solver name
	Name() string
}

// simplexTol is the numeric tolerance handed to the simplex routine
const simplexTol = 1e-10

// solverEpsilon filters floating-point noise near zero out of the
// reported variable values
const solverEpsilon = 1e-9

// SimplexSolver solves the model with gonum's simplex implementation.
// The model's inequality constraints are converted to standard form by
// appending one slack or surplus column per constraint.
type SimplexSolver struct {
	log zerolog.Logger
}

// NewSimplexSolver creates the default LP solver
func NewSimplexSolver() *SimplexSolver {
	return &SimplexSolver{log: logger.New("solver")}
}

// Name returns the solver name
func (s *SimplexSolver) Name() string {
	return "SimplexSolver"
}

// Solve converts the model to standard form and runs the simplex method
func (s *SimplexSolver) Solve(ctx context.Context, model *Model) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, &SolverFailureError{Status: StatusUndefined, Err: err}
	}

	start := time.Now()
	obj := model.Objective()
	constraints := model.Constraints()

	// Columns appearing in no constraint are fixed before the solve:
	// zero is optimal for a non-negative variable with a non-negative
	// cost coefficient, and a negative coefficient makes the whole
	// problem unbounded.
	used := make([]int, 0, model.NumVariables())
	pos := make(map[int]int, model.NumVariables())
	inConstraint := make([]bool, model.NumVariables())
	for _, con := range constraints {
		for _, col := range con.Cols {
			inConstraint[col] = true
		}
	}
	for col := 0; col < model.NumVariables(); col++ {
		if inConstraint[col] {
			pos[col] = len(used)
			used = append(used, col)
			continue
		}
		if obj[col] < 0 {
			return &Solution{Status: StatusUnbounded}, nil
		}
	}

	if len(constraints) == 0 {
		// Nothing binds any variable; the zero plan is optimal.
		return &Solution{Status: StatusOptimal, Quantities: map[string]float64{}}, nil
	}

	n := len(used)
	m := len(constraints)

	// Standard form min c'x s.t. Ax = b, x >= 0: one slack column per <=
	// constraint, one surplus column per >= constraint.
	c := make([]float64, n+m)
	for j, col := range used {
		c[j] = obj[col]
	}

	a := mat.NewDense(m, n+m, nil)
	b := make([]float64, m)
	for i, con := range constraints {
		for k, col := range con.Cols {
			a.Set(i, pos[col], con.Coeffs[k])
		}
		switch con.Sense {
		case GreaterEqual:
			a.Set(i, n+i, -1)
		case LessEqual:
			a.Set(i, n+i, 1)
		}
		b[i] = con.RHS
	}

	optF, optX, err := lp.Simplex(c, a, b, simplexTol, nil)
	switch {
	case err == nil:
	case errors.Is(err, lp.ErrInfeasible):
		return &Solution{Status: StatusInfeasible}, nil
	case errors.Is(err, lp.ErrUnbounded):
		return &Solution{Status: StatusUnbounded}, nil
	default:
		return nil, &SolverFailureError{Status: StatusUndefined, Err: err}
	}

	sol := &Solution{
		Status:     StatusOptimal,
		TotalCost:  optF,
		Quantities: make(map[string]float64),
	}
	for j, col := range used {
		if optX[j] > solverEpsilon {
			sol.Quantities[model.Name(col)] = optX[j]
		}
	}

	s.log.Debug().
		Str("status", sol.Status.String()).
		Float64("total_cost", sol.TotalCost).
		Int("nonzero_variables", len(sol.Quantities)).
		Dur("elapsed", time.Since(start)).
		Msg("solve complete")

	return sol, nil
}
