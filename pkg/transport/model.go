package transport

import (
	"fmt"

	"github.com/optiship/optiship/pkg/logger"
)

// PerishableMultiplier is the fixed handling premium applied to the
// shipping cost of perishable products. It is a cost adjustment in the
// objective, not a constraint.
const PerishableMultiplier = 1.2

// ConstraintSense is the direction of a linear constraint
type ConstraintSense int

const (
	// GreaterEqual constrains the row sum to be >= RHS
	GreaterEqual ConstraintSense = iota
	// LessEqual constrains the row sum to be <= RHS
	LessEqual
)

// Constraint is one linear constraint over model columns. Coefficients
// are stored sparsely: Cols[i] carries coefficient Coeffs[i], every other
// column is zero.
type Constraint struct {
	Name   string
	Cols   []int
	Coeffs []float64
	Sense  ConstraintSense
	RHS    float64
}

// Model is the formulated transportation problem handed to a Solver.
// One non-negative continuous variable exists per (facility, customer,
// product) triple in the catalog cross product; the column index and the
// variable name are both stable, so solutions can be joined back by
// either handle.
type Model struct {
	keys        []RouteKey
	names       []string
	index       map[RouteKey]int
	objective   []float64
	constraints []Constraint
}

// BuildModel formulates the minimum-cost shipping problem from the
// catalog and tables. Demand and capacity rows referencing IDs missing
// from the catalog fail the build before any model output is produced.
func BuildModel(catalog *Catalog, routes *RouteTable, demand *DemandTable, capacity *CapacityTable) (*Model, error) {
	if err := checkReferences(catalog, demand, capacity); err != nil {
		return nil, err
	}

	n := catalog.NumFacilities() * catalog.NumCustomers() * catalog.NumProducts()
	m := &Model{
		keys:      make([]RouteKey, 0, n),
		names:     make([]string, 0, n),
		index:     make(map[RouteKey]int, n),
		objective: make([]float64, 0, n),
	}

	// Decision variables over the full cross product, in catalog order.
	// The cross product is intentionally dense even though the cost,
	// demand and capacity data may be sparse.
	for _, f := range catalog.FacilityIDs() {
		for _, c := range catalog.CustomerIDs() {
			for _, p := range catalog.ProductIDs() {
				key := RouteKey{f, c, p}
				name, err := EncodeVariable(key)
				if err != nil {
					return nil, err
				}

				info, ok := routes.Lookup(f, c, p)
				if !ok {
					// Only possible when the route table was built
					// against a different catalog.
					return nil, &DataIntegrityError{
						Table: "routes",
						Field: "lane",
						ID:    fmt.Sprintf("%s/%s/%s", f, c, p),
					}
				}

				product, _ := catalog.Product(p)
				multiplier := 1.0
				if product.IsPerishable {
					multiplier = PerishableMultiplier
				}

				m.index[key] = len(m.keys)
				m.keys = append(m.keys, key)
				m.names = append(m.names, name)
				m.objective = append(m.objective, info.CostPerUnit*multiplier)
			}
		}
	}

	// Demand satisfaction: sum over facilities >= demand, only for pairs
	// present in the demand table.
	for _, dk := range demand.Keys() {
		info, _ := demand.Lookup(dk.Customer, dk.Product)
		cols := make([]int, 0, catalog.NumFacilities())
		coeffs := make([]float64, 0, catalog.NumFacilities())
		for _, f := range catalog.FacilityIDs() {
			cols = append(cols, m.index[RouteKey{f, dk.Customer, dk.Product}])
			coeffs = append(coeffs, 1)
		}
		m.constraints = append(m.constraints, Constraint{
			Name:   fmt.Sprintf("Demand_%s_%s", dk.Customer, dk.Product),
			Cols:   cols,
			Coeffs: coeffs,
			Sense:  GreaterEqual,
			RHS:    info.Demand,
		})
	}

	// Capacity limits: sum over customers <= available capacity, only for
	// pairs present in the capacity table. Pairs absent from the table are
	// deliberately unconstrained.
	for _, ck := range capacity.Keys() {
		info, _ := capacity.Lookup(ck.Facility, ck.Product)
		cols := make([]int, 0, catalog.NumCustomers())
		coeffs := make([]float64, 0, catalog.NumCustomers())
		for _, c := range catalog.CustomerIDs() {
			cols = append(cols, m.index[RouteKey{ck.Facility, c, ck.Product}])
			coeffs = append(coeffs, 1)
		}
		m.constraints = append(m.constraints, Constraint{
			Name:   fmt.Sprintf("Capacity_%s_%s", ck.Facility, ck.Product),
			Cols:   cols,
			Coeffs: coeffs,
			Sense:  LessEqual,
			RHS:    info.Available(),
		})
	}

	log := logger.New("model")
	log.Debug().
		Int("variables", len(m.keys)).
		Int("constraints", len(m.constraints)).
		Msg("optimization model built")

	return m, nil
}

func checkReferences(catalog *Catalog, demand *DemandTable, capacity *CapacityTable) error {
	for _, dk := range demand.Keys() {
		if _, ok := catalog.Customer(dk.Customer); !ok {
			return &DataIntegrityError{Table: "demand", Field: "customer_id", ID: string(dk.Customer)}
		}
		if _, ok := catalog.Product(dk.Product); !ok {
			return &DataIntegrityError{Table: "demand", Field: "product_id", ID: string(dk.Product)}
		}
	}
	for _, ck := range capacity.Keys() {
		if _, ok := catalog.Facility(ck.Facility); !ok {
			return &DataIntegrityError{Table: "capacity", Field: "facility_id", ID: string(ck.Facility)}
		}
		if _, ok := catalog.Product(ck.Product); !ok {
			return &DataIntegrityError{Table: "capacity", Field: "product_id", ID: string(ck.Product)}
		}
	}
	return nil
}

// NumVariables returns the number of decision variables
func (m *Model) NumVariables() int { return len(m.keys) }

// NumConstraints returns the number of constraints
func (m *Model) NumConstraints() int { return len(m.constraints) }

// Key returns the lane for a column index
func (m *Model) Key(col int) RouteKey { return m.keys[col] }

// Name returns the stable variable name for a column index
func (m *Model) Name(col int) string { return m.names[col] }

// Column returns the column index for a lane
func (m *Model) Column(key RouteKey) (int, bool) {
	col, ok := m.index[key]
	return col, ok
}

// Objective returns the per-column cost coefficients. The returned slice
// is shared and must not be modified.
func (m *Model) Objective() []float64 { return m.objective }

// Constraints returns the model constraints. The returned slice is
// shared and must not be modified.
func (m *Model) Constraints() []Constraint { return m.constraints }
