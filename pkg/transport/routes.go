package transport

import (
	"github.com/rs/zerolog"

	"github.com/optiship/optiship/pkg/logger"
)

// Penalty values substituted for lanes absent from the authored route
// table. A missing lane stays usable by the model but is prohibitively
// expensive rather than silently zero-cost.
const (
	PenaltyCostPerUnit     = 1000.0
	PenaltyTransitTimeDays = 7
)

// maxReportedExamples caps the sample of penalized lanes in the report
const maxReportedExamples = 5

// MissingRouteReport summarizes the lanes that received penalty entries
// during route table construction. It is a diagnostic, not an error.
type MissingRouteReport struct {
	Count    int
	Examples []RouteKey
}

// RouteTable maps every (facility, customer, product) lane in the catalog
// cross product to its cost attributes. Lanes missing from the authored
// data are filled with penalty entries at build time, so lookups during
// model building never fail.
type RouteTable struct {
	routes map[RouteKey]RouteInfo
	report MissingRouteReport
	log    zerolog.Logger
}

// NewRouteTable builds the dense route table over the catalog's cross
// product from the authored lanes. Authored lanes referencing IDs outside
// the catalog are rejected as dangling references.
func NewRouteTable(catalog *Catalog, authored []Route) (*RouteTable, error) {
	t := &RouteTable{
		routes: make(map[RouteKey]RouteInfo, catalog.NumFacilities()*catalog.NumCustomers()*catalog.NumProducts()),
		log:    logger.New("routes"),
	}

	for _, r := range authored {
		if _, ok := catalog.Facility(r.Facility); !ok {
			return nil, &DataIntegrityError{Table: "routes", Field: "facility_id", ID: string(r.Facility)}
		}
		if _, ok := catalog.Customer(r.Customer); !ok {
			return nil, &DataIntegrityError{Table: "routes", Field: "customer_id", ID: string(r.Customer)}
		}
		if _, ok := catalog.Product(r.Product); !ok {
			return nil, &DataIntegrityError{Table: "routes", Field: "product_id", ID: string(r.Product)}
		}
		t.routes[RouteKey{r.Facility, r.Customer, r.Product}] = r.RouteInfo
	}

	// Fill every lane absent from the authored set with a penalty entry
	for _, f := range catalog.FacilityIDs() {
		for _, c := range catalog.CustomerIDs() {
			for _, p := range catalog.ProductIDs() {
				key := RouteKey{f, c, p}
				if _, ok := t.routes[key]; ok {
					continue
				}
				t.routes[key] = RouteInfo{
					CostPerUnit:     PenaltyCostPerUnit,
					TransitTimeDays: PenaltyTransitTimeDays,
				}
				t.report.Count++
				if len(t.report.Examples) < maxReportedExamples {
					t.report.Examples = append(t.report.Examples, key)
				}
			}
		}
	}

	if t.report.Count > 0 {
		t.log.Warn().
			Int("missing_routes", t.report.Count).
			Interface("examples", t.report.Examples).
			Msg("penalty cost assigned to lanes missing from route table")
	}

	return t, nil
}

// Lookup returns the cost attributes for a lane. After construction the
// table is dense over the catalog cross product, so ok is false only for
// keys outside the catalog.
func (t *RouteTable) Lookup(f FacilityID, c CustomerID, p ProductID) (RouteInfo, bool) {
	info, ok := t.routes[RouteKey{f, c, p}]
	return info, ok
}

// Report returns the missing-route diagnostic recorded at build time
func (t *RouteTable) Report() MissingRouteReport {
	return t.report
}
