package transport

import (
	"testing"
)

// buildTestCatalog creates the 2x2x2 network used across tests: two
// facilities, two customers, one durable and one perishable product
func buildTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := NewCatalog(
		[]Facility{
			{ID: "F1", Location: "Chicago", Type: "warehouse", OperationalCost: 5000},
			{ID: "F2", Location: "Dallas", Type: "plant", OperationalCost: 8000},
		},
		[]Customer{
			{ID: "C1", Region: "Midwest", PriorityCategory: "high", ServiceLevelAgreement: "24h"},
			{ID: "C2", Region: "South", PriorityCategory: "standard", ServiceLevelAgreement: "72h"},
		},
		[]Product{
			{ID: "P1", Category: "hardware", Weight: 2.0, IsPerishable: false, Value: 50},
			{ID: "P2", Category: "food", Weight: 0.5, IsPerishable: true, Value: 8},
		},
	)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	return catalog
}

// singleLaneScenario parameterizes the one-facility one-customer
// one-product scenarios
type singleLaneScenario struct {
	CostPerUnit float64
	Demand      float64
	Capacity    float64
	Utilization float64
	Perishable  bool
}

// buildSingleLaneInputs creates inputs with one facility F1, one
// customer C1 and one product P1 connected by a single authored lane
func buildSingleLaneInputs(t *testing.T, sc singleLaneScenario) Inputs {
	t.Helper()

	catalog, err := NewCatalog(
		[]Facility{{ID: "F1", Location: "Chicago", Type: "warehouse", OperationalCost: 5000}},
		[]Customer{{ID: "C1", Region: "Midwest", PriorityCategory: "high", ServiceLevelAgreement: "24h"}},
		[]Product{{ID: "P1", Category: "hardware", Weight: 2.0, IsPerishable: sc.Perishable, Value: 50}},
	)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	routes, err := NewRouteTable(catalog, []Route{
		{Facility: "F1", Customer: "C1", Product: "P1",
			RouteInfo: RouteInfo{CostPerUnit: sc.CostPerUnit, TransitTimeDays: 2}},
	})
	if err != nil {
		t.Fatalf("NewRouteTable failed: %v", err)
	}

	demand, err := NewDemandTable(catalog, []DemandEntry{
		{Customer: "C1", Product: "P1", DemandInfo: DemandInfo{Demand: sc.Demand, Volatility: 0.1}},
	})
	if err != nil {
		t.Fatalf("NewDemandTable failed: %v", err)
	}

	capacity, err := NewCapacityTable(catalog, []CapacityEntry{
		{Facility: "F1", Product: "P1", CapacityInfo: CapacityInfo{Capacity: sc.Capacity, Utilization: sc.Utilization}},
	})
	if err != nil {
		t.Fatalf("NewCapacityTable failed: %v", err)
	}

	return Inputs{Catalog: catalog, Routes: routes, Demand: demand, Capacity: capacity}
}

// almostEqual compares floats within solver tolerance
func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-6
}
