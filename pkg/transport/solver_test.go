package transport

import (
	"context"
	"errors"
	"testing"
)

func solveInputs(t *testing.T, inputs Inputs) *Solution {
	t.Helper()

	model, err := BuildModel(inputs.Catalog, inputs.Routes, inputs.Demand, inputs.Capacity)
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	sol, err := NewSimplexSolver().Solve(context.Background(), model)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	return sol
}

func TestSimplexSolver_SingleLaneOptimal(t *testing.T) {
	inputs := buildSingleLaneInputs(t, singleLaneScenario{
		CostPerUnit: 10,
		Demand:      100,
		Capacity:    150,
		Utilization: 0,
	})

	sol := solveInputs(t, inputs)

	if sol.Status != StatusOptimal {
		t.Fatalf("expected Optimal, got %s", sol.Status)
	}
	if !almostEqual(sol.TotalCost, 1000) {
		t.Errorf("expected total cost 1000.00, got %f", sol.TotalCost)
	}
	if len(sol.Quantities) != 1 {
		t.Fatalf("expected one non-zero shipment, got %d", len(sol.Quantities))
	}
	qty, ok := sol.Quantities["Shipment_F1_C1_P1"]
	if !ok {
		t.Fatalf("expected variable Shipment_F1_C1_P1, got %v", sol.Quantities)
	}
	if !almostEqual(qty, 100) {
		t.Errorf("expected quantity 100, got %f", qty)
	}
}

func TestSimplexSolver_InsufficientCapacityInfeasible(t *testing.T) {
	inputs := buildSingleLaneInputs(t, singleLaneScenario{
		CostPerUnit: 10,
		Demand:      100,
		Capacity:    50,
		Utilization: 0,
	})

	sol := solveInputs(t, inputs)

	if sol.Status != StatusInfeasible {
		t.Fatalf("expected Infeasible, got %s", sol.Status)
	}
	if len(sol.Quantities) != 0 {
		t.Errorf("infeasible solve must not report shipments, got %v", sol.Quantities)
	}
}

func TestSimplexSolver_PerishablePremium(t *testing.T) {
	inputs := buildSingleLaneInputs(t, singleLaneScenario{
		CostPerUnit: 10,
		Demand:      100,
		Capacity:    150,
		Utilization: 0,
		Perishable:  true,
	})

	sol := solveInputs(t, inputs)

	if sol.Status != StatusOptimal {
		t.Fatalf("expected Optimal, got %s", sol.Status)
	}
	if !almostEqual(sol.TotalCost, 1200) {
		t.Errorf("expected total cost 1200.00 with 20%% premium, got %f", sol.TotalCost)
	}
}

func TestSimplexSolver_UtilizationShrinksCapacity(t *testing.T) {
	// 150 capacity at 40% utilization leaves 90, short of the demand
	inputs := buildSingleLaneInputs(t, singleLaneScenario{
		CostPerUnit: 10,
		Demand:      100,
		Capacity:    150,
		Utilization: 0.4,
	})

	sol := solveInputs(t, inputs)

	if sol.Status != StatusInfeasible {
		t.Fatalf("expected Infeasible at 40%% utilization, got %s", sol.Status)
	}
}

func TestSimplexSolver_NegativeCostUnbounded(t *testing.T) {
	// A negative lane cost with no capacity bound lets the objective
	// decrease without limit.
	catalog, err := NewCatalog(
		[]Facility{{ID: "F1"}},
		[]Customer{{ID: "C1"}},
		[]Product{{ID: "P1"}},
	)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	routes, err := NewRouteTable(catalog, []Route{
		{Facility: "F1", Customer: "C1", Product: "P1", RouteInfo: RouteInfo{CostPerUnit: -5, TransitTimeDays: 1}},
	})
	if err != nil {
		t.Fatalf("NewRouteTable failed: %v", err)
	}
	demand, err := NewDemandTable(catalog, []DemandEntry{
		{Customer: "C1", Product: "P1", DemandInfo: DemandInfo{Demand: 10}},
	})
	if err != nil {
		t.Fatalf("NewDemandTable failed: %v", err)
	}
	capacity, err := NewCapacityTable(catalog, nil)
	if err != nil {
		t.Fatalf("NewCapacityTable failed: %v", err)
	}

	sol := solveInputs(t, Inputs{Catalog: catalog, Routes: routes, Demand: demand, Capacity: capacity})

	if sol.Status != StatusUnbounded {
		t.Fatalf("expected Unbounded, got %s", sol.Status)
	}
}

func TestSimplexSolver_NoConstraintsShipsNothing(t *testing.T) {
	catalog := buildTestCatalog(t)
	routes, err := NewRouteTable(catalog, nil)
	if err != nil {
		t.Fatalf("NewRouteTable failed: %v", err)
	}
	demand, err := NewDemandTable(catalog, nil)
	if err != nil {
		t.Fatalf("NewDemandTable failed: %v", err)
	}
	capacity, err := NewCapacityTable(catalog, nil)
	if err != nil {
		t.Fatalf("NewCapacityTable failed: %v", err)
	}

	sol := solveInputs(t, Inputs{Catalog: catalog, Routes: routes, Demand: demand, Capacity: capacity})

	if sol.Status != StatusOptimal {
		t.Fatalf("expected Optimal, got %s", sol.Status)
	}
	if sol.TotalCost != 0 || len(sol.Quantities) != 0 {
		t.Errorf("expected the zero plan, got cost %f shipments %v", sol.TotalCost, sol.Quantities)
	}
}

func TestSimplexSolver_CancelledContext(t *testing.T) {
	inputs := buildSingleLaneInputs(t, singleLaneScenario{
		CostPerUnit: 10,
		Demand:      100,
		Capacity:    150,
	})
	model, err := BuildModel(inputs.Catalog, inputs.Routes, inputs.Demand, inputs.Capacity)
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewSimplexSolver().Solve(ctx, model)
	var solverErr *SolverFailureError
	if !errors.As(err, &solverErr) {
		t.Fatalf("expected SolverFailureError, got %v", err)
	}
	if solverErr.Status != StatusUndefined {
		t.Errorf("expected Undefined status, got %s", solverErr.Status)
	}
}

func TestSimplexSolver_ChoosesCheaperFacility(t *testing.T) {
	catalog := buildTestCatalog(t)

	routes, err := NewRouteTable(catalog, []Route{
		{Facility: "F1", Customer: "C1", Product: "P1", RouteInfo: RouteInfo{CostPerUnit: 2, TransitTimeDays: 1}},
		{Facility: "F2", Customer: "C1", Product: "P1", RouteInfo: RouteInfo{CostPerUnit: 3, TransitTimeDays: 2}},
	})
	if err != nil {
		t.Fatalf("NewRouteTable failed: %v", err)
	}
	demand, err := NewDemandTable(catalog, []DemandEntry{
		{Customer: "C1", Product: "P1", DemandInfo: DemandInfo{Demand: 100}},
	})
	if err != nil {
		t.Fatalf("NewDemandTable failed: %v", err)
	}
	capacity, err := NewCapacityTable(catalog, []CapacityEntry{
		{Facility: "F1", Product: "P1", CapacityInfo: CapacityInfo{Capacity: 60, Utilization: 0}},
		{Facility: "F2", Product: "P1", CapacityInfo: CapacityInfo{Capacity: 100, Utilization: 0}},
	})
	if err != nil {
		t.Fatalf("NewCapacityTable failed: %v", err)
	}

	sol := solveInputs(t, Inputs{Catalog: catalog, Routes: routes, Demand: demand, Capacity: capacity})

	if sol.Status != StatusOptimal {
		t.Fatalf("expected Optimal, got %s", sol.Status)
	}
	// 60 units on the cheap lane, the remaining 40 on the expensive one
	if !almostEqual(sol.TotalCost, 60*2+40*3) {
		t.Errorf("expected total cost 240, got %f", sol.TotalCost)
	}
	if !almostEqual(sol.Quantities["Shipment_F1_C1_P1"], 60) {
		t.Errorf("expected 60 units from F1, got %f", sol.Quantities["Shipment_F1_C1_P1"])
	}
	if !almostEqual(sol.Quantities["Shipment_F2_C1_P1"], 40) {
		t.Errorf("expected 40 units from F2, got %f", sol.Quantities["Shipment_F2_C1_P1"])
	}
}
