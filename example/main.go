package main

import (
	"context"
	"fmt"

	"github.com/optiship/optiship/pkg/infrastructure/repositories/memory"
	"github.com/optiship/optiship/pkg/transport"
)

func main() {
	ctx := context.Background()

	// Set up a small two-facility network
	catalog, err := transport.NewCatalog(
		[]transport.Facility{
			{ID: "WH-EAST", Location: "Newark", Type: "warehouse", OperationalCost: 12000},
			{ID: "WH-WEST", Location: "Oakland", Type: "warehouse", OperationalCost: 15000},
		},
		[]transport.Customer{
			{ID: "RETAIL-NYC", Region: "Northeast", PriorityCategory: "high", ServiceLevelAgreement: "48h"},
			{ID: "RETAIL-LA", Region: "West", PriorityCategory: "standard", ServiceLevelAgreement: "72h"},
		},
		[]transport.Product{
			{ID: "WIDGET", Category: "hardware", Weight: 1.5, IsPerishable: false, Value: 25},
			{ID: "PRODUCE", Category: "food", Weight: 0.8, IsPerishable: true, Value: 4},
		},
	)
	if err != nil {
		fmt.Printf("❌ Catalog failed: %v\n", err)
		return
	}

	// Author the cheap lanes only; the cross-facility lanes fall back to
	// penalty costs.
	routes, err := transport.NewRouteTable(catalog, []transport.Route{
		{Facility: "WH-EAST", Customer: "RETAIL-NYC", Product: "WIDGET", RouteInfo: transport.RouteInfo{CostPerUnit: 2.5, TransitTimeDays: 1}},
		{Facility: "WH-EAST", Customer: "RETAIL-NYC", Product: "PRODUCE", RouteInfo: transport.RouteInfo{CostPerUnit: 3.0, TransitTimeDays: 1}},
		{Facility: "WH-WEST", Customer: "RETAIL-LA", Product: "WIDGET", RouteInfo: transport.RouteInfo{CostPerUnit: 2.0, TransitTimeDays: 1}},
		{Facility: "WH-WEST", Customer: "RETAIL-LA", Product: "PRODUCE", RouteInfo: transport.RouteInfo{CostPerUnit: 2.8, TransitTimeDays: 2}},
	})
	if err != nil {
		fmt.Printf("❌ Route table failed: %v\n", err)
		return
	}

	demand, err := transport.NewDemandTable(catalog, []transport.DemandEntry{
		{Customer: "RETAIL-NYC", Product: "WIDGET", DemandInfo: transport.DemandInfo{Demand: 400, Volatility: 0.1}},
		{Customer: "RETAIL-NYC", Product: "PRODUCE", DemandInfo: transport.DemandInfo{Demand: 150, Volatility: 0.3}},
		{Customer: "RETAIL-LA", Product: "WIDGET", DemandInfo: transport.DemandInfo{Demand: 250, Volatility: 0.2}},
	})
	if err != nil {
		fmt.Printf("❌ Demand table failed: %v\n", err)
		return
	}

	capacity, err := transport.NewCapacityTable(catalog, []transport.CapacityEntry{
		{Facility: "WH-EAST", Product: "WIDGET", CapacityInfo: transport.CapacityInfo{Capacity: 500, Utilization: 0.2}},
		{Facility: "WH-WEST", Product: "WIDGET", CapacityInfo: transport.CapacityInfo{Capacity: 600, Utilization: 0.5}},
	})
	if err != nil {
		fmt.Printf("❌ Capacity table failed: %v\n", err)
		return
	}

	// Register the scenario so repeated runs reuse the same inputs
	scenarios := memory.NewScenarioRepository()
	if err := scenarios.Save("two-warehouse", transport.Inputs{
		Catalog:  catalog,
		Routes:   routes,
		Demand:   demand,
		Capacity: capacity,
	}); err != nil {
		fmt.Printf("❌ Scenario registration failed: %v\n", err)
		return
	}

	inputs, _ := scenarios.Get("two-warehouse")

	fmt.Println("🚚 Planning shipments...")
	if report := inputs.Routes.Report(); report.Count > 0 {
		fmt.Printf("  %d lanes missing from route data, penalty cost assigned\n", report.Count)
	}

	planner := transport.NewPlanner(nil)
	result, err := planner.Plan(ctx, inputs)
	if err != nil {
		fmt.Printf("❌ Planning failed: %v\n", err)
		return
	}

	fmt.Println("📊 Results:")
	fmt.Printf("  Status: %s\n", result.Solution.Status)
	fmt.Printf("  Total Cost: $%s\n", result.Schedule.TotalCost().StringFixed(2))
	fmt.Printf("  Shipments: %d\n", result.Schedule.Len())
	fmt.Println()

	for _, rec := range result.Schedule.Records() {
		fmt.Printf("  %s → %s  %s x %.0f @ $%.2f (%d days)\n",
			rec.Facility, rec.Customer, rec.Product, rec.Quantity, rec.UnitCost, rec.TransitTime)
	}
}
