package transport

import (
	"testing"

	"github.com/shopspring/decimal"
)

func sampleRecords() []ShipmentRecord {
	return []ShipmentRecord{
		{Facility: "F2", Customer: "C1", Product: "P1", Quantity: 40, UnitCost: 3, TotalCost: 120, TransitTime: 2},
		{Facility: "F1", Customer: "C2", Product: "P1", Quantity: 10, UnitCost: 5, TotalCost: 50, TransitTime: 1},
		{Facility: "F1", Customer: "C1", Product: "P2", Quantity: 60, UnitCost: 2, TotalCost: 120, TransitTime: 1, IsPerishable: true},
		{Facility: "F1", Customer: "C1", Product: "P1", Quantity: 30, UnitCost: 2, TotalCost: 60, TransitTime: 1},
	}
}

func TestSchedule_DeterministicOrder(t *testing.T) {
	schedule := AssembleSchedule(sampleRecords())

	want := []RouteKey{
		{"F1", "C1", "P1"},
		{"F1", "C1", "P2"},
		{"F1", "C2", "P1"},
		{"F2", "C1", "P1"},
	}

	records := schedule.Records()
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, rec := range records {
		got := RouteKey{rec.Facility, rec.Customer, rec.Product}
		if got != want[i] {
			t.Errorf("record %d: expected %+v, got %+v", i, want[i], got)
		}
	}
}

func TestSchedule_EmptySignal(t *testing.T) {
	empty := AssembleSchedule(nil)
	if !empty.Empty() {
		t.Error("expected empty schedule for no records")
	}

	// Non-positive quantities do not count as shipments
	zeroOnly := AssembleSchedule([]ShipmentRecord{
		{Facility: "F1", Customer: "C1", Product: "P1", Quantity: 0},
	})
	if !zeroOnly.Empty() {
		t.Error("expected zero-quantity records to be dropped")
	}

	if AssembleSchedule(sampleRecords()).Empty() {
		t.Error("expected non-empty schedule")
	}
}

func TestSchedule_RowShape(t *testing.T) {
	wantColumns := []string{
		"Facility", "Facility_Location", "Facility_Type",
		"Customer", "Customer_Region", "Customer_SLA",
		"Product", "Product_Category", "Product_Weight",
		"Quantity", "Unit_Cost", "Transit_Time", "Total_Cost",
		"Is_Perishable", "Product_Value",
	}

	if len(ScheduleColumns) != len(wantColumns) {
		t.Fatalf("expected %d columns, got %d", len(wantColumns), len(ScheduleColumns))
	}
	for i, col := range wantColumns {
		if ScheduleColumns[i] != col {
			t.Errorf("column %d: expected %q, got %q", i, col, ScheduleColumns[i])
		}
	}

	schedule := AssembleSchedule([]ShipmentRecord{{
		Facility:         "F1",
		FacilityLocation: "Chicago",
		FacilityType:     "warehouse",
		Customer:         "C1",
		CustomerRegion:   "Midwest",
		CustomerSLA:      "24h",
		Product:          "P1",
		ProductCategory:  "hardware",
		ProductWeight:    2,
		Quantity:         100,
		UnitCost:         10,
		TransitTime:      2,
		TotalCost:        1000,
		IsPerishable:     false,
		ProductValue:     50,
	}})

	rows := schedule.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if len(row) != len(ScheduleColumns) {
		t.Fatalf("expected %d cells, got %d", len(ScheduleColumns), len(row))
	}

	want := []string{
		"F1", "Chicago", "warehouse",
		"C1", "Midwest", "24h",
		"P1", "hardware", "2",
		"100", "10", "2", "1000",
		"false", "50",
	}
	for i, cell := range want {
		if row[i] != cell {
			t.Errorf("cell %s: expected %q, got %q", ScheduleColumns[i], cell, row[i])
		}
	}
}

func TestSchedule_Aggregates(t *testing.T) {
	schedule := AssembleSchedule(sampleRecords())

	if !almostEqual(schedule.TotalQuantity(), 140) {
		t.Errorf("expected total quantity 140, got %f", schedule.TotalQuantity())
	}
	if !schedule.TotalCost().Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected total cost 350, got %s", schedule.TotalCost())
	}
	if !schedule.AverageCostPerUnit().Equal(decimal.NewFromInt(350).Div(decimal.NewFromInt(140))) {
		t.Errorf("unexpected average cost per unit: %s", schedule.AverageCostPerUnit())
	}

	byFacilityProduct := schedule.QuantityByFacilityProduct()
	if qty := byFacilityProduct[CapacityKey{"F1", "P1"}]; !almostEqual(qty, 40) {
		t.Errorf("expected F1/P1 quantity 40, got %f", qty)
	}
	if qty := byFacilityProduct[CapacityKey{"F2", "P1"}]; !almostEqual(qty, 40) {
		t.Errorf("expected F2/P1 quantity 40, got %f", qty)
	}

	byCustomerProduct := schedule.QuantityByCustomerProduct()
	if qty := byCustomerProduct[DemandKey{"C1", "P1"}]; !almostEqual(qty, 70) {
		t.Errorf("expected C1/P1 quantity 70, got %f", qty)
	}

	byRoute := schedule.CostByFacilityCustomer()
	if cost := byRoute[FacilityCustomer{"F1", "C1"}]; !cost.Equal(decimal.NewFromInt(180)) {
		t.Errorf("expected F1->C1 cost 180, got %s", cost)
	}
}

func TestSchedule_Highlights(t *testing.T) {
	schedule := AssembleSchedule(sampleRecords())

	product, qty, ok := schedule.TopProductByVolume()
	if !ok || product != "P1" || !almostEqual(qty, 80) {
		t.Errorf("expected top product P1 with 80 units, got %s %f ok=%v", product, qty, ok)
	}

	route, cost, ok := schedule.TopRouteByCost()
	if !ok || route != (FacilityCustomer{"F1", "C1"}) || !cost.Equal(decimal.NewFromInt(180)) {
		t.Errorf("expected top route F1->C1 at 180, got %+v %s ok=%v", route, cost, ok)
	}

	var emptySchedule = AssembleSchedule(nil)
	if _, _, ok := emptySchedule.TopProductByVolume(); ok {
		t.Error("expected no top product for empty schedule")
	}
}

func TestSchedule_TopN(t *testing.T) {
	schedule := AssembleSchedule(sampleRecords())

	top2 := schedule.TopN(2)
	if top2.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", top2.Len())
	}
	// The two largest shipments are 60 (F1/C1/P2) and 40 (F2/C1/P1),
	// re-sorted into the deterministic record order.
	records := top2.Records()
	if records[0].Facility != "F1" || records[0].Product != "P2" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Facility != "F2" || records[1].Product != "P1" {
		t.Errorf("unexpected second record: %+v", records[1])
	}

	if schedule.TopN(0) != schedule || schedule.TopN(10) != schedule {
		t.Error("expected out-of-range TopN to return the schedule unchanged")
	}
}
