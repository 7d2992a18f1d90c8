package transport

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// ScheduleColumns is the tabular row shape consumed by report
// generators. Order and spelling are a contract.
var ScheduleColumns = []string{
	"Facility",
	"Facility_Location",
	"Facility_Type",
	"Customer",
	"Customer_Region",
	"Customer_SLA",
	"Product",
	"Product_Category",
	"Product_Weight",
	"Quantity",
	"Unit_Cost",
	"Transit_Time",
	"Total_Cost",
	"Is_Perishable",
	"Product_Value",
}

// FacilityCustomer identifies a facility-to-customer route in aggregate
// views
type FacilityCustomer struct {
	Facility FacilityID
	Customer CustomerID
}

// Schedule is the assembled shipment plan: decoded records filtered to
// positive quantities and sorted by (facility, customer, product) for
// deterministic output. An empty schedule is a valid result, distinct
// from a failed solve.
type Schedule struct {
	records []ShipmentRecord
}

// AssembleSchedule filters and orders decoded shipment records into the
// final plan
func AssembleSchedule(records []ShipmentRecord) *Schedule {
	s := &Schedule{records: make([]ShipmentRecord, 0, len(records))}
	for _, rec := range records {
		if rec.Quantity > 0 {
			s.records = append(s.records, rec)
		}
	}

	sort.Slice(s.records, func(i, j int) bool {
		a, b := s.records[i], s.records[j]
		if a.Facility != b.Facility {
			return a.Facility < b.Facility
		}
		if a.Customer != b.Customer {
			return a.Customer < b.Customer
		}
		return a.Product < b.Product
	})

	return s
}

// Empty reports whether the schedule contains no positive-quantity
// shipment. Callers use this to distinguish "solved with zero shipments"
// from "no solution".
func (s *Schedule) Empty() bool {
	return len(s.records) == 0
}

// Len returns the number of shipment records
func (s *Schedule) Len() int {
	return len(s.records)
}

// Records returns the ordered shipment records. The returned slice is
// shared and must not be modified.
func (s *Schedule) Records() []ShipmentRecord {
	return s.records
}

// Rows renders the schedule in the ScheduleColumns shape
func (s *Schedule) Rows() [][]string {
	rows := make([][]string, 0, len(s.records))
	for _, r := range s.records {
		rows = append(rows, []string{
			string(r.Facility),
			r.FacilityLocation,
			r.FacilityType,
			string(r.Customer),
			r.CustomerRegion,
			r.CustomerSLA,
			string(r.Product),
			r.ProductCategory,
			strconv.FormatFloat(r.ProductWeight, 'f', -1, 64),
			strconv.FormatFloat(r.Quantity, 'f', -1, 64),
			decimal.NewFromFloat(r.UnitCost).String(),
			strconv.Itoa(r.TransitTime),
			decimal.NewFromFloat(r.TotalCost).String(),
			strconv.FormatBool(r.IsPerishable),
			decimal.NewFromFloat(r.ProductValue).String(),
		})
	}
	return rows
}

// TotalQuantity returns the total shipped quantity across all records
func (s *Schedule) TotalQuantity() float64 {
	var total float64
	for _, r := range s.records {
		total += r.Quantity
	}
	return total
}

// TotalCost sums the per-record transport cost. Decimal arithmetic keeps
// report totals free of float accumulation drift.
func (s *Schedule) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.records {
		total = total.Add(decimal.NewFromFloat(r.TotalCost))
	}
	return total
}

// AverageCostPerUnit returns the quantity-weighted average unit cost, or
// zero for an empty schedule
func (s *Schedule) AverageCostPerUnit() decimal.Decimal {
	qty := s.TotalQuantity()
	if qty == 0 {
		return decimal.Zero
	}
	return s.TotalCost().Div(decimal.NewFromFloat(qty))
}

// QuantityByFacilityProduct aggregates shipped quantity per facility and
// product
func (s *Schedule) QuantityByFacilityProduct() map[CapacityKey]float64 {
	agg := make(map[CapacityKey]float64)
	for _, r := range s.records {
		agg[CapacityKey{r.Facility, r.Product}] += r.Quantity
	}
	return agg
}

// QuantityByCustomerProduct aggregates shipped quantity per customer and
// product
func (s *Schedule) QuantityByCustomerProduct() map[DemandKey]float64 {
	agg := make(map[DemandKey]float64)
	for _, r := range s.records {
		agg[DemandKey{r.Customer, r.Product}] += r.Quantity
	}
	return agg
}

// CostByFacilityCustomer aggregates transport cost per route
func (s *Schedule) CostByFacilityCustomer() map[FacilityCustomer]decimal.Decimal {
	agg := make(map[FacilityCustomer]decimal.Decimal)
	for _, r := range s.records {
		key := FacilityCustomer{r.Facility, r.Customer}
		cur, ok := agg[key]
		if !ok {
			cur = decimal.Zero
		}
		agg[key] = cur.Add(decimal.NewFromFloat(r.TotalCost))
	}
	return agg
}

// TopProductByVolume returns the product with the largest shipped
// quantity. ok is false for an empty schedule.
func (s *Schedule) TopProductByVolume() (ProductID, float64, bool) {
	byProduct := make(map[ProductID]float64)
	for _, r := range s.records {
		byProduct[r.Product] += r.Quantity
	}

	var top ProductID
	var topQty float64
	found := false
	for p, qty := range byProduct {
		if !found || qty > topQty || (qty == topQty && p < top) {
			top, topQty, found = p, qty, true
		}
	}
	return top, topQty, found
}

// TopRouteByCost returns the facility-to-customer route with the largest
// total cost. ok is false for an empty schedule.
func (s *Schedule) TopRouteByCost() (FacilityCustomer, decimal.Decimal, bool) {
	byRoute := s.CostByFacilityCustomer()

	var top FacilityCustomer
	topCost := decimal.Zero
	found := false
	for route, cost := range byRoute {
		better := cost.GreaterThan(topCost)
		tie := cost.Equal(topCost) && (route.Facility < top.Facility ||
			(route.Facility == top.Facility && route.Customer < top.Customer))
		if !found || better || tie {
			top, topCost, found = route, cost, true
		}
	}
	return top, topCost, found
}

// TopN returns a new schedule containing the n largest shipments by
// quantity, re-sorted into the deterministic record order. n <= 0 or
// n >= Len returns the schedule unchanged.
func (s *Schedule) TopN(n int) *Schedule {
	if n <= 0 || n >= len(s.records) {
		return s
	}

	byQty := make([]ShipmentRecord, len(s.records))
	copy(byQty, s.records)
	sort.SliceStable(byQty, func(i, j int) bool {
		return byQty[i].Quantity > byQty[j].Quantity
	})

	return AssembleSchedule(byQty[:n])
}
