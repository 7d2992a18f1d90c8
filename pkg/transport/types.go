package transport

// FacilityID represents a unique facility identifier
type FacilityID string

// CustomerID represents a unique customer identifier
type CustomerID string

// ProductID represents a unique product identifier
type ProductID string

// Facility represents a shipping origin with its properties
type Facility struct {
	ID              FacilityID
	Location        string
	Type            string
	OperationalCost float64
}

// Customer represents a shipping destination with its properties
type Customer struct {
	ID                    CustomerID
	Region                string
	PriorityCategory      string
	ServiceLevelAgreement string
}

// Product represents a shippable item with its properties
type Product struct {
	ID           ProductID
	Category     string
	Weight       float64
	IsPerishable bool
	Value        float64
}

// RouteKey identifies a lane in the transportation network
type RouteKey struct {
	Facility FacilityID
	Customer CustomerID
	Product  ProductID
}

// RouteInfo holds the cost attributes of a lane
type RouteInfo struct {
	CostPerUnit     float64
	TransitTimeDays int
}

// Route is an authored lane entry as loaded from external data
type Route struct {
	Facility FacilityID
	Customer CustomerID
	Product  ProductID
	RouteInfo
}

// DemandKey identifies a demand requirement
type DemandKey struct {
	Customer CustomerID
	Product  ProductID
}

// DemandInfo holds the demand attributes for a customer/product pair.
// A pair absent from the demand table imposes no constraint.
type DemandInfo struct {
	Demand     float64
	Volatility float64
}

// CapacityKey identifies a capacity limit
type CapacityKey struct {
	Facility FacilityID
	Product  ProductID
}

// CapacityInfo holds the capacity attributes for a facility/product pair.
// A pair absent from the capacity table imposes no constraint, which means
// unlimited supply of that product from that facility.
type CapacityInfo struct {
	Capacity    float64
	Utilization float64
}

// Available returns the usable capacity after current utilization
func (c CapacityInfo) Available() float64 {
	return c.Capacity * (1 - c.Utilization)
}

// SolveStatus represents the outcome reported by the solver
type SolveStatus int

const (
	StatusUndefined SolveStatus = iota
	StatusOptimal
	StatusInfeasible
	StatusUnbounded
)

func (s SolveStatus) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	default:
		return "Undefined"
	}
}

// Solution contains the solver's output for one model.
// Quantities holds non-zero variable values keyed by variable name;
// TotalCost is only meaningful when Status is StatusOptimal.
type Solution struct {
	Status     SolveStatus
	TotalCost  float64
	Quantities map[string]float64
}

// ShipmentRecord is a denormalized shipment row joining a non-zero
// decision variable with facility, customer, product and route attributes
type ShipmentRecord struct {
	Facility         FacilityID
	FacilityLocation string
	FacilityType     string
	Customer         CustomerID
	CustomerRegion   string
	CustomerSLA      string
	Product          ProductID
	ProductCategory  string
	ProductWeight    float64
	Quantity         float64
	UnitCost         float64
	TransitTime      int
	TotalCost        float64
	IsPerishable     bool
	ProductValue     float64
}
