package transport

import (
	"fmt"
)

// DemandEntry is an authored demand row as loaded from external data
type DemandEntry struct {
	Customer CustomerID
	Product  ProductID
	DemandInfo
}

// CapacityEntry is an authored capacity row as loaded from external data
type CapacityEntry struct {
	Facility FacilityID
	Product  ProductID
	CapacityInfo
}

// DemandTable holds demand requirements keyed by (customer, product).
// Only pairs present in the table generate demand constraints; an absent
// pair means no requirement, not a requirement of zero.
type DemandTable struct {
	keys    []DemandKey
	demands map[DemandKey]DemandInfo
}

// NewDemandTable validates demand rows against the catalog and indexes
// them by (customer, product). A row referencing an unknown customer or
// product is a fatal dangling reference.
func NewDemandTable(catalog *Catalog, entries []DemandEntry) (*DemandTable, error) {
	t := &DemandTable{demands: make(map[DemandKey]DemandInfo, len(entries))}

	for _, e := range entries {
		if _, ok := catalog.Customer(e.Customer); !ok {
			return nil, &DataIntegrityError{Table: "demand", Field: "customer_id", ID: string(e.Customer)}
		}
		if _, ok := catalog.Product(e.Product); !ok {
			return nil, &DataIntegrityError{Table: "demand", Field: "product_id", ID: string(e.Product)}
		}
		if e.Demand < 0 {
			return nil, fmt.Errorf("negative demand %.2f for customer %s product %s", e.Demand, e.Customer, e.Product)
		}
		key := DemandKey{e.Customer, e.Product}
		if _, exists := t.demands[key]; exists {
			return nil, fmt.Errorf("duplicate demand entry for customer %s product %s", e.Customer, e.Product)
		}
		t.demands[key] = e.DemandInfo
		t.keys = append(t.keys, key)
	}

	return t, nil
}

// Keys returns demand keys in load order. The returned slice is shared
// and must not be modified.
func (t *DemandTable) Keys() []DemandKey {
	return t.keys
}

// Lookup returns the demand attributes for a (customer, product) pair
func (t *DemandTable) Lookup(c CustomerID, p ProductID) (DemandInfo, bool) {
	info, ok := t.demands[DemandKey{c, p}]
	return info, ok
}

// Len returns the number of demand requirements
func (t *DemandTable) Len() int { return len(t.keys) }

// CapacityTable holds capacity limits keyed by (facility, product).
// Only pairs present in the table generate capacity constraints; an
// absent pair means unlimited capacity, a deliberately permissive
// default.
type CapacityTable struct {
	keys       []CapacityKey
	capacities map[CapacityKey]CapacityInfo
}

// NewCapacityTable validates capacity rows against the catalog and
// indexes them by (facility, product). Dangling references and negative
// available capacity (utilization above 100%) are fatal.
func NewCapacityTable(catalog *Catalog, entries []CapacityEntry) (*CapacityTable, error) {
	t := &CapacityTable{capacities: make(map[CapacityKey]CapacityInfo, len(entries))}

	for _, e := range entries {
		if _, ok := catalog.Facility(e.Facility); !ok {
			return nil, &DataIntegrityError{Table: "capacity", Field: "facility_id", ID: string(e.Facility)}
		}
		if _, ok := catalog.Product(e.Product); !ok {
			return nil, &DataIntegrityError{Table: "capacity", Field: "product_id", ID: string(e.Product)}
		}
		if e.Capacity < 0 {
			return nil, fmt.Errorf("negative capacity %.2f for facility %s product %s", e.Capacity, e.Facility, e.Product)
		}
		if e.Available() < 0 {
			return nil, &NegativeCapacityError{
				Facility:    e.Facility,
				Product:     e.Product,
				Capacity:    e.Capacity,
				Utilization: e.Utilization,
			}
		}
		key := CapacityKey{e.Facility, e.Product}
		if _, exists := t.capacities[key]; exists {
			return nil, fmt.Errorf("duplicate capacity entry for facility %s product %s", e.Facility, e.Product)
		}
		t.capacities[key] = e.CapacityInfo
		t.keys = append(t.keys, key)
	}

	return t, nil
}

// Keys returns capacity keys in load order. The returned slice is shared
// and must not be modified.
func (t *CapacityTable) Keys() []CapacityKey {
	return t.keys
}

// Lookup returns the capacity attributes for a (facility, product) pair
func (t *CapacityTable) Lookup(f FacilityID, p ProductID) (CapacityInfo, bool) {
	info, ok := t.capacities[CapacityKey{f, p}]
	return info, ok
}

// Len returns the number of capacity limits
func (t *CapacityTable) Len() int { return len(t.keys) }
