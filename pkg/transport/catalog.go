package transport

import (
	"fmt"
)

// Catalog holds the facility, customer and product entities for one
// planning run. It is immutable after construction. ID slices preserve
// load order so model building is deterministic.
type Catalog struct {
	facilityIDs []FacilityID
	customerIDs []CustomerID
	productIDs  []ProductID

	facilities map[FacilityID]Facility
	customers  map[CustomerID]Customer
	products   map[ProductID]Product
}

// NewCatalog builds a catalog from loaded entity tables. Duplicate IDs
// within a table are rejected.
func NewCatalog(facilities []Facility, customers []Customer, products []Product) (*Catalog, error) {
	c := &Catalog{
		facilities: make(map[FacilityID]Facility, len(facilities)),
		customers:  make(map[CustomerID]Customer, len(customers)),
		products:   make(map[ProductID]Product, len(products)),
	}

	for _, f := range facilities {
		if _, exists := c.facilities[f.ID]; exists {
			return nil, fmt.Errorf("duplicate facility_id %q", f.ID)
		}
		c.facilities[f.ID] = f
		c.facilityIDs = append(c.facilityIDs, f.ID)
	}

	for _, cu := range customers {
		if _, exists := c.customers[cu.ID]; exists {
			return nil, fmt.Errorf("duplicate customer_id %q", cu.ID)
		}
		c.customers[cu.ID] = cu
		c.customerIDs = append(c.customerIDs, cu.ID)
	}

	for _, p := range products {
		if _, exists := c.products[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product_id %q", p.ID)
		}
		c.products[p.ID] = p
		c.productIDs = append(c.productIDs, p.ID)
	}

	return c, nil
}

// FacilityIDs returns facility IDs in load order. The returned slice is
// shared and must not be modified.
func (c *Catalog) FacilityIDs() []FacilityID {
	return c.facilityIDs
}

// CustomerIDs returns customer IDs in load order. The returned slice is
// shared and must not be modified.
func (c *Catalog) CustomerIDs() []CustomerID {
	return c.customerIDs
}

// ProductIDs returns product IDs in load order. The returned slice is
// shared and must not be modified.
func (c *Catalog) ProductIDs() []ProductID {
	return c.productIDs
}

// Facility looks up a facility by ID
func (c *Catalog) Facility(id FacilityID) (Facility, bool) {
	f, ok := c.facilities[id]
	return f, ok
}

// Customer looks up a customer by ID
func (c *Catalog) Customer(id CustomerID) (Customer, bool) {
	cu, ok := c.customers[id]
	return cu, ok
}

// Product looks up a product by ID
func (c *Catalog) Product(id ProductID) (Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// NumFacilities returns the number of facilities in the catalog
func (c *Catalog) NumFacilities() int { return len(c.facilityIDs) }

// NumCustomers returns the number of customers in the catalog
func (c *Catalog) NumCustomers() int { return len(c.customerIDs) }

// NumProducts returns the number of products in the catalog
func (c *Catalog) NumProducts() int { return len(c.productIDs) }
