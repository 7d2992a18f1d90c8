package transport

import (
	"fmt"
	"sort"
)

// quantityEpsilon filters floating-point noise near zero: solver output
// for a variable at its zero bound can come back as a tiny positive or
// negative value rather than exactly zero.
const quantityEpsilon = 1e-6

// DecodeWarning records a recoverable defect found while reconstructing
// shipment records from solver output
type DecodeWarning struct {
	Identifier string
	Reason     string
}

// DecodeSolution reconstructs typed shipment records from the solver's
// variable identifiers, joining facility, customer, product and route
// attributes. Quantities at or below the noise epsilon are dropped. An
// identifier that cannot be decoded unambiguously aborts the decode; an
// identifier whose lane is missing from the route table yields a record
// with zero-valued cost attributes and a warning.
func DecodeSolution(sol *Solution, catalog *Catalog, routes *RouteTable) ([]ShipmentRecord, []DecodeWarning, error) {
	if sol == nil || len(sol.Quantities) == 0 {
		return nil, nil, nil
	}

	// Stable iteration order keeps records and warnings deterministic.
	names := make([]string, 0, len(sol.Quantities))
	for name := range sol.Quantities {
		names = append(names, name)
	}
	sort.Strings(names)

	var records []ShipmentRecord
	var warnings []DecodeWarning

	for _, name := range names {
		quantity := sol.Quantities[name]
		if quantity <= quantityEpsilon {
			continue
		}

		key, err := DecodeVariable(name)
		if err != nil {
			return nil, nil, err
		}

		rec := ShipmentRecord{
			Facility: key.Facility,
			Customer: key.Customer,
			Product:  key.Product,
			Quantity: quantity,
		}

		if info, ok := routes.Lookup(key.Facility, key.Customer, key.Product); ok {
			rec.UnitCost = info.CostPerUnit
			rec.TransitTime = info.TransitTimeDays
		} else {
			warnings = append(warnings, DecodeWarning{
				Identifier: name,
				Reason:     "lane not found in route table; zero cost and transit substituted",
			})
		}
		rec.TotalCost = rec.Quantity * rec.UnitCost

		if f, ok := catalog.Facility(key.Facility); ok {
			rec.FacilityLocation = f.Location
			rec.FacilityType = f.Type
		} else {
			warnings = append(warnings, DecodeWarning{
				Identifier: name,
				Reason:     fmt.Sprintf("facility %s not found in catalog", key.Facility),
			})
		}

		if c, ok := catalog.Customer(key.Customer); ok {
			rec.CustomerRegion = c.Region
			rec.CustomerSLA = c.ServiceLevelAgreement
		} else {
			warnings = append(warnings, DecodeWarning{
				Identifier: name,
				Reason:     fmt.Sprintf("customer %s not found in catalog", key.Customer),
			})
		}

		if p, ok := catalog.Product(key.Product); ok {
			rec.ProductCategory = p.Category
			rec.ProductWeight = p.Weight
			rec.IsPerishable = p.IsPerishable
			rec.ProductValue = p.Value
		} else {
			warnings = append(warnings, DecodeWarning{
				Identifier: name,
				Reason:     fmt.Sprintf("product %s not found in catalog", key.Product),
			})
		}

		records = append(records, rec)
	}

	return records, warnings, nil
}
