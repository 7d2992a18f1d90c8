package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/optiship/optiship/pkg/transport"
)

// Scenario file names expected by LoadScenario
const (
	FacilitiesFile = "facilities.csv"
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	RoutesFile     = "transports.csv"
	DemandFile     = "demand.csv"
	CapacityFile   = "capacity.csv"
)

// Loader handles loading planning data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// Files names the six CSV tables of one scenario
type Files struct {
	Facilities string
	Customers  string
	Products   string
	Routes     string
	Demand     string
	Capacity   string
}

// LoadScenario loads all six tables from a directory using the
// conventional file names and assembles the immutable inputs for one
// optimization run
func (l *Loader) LoadScenario(dir string) (transport.Inputs, error) {
	return l.LoadFiles(Files{
		Facilities: filepath.Join(dir, FacilitiesFile),
		Customers:  filepath.Join(dir, CustomersFile),
		Products:   filepath.Join(dir, ProductsFile),
		Routes:     filepath.Join(dir, RoutesFile),
		Demand:     filepath.Join(dir, DemandFile),
		Capacity:   filepath.Join(dir, CapacityFile),
	})
}

// LoadFiles loads the six tables from explicit paths and assembles the
// immutable inputs for one optimization run
func (l *Loader) LoadFiles(files Files) (transport.Inputs, error) {
	facilities, err := l.LoadFacilities(files.Facilities)
	if err != nil {
		return transport.Inputs{}, err
	}
	customers, err := l.LoadCustomers(files.Customers)
	if err != nil {
		return transport.Inputs{}, err
	}
	products, err := l.LoadProducts(files.Products)
	if err != nil {
		return transport.Inputs{}, err
	}

	catalog, err := transport.NewCatalog(facilities, customers, products)
	if err != nil {
		return transport.Inputs{}, err
	}

	authored, err := l.LoadRoutes(files.Routes)
	if err != nil {
		return transport.Inputs{}, err
	}
	routes, err := transport.NewRouteTable(catalog, authored)
	if err != nil {
		return transport.Inputs{}, err
	}

	demandEntries, err := l.LoadDemand(files.Demand)
	if err != nil {
		return transport.Inputs{}, err
	}
	demand, err := transport.NewDemandTable(catalog, demandEntries)
	if err != nil {
		return transport.Inputs{}, err
	}

	capacityEntries, err := l.LoadCapacity(files.Capacity)
	if err != nil {
		return transport.Inputs{}, err
	}
	capacity, err := transport.NewCapacityTable(catalog, capacityEntries)
	if err != nil {
		return transport.Inputs{}, err
	}

	return transport.Inputs{
		Catalog:  catalog,
		Routes:   routes,
		Demand:   demand,
		Capacity: capacity,
	}, nil
}

// LoadFacilities loads facilities from a CSV file
func (l *Loader) LoadFacilities(filename string) ([]transport.Facility, error) {
	records, err := readTable(filename, "facilities",
		[]string{"facility_id", "location", "type", "operational_cost"})
	if err != nil {
		return nil, err
	}

	var facilities []transport.Facility
	for i, record := range records {
		operationalCost, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("facilities CSV row %d: invalid operational_cost: %s", i+2, record[3])
		}

		facilities = append(facilities, transport.Facility{
			ID:              transport.FacilityID(record[0]),
			Location:        record[1],
			Type:            record[2],
			OperationalCost: operationalCost,
		})
	}

	return facilities, nil
}

// LoadCustomers loads customers from a CSV file
func (l *Loader) LoadCustomers(filename string) ([]transport.Customer, error) {
	records, err := readTable(filename, "customers",
		[]string{"customer_id", "region", "priority_demand_category", "service_level_agreement"})
	if err != nil {
		return nil, err
	}

	var customers []transport.Customer
	for _, record := range records {
		customers = append(customers, transport.Customer{
			ID:                    transport.CustomerID(record[0]),
			Region:                record[1],
			PriorityCategory:      record[2],
			ServiceLevelAgreement: record[3],
		})
	}

	return customers, nil
}

// LoadProducts loads products from a CSV file
func (l *Loader) LoadProducts(filename string) ([]transport.Product, error) {
	records, err := readTable(filename, "products",
		[]string{"product_id", "category", "weight", "is_perishable", "value"})
	if err != nil {
		return nil, err
	}

	var products []transport.Product
	for i, record := range records {
		weight, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: invalid weight: %s", i+2, record[2])
		}

		isPerishable, err := parseBool(record[3])
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: invalid is_perishable: %s", i+2, record[3])
		}

		value, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: invalid value: %s", i+2, record[4])
		}

		products = append(products, transport.Product{
			ID:           transport.ProductID(record[0]),
			Category:     record[1],
			Weight:       weight,
			IsPerishable: isPerishable,
			Value:        value,
		})
	}

	return products, nil
}

// LoadRoutes loads authored lanes from a CSV file. The file is not
// required to cover every lane; missing lanes receive penalty entries
// when the route table is built.
func (l *Loader) LoadRoutes(filename string) ([]transport.Route, error) {
	records, err := readTable(filename, "routes",
		[]string{"facility_id", "customer_id", "product_id", "cost_per_unit", "transit_time_days"})
	if err != nil {
		return nil, err
	}

	var routes []transport.Route
	for i, record := range records {
		costPerUnit, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("routes CSV row %d: invalid cost_per_unit: %s", i+2, record[3])
		}

		transitDays, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("routes CSV row %d: invalid transit_time_days: %s", i+2, record[4])
		}

		routes = append(routes, transport.Route{
			Facility: transport.FacilityID(record[0]),
			Customer: transport.CustomerID(record[1]),
			Product:  transport.ProductID(record[2]),
			RouteInfo: transport.RouteInfo{
				CostPerUnit:     costPerUnit,
				TransitTimeDays: transitDays,
			},
		})
	}

	return routes, nil
}

// LoadDemand loads demand requirements from a CSV file
func (l *Loader) LoadDemand(filename string) ([]transport.DemandEntry, error) {
	records, err := readTable(filename, "demand",
		[]string{"customer_id", "product_id", "demand", "demand_volatility"})
	if err != nil {
		return nil, err
	}

	var entries []transport.DemandEntry
	for i, record := range records {
		demand, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("demand CSV row %d: invalid demand: %s", i+2, record[2])
		}

		volatility, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("demand CSV row %d: invalid demand_volatility: %s", i+2, record[3])
		}

		entries = append(entries, transport.DemandEntry{
			Customer: transport.CustomerID(record[0]),
			Product:  transport.ProductID(record[1]),
			DemandInfo: transport.DemandInfo{
				Demand:     demand,
				Volatility: volatility,
			},
		})
	}

	return entries, nil
}

// LoadCapacity loads capacity limits from a CSV file
func (l *Loader) LoadCapacity(filename string) ([]transport.CapacityEntry, error) {
	records, err := readTable(filename, "capacity",
		[]string{"facility_id", "product_id", "capacity", "current_utilization"})
	if err != nil {
		return nil, err
	}

	var entries []transport.CapacityEntry
	for i, record := range records {
		capacity, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("capacity CSV row %d: invalid capacity: %s", i+2, record[2])
		}

		utilization, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("capacity CSV row %d: invalid current_utilization: %s", i+2, record[3])
		}

		entries = append(entries, transport.CapacityEntry{
			Facility: transport.FacilityID(record[0]),
			Product:  transport.ProductID(record[1]),
			CapacityInfo: transport.CapacityInfo{
				Capacity:    capacity,
				Utilization: utilization,
			},
		})
	}

	return entries, nil
}

// readTable opens a CSV file, validates its header and returns the data
// rows with per-row column counts checked
func readTable(filename, table string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", table, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", table, err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("%s CSV must have a header row", table)
	}

	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v", table, expectedHeader, records[0])
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s CSV row %d: expected %d columns, got %d", table, i+2, len(expectedHeader), len(record))
		}
	}

	return records[1:], nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected true/false, got %q", s)
	}
}
