package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/optiship/optiship/pkg/infrastructure/events"
	csvrepo "github.com/optiship/optiship/pkg/infrastructure/repositories/csv"
	"github.com/optiship/optiship/pkg/logger"
	"github.com/optiship/optiship/pkg/transport"
)

func main() {
	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing CSV files",
		)
		facilitiesFile = flag.String("facilities", "", "Path to facilities CSV file")
		customersFile  = flag.String("customers", "", "Path to customers CSV file")
		productsFile   = flag.String("products", "", "Path to products CSV file")
		routesFile     = flag.String("routes", "", "Path to transports CSV file")
		demandFile     = flag.String("demand", "", "Path to demand CSV file")
		capacityFile   = flag.String("capacity", "", "Path to capacity CSV file")
		outputDir      = flag.String("output", "", "Output directory for results (optional)")
		format         = flag.String("format", "text", "Output format: text, json, csv, html")
		topN           = flag.Int("top", 0, "Limit output to the N largest shipments by quantity")
		baseline       = flag.Float64("baseline", 0, "Baseline cost for the savings analysis (optional)")
		verbose        = flag.Bool("verbose", false, "Enable verbose output")
		help           = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	if *help {
		printUsage()
		return
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger.Init(logger.Config{Level: level, Format: "console", Output: os.Stderr})

	loader := csvrepo.NewLoader()

	var inputs transport.Inputs
	var err error
	switch {
	case *scenarioDir != "":
		inputs, err = loader.LoadScenario(*scenarioDir)
	case *facilitiesFile != "" && *customersFile != "" && *productsFile != "" &&
		*routesFile != "" && *demandFile != "" && *capacityFile != "":
		inputs, err = loader.LoadFiles(csvrepo.Files{
			Facilities: *facilitiesFile,
			Customers:  *customersFile,
			Products:   *productsFile,
			Routes:     *routesFile,
			Demand:     *demandFile,
			Capacity:   *capacityFile,
		})
	default:
		fmt.Fprintln(os.Stderr, "Error: provide -scenario or all six table file flags")
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		os.Exit(1)
	}

	store := events.NewInMemoryStore()
	recorder := events.NewRecorder(store)

	planner := transport.NewPlanner(nil)
	result, err := planner.Plan(context.Background(), inputs)
	if err != nil {
		var solverErr *transport.SolverFailureError
		if errors.As(err, &solverErr) && result != nil {
			recorder.RunFailed(inputs, result)
			fmt.Fprintf(os.Stderr, "No optimal solution found. Status: %s\n", solverErr.Status)
			if *verbose {
				printAuditTrail(store, result)
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	recorder.RunCompleted(inputs, result)

	config := OutputConfig{
		Format:    *format,
		OutputDir: *outputDir,
		TopN:      *topN,
		Baseline:  *baseline,
	}
	if err := generateOutput(result, config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		printAuditTrail(store, result)
	}
}

func printAuditTrail(store events.Store, result *transport.Result) {
	fmt.Fprintln(os.Stderr, "Run audit trail:")
	for _, event := range store.Events(result.RunID) {
		fmt.Fprintf(os.Stderr, "  %d  %-25s %+v\n", event.Version, event.Type, event.Data)
	}
}

func printUsage() {
	fmt.Println("optiship - transportation planning over facilities, customers and products")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  optiship -scenario <dir> [options]")
	fmt.Println("  optiship -facilities <file> -customers <file> -products <file> \\")
	fmt.Println("           -routes <file> -demand <file> -capacity <file> [options]")
	fmt.Println()
	fmt.Println("The scenario directory must contain facilities.csv, customers.csv,")
	fmt.Println("products.csv, transports.csv, demand.csv and capacity.csv.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}
