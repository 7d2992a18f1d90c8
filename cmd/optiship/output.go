package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/optiship/optiship/pkg/transport"
)

// OutputConfig controls result rendering
type OutputConfig struct {
	Format    string
	OutputDir string
	TopN      int
	Baseline  float64
}

// generateOutput generates formatted output based on configuration
func generateOutput(result *transport.Result, config OutputConfig) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	case "html":
		return generateHTMLOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput generates human-readable text output
func generateTextOutput(result *transport.Result, config OutputConfig) error {
	schedule := result.Schedule
	if config.TopN > 0 {
		schedule = schedule.TopN(config.TopN)
	}

	var output string

	// Header
	output += "═══════════════════════════════════════════════════════════════\n"
	output += "               TRANSPORTATION PLANNING RESULTS\n"
	output += "═══════════════════════════════════════════════════════════════\n\n"

	// Summary statistics
	output += "📊 SUMMARY\n"
	output += fmt.Sprintf("  Run ID: %s\n", result.RunID)
	output += fmt.Sprintf("  Status: %s\n", result.Solution.Status)
	output += fmt.Sprintf("  Total Cost: $%s\n", decimal.NewFromFloat(result.Solution.TotalCost).StringFixed(2))
	output += fmt.Sprintf("  Shipments: %d\n", result.Schedule.Len())
	output += fmt.Sprintf("  Total Quantity: %.0f\n", result.Schedule.TotalQuantity())
	output += fmt.Sprintf("  Avg Cost/Unit: $%s\n", result.Schedule.AverageCostPerUnit().StringFixed(2))
	output += fmt.Sprintf("  Penalized Lanes: %d\n", result.RouteReport.Count)
	output += fmt.Sprintf("  Solve Time: %v\n", result.Duration)
	output += "\n"

	if result.Schedule.Empty() {
		output += "Schedule is empty: the optimal plan ships nothing.\n"
		fmt.Print(output)
		return nil
	}

	// Shipment schedule
	output += "🚚 SHIPMENT SCHEDULE"
	if config.TopN > 0 {
		output += fmt.Sprintf(" (top %d by quantity)", config.TopN)
	}
	output += "\n"
	output += "────────────────────────────────────────────────────────────────\n"

	for _, rec := range schedule.Records() {
		perishable := ""
		if rec.IsPerishable {
			perishable = "  [perishable]"
		}
		output += fmt.Sprintf("%-12s → %-12s %-12s Qty: %10.2f%s\n",
			rec.Facility, rec.Customer, rec.Product, rec.Quantity, perishable)
		output += fmt.Sprintf("  Unit Cost: $%-10s Transit: %2d days  Total: $%s\n",
			decimal.NewFromFloat(rec.UnitCost).StringFixed(2),
			rec.TransitTime,
			decimal.NewFromFloat(rec.TotalCost).StringFixed(2))
		output += "\n"
	}

	// Highlights
	if product, qty, ok := result.Schedule.TopProductByVolume(); ok {
		output += "🔍 HIGHLIGHTS\n"
		output += "────────────────────────────────────────────────────────────────\n"
		output += fmt.Sprintf("  Top product by volume: %s (%.0f units)\n", product, qty)
		if route, cost, ok := result.Schedule.TopRouteByCost(); ok {
			output += fmt.Sprintf("  Most expensive route: %s → %s ($%s)\n",
				route.Facility, route.Customer, cost.StringFixed(2))
		}
		output += "\n"
	}

	// Warnings
	if len(result.Warnings) > 0 {
		output += "⚠️  DECODE WARNINGS\n"
		output += "────────────────────────────────────────────────────────────────\n"
		for _, w := range result.Warnings {
			output += fmt.Sprintf("  %s: %s\n", w.Identifier, w.Reason)
		}
		output += "\n"
	}

	// Cost savings analysis against an externally supplied baseline
	if config.Baseline > 0 {
		baseline := decimal.NewFromFloat(config.Baseline)
		optimized := result.Schedule.TotalCost()
		savings := baseline.Sub(optimized)
		pct := savings.Div(baseline).Mul(decimal.NewFromInt(100))

		output += "💰 COST SAVINGS ANALYSIS\n"
		output += "────────────────────────────────────────────────────────────────\n"
		output += fmt.Sprintf("  Baseline Cost:  $%s\n", baseline.StringFixed(2))
		output += fmt.Sprintf("  Optimized Cost: $%s\n", optimized.StringFixed(2))
		output += fmt.Sprintf("  Total Savings:  $%s (%s%%)\n", savings.StringFixed(2), pct.StringFixed(1))
		output += "\n"
	}

	fmt.Print(output)
	return nil
}

// jsonResult is the JSON rendering of one run. The summary fields
// describe the shipments list, so a top-N filter applies to both.
type jsonResult struct {
	RunID          string                     `json:"run_id"`
	Status         string                     `json:"status"`
	TopN           int                        `json:"top_n,omitempty"`
	TotalCost      string                     `json:"total_cost"`
	TotalQuantity  float64                    `json:"total_quantity"`
	PenalizedLanes int                        `json:"penalized_lanes"`
	Shipments      []transport.ShipmentRecord `json:"shipments"`
	Warnings       []transport.DecodeWarning  `json:"warnings,omitempty"`
}

// generateJSONOutput writes the result as JSON
func generateJSONOutput(result *transport.Result, config OutputConfig) error {
	schedule := result.Schedule
	if config.TopN > 0 {
		schedule = schedule.TopN(config.TopN)
	}

	out := jsonResult{
		RunID:          result.RunID.String(),
		Status:         result.Solution.Status.String(),
		TopN:           config.TopN,
		TotalCost:      schedule.TotalCost().StringFixed(2),
		TotalQuantity:  schedule.TotalQuantity(),
		PenalizedLanes: result.RouteReport.Count,
		Shipments:      schedule.Records(),
		Warnings:       result.Warnings,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if config.OutputDir != "" {
		path := filepath.Join(config.OutputDir, "shipment_schedule.json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("Results written to %s\n", path)
		return nil
	}

	fmt.Println(string(data))
	return nil
}

// generateCSVOutput writes the schedule rows in the report column shape
func generateCSVOutput(result *transport.Result, config OutputConfig) error {
	schedule := result.Schedule
	if config.TopN > 0 {
		schedule = schedule.TopN(config.TopN)
	}

	out := os.Stdout
	if config.OutputDir != "" {
		path := filepath.Join(config.OutputDir, "shipment_schedule.csv")
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer file.Close()
		out = file
		defer fmt.Printf("Results written to %s\n", path)
	}

	writer := csv.NewWriter(out)
	defer writer.Flush()

	if err := writer.Write(transport.ScheduleColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range schedule.Rows() {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
