package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/optiship/optiship/pkg/transport"
)

//go:embed templates/*.html
var templateFS embed.FS

// htmlReport is the data handed to the report template
type htmlReport struct {
	RunID          string
	Status         string
	TotalCost      string
	TotalQuantity  string
	AvgCostPerUnit string
	Shipments      int
	PenalizedLanes int
	Columns        []string
	Rows           [][]string
	Warnings       []transport.DecodeWarning
	GeneratedAt    string
}

// generateHTMLOutput renders the result as a standalone HTML report
func generateHTMLOutput(result *transport.Result, config OutputConfig) error {
	schedule := result.Schedule
	if config.TopN > 0 {
		schedule = schedule.TopN(config.TopN)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	report := htmlReport{
		RunID:          result.RunID.String(),
		Status:         result.Solution.Status.String(),
		TotalCost:      result.Schedule.TotalCost().StringFixed(2),
		TotalQuantity:  decimal.NewFromFloat(result.Schedule.TotalQuantity()).StringFixed(0),
		AvgCostPerUnit: result.Schedule.AverageCostPerUnit().StringFixed(2),
		Shipments:      result.Schedule.Len(),
		PenalizedLanes: result.RouteReport.Count,
		Columns:        transport.ScheduleColumns,
		Rows:           schedule.Rows(),
		Warnings:       result.Warnings,
		GeneratedAt:    time.Now().Format("2006-01-02 15:04:05"),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if config.OutputDir != "" {
		path := filepath.Join(config.OutputDir, "shipment_schedule.html")
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("Results written to %s\n", path)
		return nil
	}

	_, err = os.Stdout.Write(buf.Bytes())
	return err
}
