// Command cli analyzes a local CSV or XLSX export without a server or a
// database: read, analyze, print JSON to stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"tajir/adapters/excel"
	"tajir/app"
	"tajir/domain/analysis"
	"tajir/domain/roles"
	"tajir/internal/report"
)

func main() {
	var (
		file    = flag.String("file", "", "path to a CSV or XLSX export (required)")
		kind    = flag.String("kind", "", "analysis kind; empty runs the full dashboard")
		hints   = flag.String("hints", "", "role hints as role=column pairs, comma separated")
		horizon = flag.Int("horizon", 0, "forecast horizon in days (forecast kind only)")
		html    = flag.Bool("html", false, "render an HTML digest instead of JSON")
	)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	records, columns, err := excel.NewDataReader(*file).Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", *file, err)
		os.Exit(1)
	}

	roleHints, err := parseHints(*hints)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	service := app.NewAnalysisService()
	ctx := context.Background()

	var results []analysis.Result
	if *kind == "" {
		results = service.RunDashboard(ctx, records, columns, roleHints, analysis.AllKinds)
	} else {
		k := analysis.Kind(*kind)
		if !k.IsValid() {
			fmt.Fprintf(os.Stderr, "unknown analysis kind %q\n", *kind)
			os.Exit(2)
		}
		results = []analysis.Result{service.Run(ctx, app.Request{
			Kind:        k,
			Records:     records,
			Columns:     columns,
			Hints:       roleHints,
			HorizonDays: *horizon,
		})}
	}

	if *html {
		for _, r := range results {
			fmt.Println(report.HTML(r))
		}
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			fmt.Fprintf(os.Stderr, "encoding result: %v\n", err)
			os.Exit(1)
		}
	}
}

// parseHints turns "revenue=Total,date=Order Date" into a role map.
func parseHints(raw string) (roles.ColumnRoleMap, error) {
	if raw == "" {
		return nil, nil
	}
	hints := roles.ColumnRoleMap{}
	for _, pair := range strings.Split(raw, ",") {
		role, column, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || role == "" || column == "" {
			return nil, fmt.Errorf("bad hint %q, want role=column", pair)
		}
		hints[roles.Role(role)] = column
	}
	return hints, nil
}
