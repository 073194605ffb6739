// Command gendata writes a synthetic BTS-style Border Crossing Entry Data CSV
// for local pipeline runs. Output is deterministic for a given seed, which
// keeps generated fixtures diffable.
//
// Usage:
//
//	go run ./cmd/gendata -out input-data/Border_Crossing_Entry_Data.csv -seed 7
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var ports = []string{"Sweetgrass", "Raymond", "Roosville", "Piegan", "Opheim", "Scobey"}

var measures = []string{
	"Trucks",
	"Trains",
	"Buses",
	"Personal Vehicles",
	"Pedestrians",
	"Bus Passengers",
	"Train Passengers",
	"Truck Containers Loaded",
	"Truck Containers Empty",
	"Rail Containers Loaded",
	"Rail Containers Empty",
}

// noise rows outside the Montana / US-Canada filter, so generated fixtures
// exercise the ingest-stage filtering.
var noise = []struct{ state, border, port string }{
	{"North Dakota", "US-Canada Border", "Portal"},
	{"Texas", "US-Mexico Border", "Laredo"},
}

func main() {
	out := flag.String("out", "input-data/Border_Crossing_Entry_Data.csv", "output CSV path")
	seed := flag.Int64("seed", 1, "random seed")
	startYear := flag.Int("start-year", 2018, "first year of generated data")
	endYear := flag.Int("end-year", 2024, "last year of generated data")
	flag.Parse()

	if *startYear > *endYear {
		log.Fatalf("invalid year range %d..%d", *startYear, *endYear)
	}
	if err := run(*out, *seed, *startYear, *endYear); err != nil {
		log.Fatal(err)
	}
}

func run(out string, seed int64, startYear, endYear int) error {
	rng := rand.New(rand.NewSource(seed))

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Port Name", "State", "Port Code", "Border", "Date", "Measure", "Value"}); err != nil {
		return err
	}

	rows := 0
	for year := startYear; year <= endYear; year++ {
		for month := time.January; month <= time.December; month++ {
			date := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
			for _, port := range ports {
				for _, measure := range measures {
					row := []string{
						port, "Montana", strconv.Itoa(3300 + rng.Intn(99)), "US-Canada Border",
						date, measure, strconv.Itoa(rng.Intn(5000)),
					}
					if err := w.Write(row); err != nil {
						return err
					}
					rows++
				}
			}
			for _, n := range noise {
				row := []string{
					n.port, n.state, strconv.Itoa(2300 + rng.Intn(99)), n.border,
					date, "Trucks", strconv.Itoa(rng.Intn(5000)),
				}
				if err := w.Write(row); err != nil {
					return err
				}
				rows++
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	log.Printf("wrote %d rows to %s", rows, out)
	return f.Close()
}
