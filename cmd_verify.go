package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sergio-corredor-llopis/solar-analytics/src/config"
	"github.com/sergio-corredor-llopis/solar-analytics/src/processors"
	"github.com/sergio-corredor-llopis/solar-analytics/src/storage"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Spot-check the staged corpus: row/column counts and anomalies",
	RunE:  runVerify,
}

// smallFileThreshold flags staged files with suspiciously few rows; even
// the coarse 15-minute months carry thousands.
const smallFileThreshold = 100

func runVerify(cmd *cobra.Command, args []string) error {
	paths, err := storage.ListStagedFiles(config.Cfg.StagingDir)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d staged files\n\n", len(paths))
	fmt.Printf("%-45s %9s %6s %8s\n", "File", "Rows", "Cols", "MB")

	type fileStat struct {
		name string
		rows int
		cols int
	}
	var stats []fileStat
	colCounts := make(map[int]int)
	intervalRows := make(map[string]int)
	intervals := processors.NewIntervalProcessor()
	totalRows := 0

	for _, path := range paths {
		res, err := storage.ReadRecordSet(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		st := fileStat{name: filepath.Base(path), rows: res.Rows(), cols: res.Columns()}
		stats = append(stats, st)
		colCounts[st.cols]++
		totalRows += st.rows
		if label := intervals.Process(res.Records); label.Primary > 0 {
			intervalRows[label.Primary.String()] += st.rows
		}
		fmt.Printf("%-45s %9d %6d %8.2f\n", st.name, st.rows, st.cols, float64(info.Size())/1024/1024)
	}
	fmt.Printf("\nTotal rows: %d\n", totalRows)
	labels := make([]string, 0, len(intervalRows))
	for interval := range intervalRows {
		labels = append(labels, interval)
	}
	sort.Strings(labels)
	for _, interval := range labels {
		fmt.Printf("  %s sampling: %d rows\n", interval, intervalRows[interval])
	}

	// Column-count anomalies relative to the most common count.
	modalCols, best := 0, -1
	for c, n := range colCounts {
		if n > best {
			modalCols, best = c, n
		}
	}
	anomalous := false
	for _, st := range stats {
		if st.cols != modalCols {
			anomalous = true
			fmt.Printf("WARNING: %s has %d columns (expected %d)\n", st.name, st.cols, modalCols)
		}
	}
	if !anomalous && len(stats) > 0 {
		fmt.Printf("All files have %d columns\n", modalCols)
	}

	small := false
	for _, st := range stats {
		if st.rows < smallFileThreshold {
			small = true
			fmt.Printf("WARNING: %s has only %d rows\n", st.name, st.rows)
		}
	}
	if !small && len(stats) > 0 {
		fmt.Println("No suspiciously small files")
	}
	return nil
}
