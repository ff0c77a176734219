package mvpcount

import (
	"fmt"

	"github.com/mvptools/mvpcount/hashfunc"
	"github.com/mvptools/mvpcount/internal/freqmap"
	"github.com/mvptools/mvpcount/internal/input"
	"github.com/mvptools/mvpcount/internal/partition"
	"github.com/mvptools/mvpcount/internal/report"
)

// ReportFileName - Path the report is written to when Config.ReportPath is left empty
const ReportFileName string = "reporte_mvp.txt"

// Config - Configuration for one counting run
//   - InputPath is the path to the record oriented input file, one record per line with the key after the last comma
//   - WorkerCount is the number of workers the record range is divided among, it has to be a positive value
//   - ReportPath is where the report is written, empty selects ReportFileName
//   - BucketAlgorithm is an optional custom bucket selection algorithm for the frequency table, nil selects the internal polynomial hash
type Config struct {
	InputPath       string
	WorkerCount     int
	ReportPath      string
	BucketAlgorithm hashfunc.BucketAlgorithm
}

// ReportInfo - Information structure containing some figures about the finished run
//   - TotalRecords is the number of records the input file holds
//   - DistinctKeys is the number of distinct keys found
//   - KeysCounted is the number of keys successfully extracted and counted, the counts in the report sum to it
//   - ReportPath is the path the report was actually written to
type ReportInfo struct {
	TotalRecords int
	DistinctKeys int
	KeysCounted  int
	ReportPath   string
}

// Run - Counts the frequency of the last comma separated field across the records of the input
// file and writes a report sorted by descending count.
//
// The record range is divided into near-equal contiguous partitions, one worker per partition.
// Every worker opens the input file on its own, extracts the keys of its partition and feeds
// one shared frequency table; the table's capacity is fixed up front to the record count, an
// upper bound on the number of distinct keys. Once all workers have joined, the table is
// immutable and the report is written from a sorted snapshot of it.
//
// A failing worker is logged and its partition's contributions are simply missing from the
// report; the run itself keeps going. Only when every non-empty partition fails is the input
// considered unavailable and the run aborted without a report.
//
// It returns:
//   - reportInfo is a ReportInfo struct containing some figures about the finished run
//   - err is either of type InputUnavailable or ReportWriteError, or a plain validation error
func Run(conf Config) (reportInfo ReportInfo, err error) {
	// Check validity of the input path
	if conf.InputPath == "" {
		err = fmt.Errorf("input path can not be empty")
		return
	}

	// Check validity of the worker count
	if conf.WorkerCount <= 0 {
		err = fmt.Errorf("worker count must be a positive value higher than 0 (zero)")
		return
	}

	totalLines, err := input.CountLines(conf.InputPath)
	if err != nil {
		err = InputUnavailable{msg: err.Error()}
		return
	}

	// Record count bounds the number of distinct keys, an empty input still needs one bucket
	capacity := int64(totalLines)
	if capacity < 1 {
		capacity = 1
	}

	table, err := freqmap.NewTable(capacity, conf.BucketAlgorithm)
	if err != nil {
		return
	}

	ranges := partition.Split(totalLines, conf.WorkerCount)

	keysCounted, err := runWorkers(conf.InputPath, ranges, table)
	if err != nil {
		err = InputUnavailable{msg: err.Error()}
		return
	}

	reportPath := conf.ReportPath
	if reportPath == "" {
		reportPath = ReportFileName
	}

	err = report.Write(table, reportPath)
	if err != nil {
		err = ReportWriteError{msg: err.Error()}
		return
	}

	reportInfo = ReportInfo{
		TotalRecords: totalLines,
		DistinctKeys: table.Distinct(),
		KeysCounted:  keysCounted,
		ReportPath:   reportPath,
	}

	return
}
