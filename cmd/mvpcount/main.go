package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mvptools/mvpcount"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: mvpcount <input-file> <worker-count>")
		os.Exit(1)
	}

	workerCount, err := strconv.Atoi(os.Args[2])
	if err != nil || workerCount <= 0 {
		fmt.Fprintln(os.Stderr, "Invalid worker count:", os.Args[2])
		os.Exit(1)
	}

	info, err := mvpcount.Run(mvpcount.Config{
		InputPath:   os.Args[1],
		WorkerCount: workerCount,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "mvpcount:", err)
		os.Exit(1)
	}

	log.Printf("%d of %d records counted, %d distinct players, report written to %s",
		info.KeysCounted, info.TotalRecords, info.DistinctKeys, info.ReportPath)
}
