package mvpcount

import (
	"fmt"
	"log"
	"sync"

	"github.com/mvptools/mvpcount/internal/freqmap"
	"github.com/mvptools/mvpcount/internal/input"
	"github.com/mvptools/mvpcount/internal/partition"
)

// partitionDescriptor - Everything one worker needs: its id, the input file, its half-open
// record range and the shared frequency table
type partitionDescriptor struct {
	id       int
	fileName string
	lines    partition.Range
	table    *freqmap.Table
}

// runWorkers - Spawns one worker per range, joins them all and sums the keys they counted.
// An individual worker failure is logged by the worker and swallowed here, its partition's
// contributions simply go missing. Only when every non-empty partition failed does the
// parallel phase itself fail, since that means the input file could not be read at all.
func runWorkers(fileName string, ranges []partition.Range, table *freqmap.Table) (keysCounted int, err error) {
	counted := make([]int, len(ranges))
	failed := make([]bool, len(ranges))

	var wg sync.WaitGroup
	for i := range ranges {
		desc := partitionDescriptor{
			id:       i,
			fileName: fileName,
			lines:    ranges[i],
			table:    table,
		}

		wg.Add(1)
		go func(desc partitionDescriptor) {
			defer wg.Done()
			counted[desc.id], failed[desc.id] = runWorker(desc)
		}(desc)
	}
	wg.Wait()

	nonEmpty := 0
	failures := 0
	for i, r := range ranges {
		if r.IsEmpty() {
			continue
		}
		nonEmpty++
		if failed[i] {
			failures++
		}
		keysCounted += counted[i]
	}

	if nonEmpty > 0 && failures == nonEmpty {
		err = fmt.Errorf("all %d workers failed to read records from %s", nonEmpty, fileName)
	}

	return
}

// runWorker - Reads the keys of the descriptor's partition and feeds the shared table.
// An empty partition is a no-op. A failing range reader is logged with the worker id and the
// partition is abandoned without touching the table.
//
// It returns the number of keys counted into the table, and whether the partition was
// abandoned.
func runWorker(desc partitionDescriptor) (counted int, failed bool) {
	if desc.lines.IsEmpty() {
		return
	}

	keys, err := input.ReadKeyRange(desc.fileName, desc.lines.Start, desc.lines.End)
	if err != nil {
		log.Printf("worker %d: abandoning records [%d, %d): %s", desc.id, desc.lines.Start, desc.lines.End, err)
		failed = true
		return
	}

	log.Printf("worker %d: read %d records", desc.id, len(keys))

	for _, key := range keys {
		if insErr := desc.table.IncrementOrInsert(key); insErr != nil {
			log.Printf("worker %d: dropping key %q: %s", desc.id, key, insErr)
			continue
		}
		counted++
	}

	return
}
