package report

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mvptools/mvpcount/internal/freqmap"
	"github.com/mvptools/mvpcount/internal/utils"
)

// keyColumnWidth - Visible width the key column is padded to
const keyColumnWidth int = 24

// headerRuleWidth - Number of dashes in the rule under the report header
const headerRuleWidth int = 35

// Row - One report line: a key and its occurrence count
type Row struct {
	Key   string
	Count int
}

// Snapshot - Materializes the table into a flat sequence of rows sorted by descending count,
// ties broken by key bytes ascending. The secondary order makes reruns byte-identical.
// The table must be immutable for the duration of the call.
func Snapshot(table *freqmap.Table) (rows []Row) {
	rows = make([]Row, 0, table.Distinct())
	table.ForEachEntry(func(key string, count int) {
		rows = append(rows, Row{Key: key, Count: count})
	})

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Key < rows[j].Key
	})

	return
}

// Write - Writes the report for a completed table to fileName. The report holds a two line
// header followed by one line per distinct key, most frequent first.
//   - table is the frequency table to report on, it must not be mutated during the call
//   - fileName is the path the report is written to
func Write(table *freqmap.Table, fileName string) (err error) {
	rows := Snapshot(table)

	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		err = fmt.Errorf("unable to create report file: %s", err)
		return
	}

	writer := bufio.NewWriter(f)

	_, err = fmt.Fprintf(writer, "Jugador MVP%s|\tPremios\n", strings.Repeat(" ", 13))
	if err == nil {
		_, err = fmt.Fprintf(writer, "%s\n", strings.Repeat("-", headerRuleWidth))
	}

	for i := 0; err == nil && i < len(rows); i++ {
		_, err = fmt.Fprintf(writer, "%s|\t%d\n", padKey(rows[i].Key), rows[i].Count)
	}

	if err == nil {
		err = writer.Flush()
	}
	if err != nil {
		_ = f.Close()
		err = fmt.Errorf("error while writing report file: %s", err)
		return
	}

	err = f.Close()
	if err != nil {
		err = fmt.Errorf("error while closing report file: %s", err)
	}

	return
}

// padKey - Appends ASCII spaces to key until its visible character count reaches the key
// column width. Keys already at or past the width are returned untouched.
func padKey(key string) string {
	visible := utils.VisibleLen(key)
	if visible >= keyColumnWidth {
		return key
	}

	return key + strings.Repeat(" ", keyColumnWidth-visible)
}
