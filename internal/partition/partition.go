package partition

import (
	"github.com/mvptools/mvpcount/internal/utils"
)

// Range - A half-open range of record indices assigned to a single worker
type Range struct {
	Start int
	End   int
}

// IsEmpty - Returns true if the range holds no records
func (R Range) IsEmpty() bool {
	return R.Start >= R.End
}

// Len - Returns the number of records in the range
func (R Range) Len() int {
	return R.End - R.Start
}

// Split - Divides the record range [0, totalLines) into workerCount contiguous, non-overlapping
// half-open ranges of near-equal size. The ranges cover [0, totalLines) exactly; when workerCount
// exceeds totalLines the trailing ranges come out empty.
//   - totalLines is the total number of records to divide, zero or more
//   - workerCount is the number of ranges to produce, one or more
func Split(totalLines, workerCount int) (ranges []Range) {
	chunk := utils.CeilDiv(totalLines, workerCount)

	ranges = make([]Range, workerCount)
	for i := 0; i < workerCount; i++ {
		start := i * chunk
		if start > totalLines {
			start = totalLines
		}
		end := start + chunk
		if end > totalLines {
			end = totalLines
		}

		ranges[i] = Range{Start: start, End: end}
	}

	return
}
