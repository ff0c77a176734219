package freqmap

import (
	"fmt"
	"sync"

	"github.com/mvptools/mvpcount/hashfunc"
	"github.com/mvptools/mvpcount/internal/hash"
)

// entry - One key with its occurrence count. Entries sharing a bucket are linked in an
// unordered collision chain.
type entry struct {
	key   string
	count int
	next  *entry
}

// Table - A chaining hash table mapping a key to its occurrence count. The bucket array is
// fixed for the lifetime of the table and a single coarse mutex guards every mutation.
type Table struct {
	mu        sync.Mutex
	buckets   []*entry
	capacity  int64
	distinct  int
	bucketAlg hashfunc.BucketAlgorithm
}

// NewTable - Returns a new frequency table with a fixed number of buckets.
// Choosing the capacity as an upper bound on the number of distinct keys keeps the load
// factor at one or below.
//   - capacity is the number of buckets, it has to be a positive value
//   - bucketAlgorithm is an optional custom bucket selection algorithm, nil selects the internal polynomial hash
func NewTable(capacity int64, bucketAlgorithm hashfunc.BucketAlgorithm) (table *Table, err error) {
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	if bucketAlgorithm == nil {
		bucketAlgorithm = hash.NewPolyHashAlgorithm(capacity)
	} else {
		bucketAlgorithm.SetTableSize(capacity)
	}

	table = &Table{
		buckets:   make([]*entry, capacity),
		capacity:  capacity,
		bucketAlg: bucketAlgorithm,
	}

	return
}

// IncrementOrInsert - Bumps the count for key by one, inserting it with count 1 if it is not
// yet present. Safe for concurrent use: the lookup and the insert form one critical section,
// so two callers can never both miss and both insert the same key.
//
// It returns an error, leaving the table untouched, if the bucket algorithm hands back a
// bucket number outside the permitted range.
func (T *Table) IncrementOrInsert(key string) (err error) {
	T.mu.Lock()
	defer T.mu.Unlock()

	bucketNo := T.bucketAlg.BucketNumber([]byte(key))
	if bucketNo < 0 || bucketNo >= T.capacity {
		err = fmt.Errorf("received bucket number from bucket algorithm is outside permitted range")
		return
	}

	for e := T.buckets[bucketNo]; e != nil; e = e.next {
		if e.key == key {
			e.count++
			return
		}
	}

	T.buckets[bucketNo] = &entry{key: key, count: 1, next: T.buckets[bucketNo]}
	T.distinct++

	return
}

// ForEachEntry - Visits every entry exactly once in unspecified order.
// The caller has to serialize the call against writers; it is meant for the phase after all
// workers have joined, when the table has become immutable.
func (T *Table) ForEachEntry(visitor func(key string, count int)) {
	for _, e := range T.buckets {
		for ; e != nil; e = e.next {
			visitor(e.key, e.count)
		}
	}
}

// Distinct - Returns the number of distinct keys held by the table
func (T *Table) Distinct() int {
	T.mu.Lock()
	defer T.mu.Unlock()

	return T.distinct
}

// Capacity - Returns the fixed number of buckets
func (T *Table) Capacity() int64 {
	return T.capacity
}
