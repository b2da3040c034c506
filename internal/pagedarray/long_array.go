package pagedarray

// LongArray is a paged, index-addressable array of int64 values.
//
// Ownership: exclusively owned by one store or one algorithm run; it is not
// safe to mutate a LongArray concurrently from multiple goroutines without
// external synchronization. See AtomicLongArray for a variant that is.
type LongArray struct {
	pages [][]int64
	size  int
}

// NewLongArray allocates a LongArray of size elements, all zero-valued.
func NewLongArray(size int) *LongArray {
	return NewLongArrayWithDefault(size, 0)
}

// NewLongArrayWithDefault allocates a LongArray of size elements, each
// initialized to def.
func NewLongArrayWithDefault(size int, def int64) *LongArray {
	a := &LongArray{size: size}
	numPages := NumberOfPages(size)
	a.pages = make([][]int64, numPages)
	for p := 0; p < numPages; p++ {
		length := PageSize
		if p == numPages-1 {
			length = SizeOfLastPage(size)
		}
		page := make([]int64, length)
		if def != 0 {
			for i := range page {
				page[i] = def
			}
		}
		a.pages[p] = page
	}
	return a
}

// Size returns the logical number of elements in the array.
func (a *LongArray) Size() int { return a.size }

// Get returns the element at index i.
func (a *LongArray) Get(i int) int64 {
	return a.pages[PageIndex(i)][IndexInPage(i)]
}

// Set writes v to index i.
func (a *LongArray) Set(i int, v int64) {
	a.pages[PageIndex(i)][IndexInPage(i)] = v
}

// SetAll fills every index i with fn(i).
func (a *LongArray) SetAll(fn func(i int) int64) {
	base := 0
	for _, page := range a.pages {
		for j := range page {
			page[j] = fn(base + j)
		}
		base += len(page)
	}
}

// Fill overwrites every element with v.
func (a *LongArray) Fill(v int64) {
	for _, page := range a.pages {
		for j := range page {
			page[j] = v
		}
	}
}

func (a *LongArray) numPages() int       { return len(a.pages) }
func (a *LongArray) pageLen(page int) int { return len(a.pages[page]) }

// NewCursor returns an unpositioned cursor over the full array.
func (a *LongArray) NewCursor() *Cursor {
	c := &Cursor{}
	c.Init(a, a.size)
	return c
}

// InitCursor resets c to an unpositioned cursor over the full array.
func (a *LongArray) InitCursor(c *Cursor) {
	c.Init(a, a.size)
}

// InitCursorRange resets c to an unpositioned cursor over [start, end).
func (a *LongArray) InitCursorRange(c *Cursor, start, end int) error {
	return c.InitRange(a, a.size, start, end)
}

// PageAt returns the backing slice for the page a positioned cursor refers
// to, to be sliced with [c.Offset:c.Limit].
func (a *LongArray) PageAt(c *Cursor) []int64 {
	return a.pages[c.Page]
}
