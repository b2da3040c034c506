package pagedarray

// DoubleArray is a paged, index-addressable array of float64 values.
type DoubleArray struct {
	pages [][]float64
	size  int
}

// NewDoubleArray allocates a DoubleArray of size elements, all zero-valued.
func NewDoubleArray(size int) *DoubleArray {
	return NewDoubleArrayWithDefault(size, 0)
}

// NewDoubleArrayWithDefault allocates a DoubleArray of size elements, each
// initialized to def.
func NewDoubleArrayWithDefault(size int, def float64) *DoubleArray {
	a := &DoubleArray{size: size}
	numPages := NumberOfPages(size)
	a.pages = make([][]float64, numPages)
	for p := 0; p < numPages; p++ {
		length := PageSize
		if p == numPages-1 {
			length = SizeOfLastPage(size)
		}
		page := make([]float64, length)
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
func (a *DoubleArray) Size() int { return a.size }

// Get returns the element at index i.
func (a *DoubleArray) Get(i int) float64 {
	return a.pages[PageIndex(i)][IndexInPage(i)]
}

// Set writes v to index i.
func (a *DoubleArray) Set(i int, v float64) {
	a.pages[PageIndex(i)][IndexInPage(i)] = v
}

// SetAll fills every index i with fn(i).
func (a *DoubleArray) SetAll(fn func(i int) float64) {
	base := 0
	for _, page := range a.pages {
		for j := range page {
			page[j] = fn(base + j)
		}
		base += len(page)
	}
}

// Fill overwrites every element with v.
func (a *DoubleArray) Fill(v float64) {
	for _, page := range a.pages {
		for j := range page {
			page[j] = v
		}
	}
}

func (a *DoubleArray) numPages() int        { return len(a.pages) }
func (a *DoubleArray) pageLen(page int) int { return len(a.pages[page]) }

// NewCursor returns an unpositioned cursor over the full array.
func (a *DoubleArray) NewCursor() *Cursor {
	c := &Cursor{}
	c.Init(a, a.size)
	return c
}

// InitCursor resets c to an unpositioned cursor over the full array.
func (a *DoubleArray) InitCursor(c *Cursor) {
	c.Init(a, a.size)
}

// InitCursorRange resets c to an unpositioned cursor over [start, end).
func (a *DoubleArray) InitCursorRange(c *Cursor, start, end int) error {
	return c.InitRange(a, a.size, start, end)
}

// PageAt returns the backing slice for the page a positioned cursor refers
// to, to be sliced with [c.Offset:c.Limit].
func (a *DoubleArray) PageAt(c *Cursor) []float64 {
	return a.pages[c.Page]
}
