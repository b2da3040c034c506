package pagedarray

// cursorState tracks the lifecycle of a Cursor.
type cursorState int

const (
	cursorUnpositioned cursorState = iota
	cursorPositioned
	cursorExhausted
)

// pageSource is implemented by each typed paged array so Cursor can walk
// pages without knowing the element type.
type pageSource interface {
	numPages() int
	pageLen(page int) int
}

// Cursor is a stateful iterator over a range [start, end) of a paged array.
// It hands back one page's worth of indices per Advance call so inner loops
// can address native Go slices directly instead of per-element bounds
// checks through the owning array.
//
// A Cursor borrows its source; it must not outlive the array it was created
// from.
type Cursor struct {
	source pageSource
	start  int
	end    int

	state cursorState
	page  int
	// Offset and Limit bound the valid slice of the current page:
	// Page, Offset, Limit are read by the typed array's own cursor wrapper
	// to slice its backing page.
	Offset int
	Limit  int
	Page   int
}

// Init configures a cursor over the full range [0, size) of src.
func (c *Cursor) Init(src pageSource, size int) {
	c.initRange(src, 0, size)
}

// InitRange configures a cursor over [start, end) of src. It returns
// ErrOutOfRange if start > size or end is not in [start, size].
func (c *Cursor) InitRange(src pageSource, size, start, end int) error {
	if start < 0 || start > size {
		return ErrOutOfRange
	}
	if end < start || end > size {
		return ErrOutOfRange
	}
	c.initRange(src, start, end)
	return nil
}

func (c *Cursor) initRange(src pageSource, start, end int) {
	c.source = src
	c.start = start
	c.end = end
	c.state = cursorUnpositioned
	c.page = PageIndex(start)
}

// Advance moves the cursor to the next page window. It returns false and
// marks the cursor exhausted once [start, end) has been fully traversed.
func (c *Cursor) Advance() bool {
	if c.state == cursorExhausted {
		return false
	}
	if c.start >= c.end {
		c.state = cursorExhausted
		return false
	}

	startPage := PageIndex(c.start)
	endPage := PageIndex(c.end - 1)

	if c.state == cursorUnpositioned {
		c.page = startPage
	} else {
		c.page++
		if c.page > endPage {
			c.state = cursorExhausted
			return false
		}
	}

	if c.page == startPage {
		c.Offset = IndexInPage(c.start)
	} else {
		c.Offset = 0
	}
	if c.page == endPage {
		c.Limit = IndexInPage(c.end-1) + 1
	} else {
		c.Limit = c.source.pageLen(c.page)
	}

	c.Page = c.page
	c.state = cursorPositioned
	return true
}

// Reset returns the cursor to the unpositioned state, ready to Advance from
// the beginning of its configured range again.
func (c *Cursor) Reset() {
	c.state = cursorUnpositioned
}
