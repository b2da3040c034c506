package pagedarray_test

import (
	"testing"

	"github.com/vanderheijden86/hugegraph/internal/pagedarray"
)

func TestPageConstants(t *testing.T) {
	if pagedarray.PageSize != 16384 {
		t.Fatalf("PageSize = %d, want 16384", pagedarray.PageSize)
	}
	if pagedarray.PageShift != 14 {
		t.Fatalf("PageShift = %d, want 14", pagedarray.PageShift)
	}
}

func TestPageIndex(t *testing.T) {
	cases := []struct {
		index, want int
	}{
		{0, 0},
		{16383, 0},
		{16384, 1},
		{100_000, 6},
	}
	for _, c := range cases {
		if got := pagedarray.PageIndex(c.index); got != c.want {
			t.Errorf("PageIndex(%d) = %d, want %d", c.index, got, c.want)
		}
	}
}

func TestIndexInPage(t *testing.T) {
	cases := []struct {
		index, want int
	}{
		{0, 0},
		{100, 100},
		{16384, 0},
		{16385, 1},
		{100_000, 1696},
	}
	for _, c := range cases {
		if got := pagedarray.IndexInPage(c.index); got != c.want {
			t.Errorf("IndexInPage(%d) = %d, want %d", c.index, got, c.want)
		}
	}
}

func TestIndexRoundtrip(t *testing.T) {
	original := 100_000
	page := pagedarray.PageIndex(original)
	inPage := pagedarray.IndexInPage(original)
	got := pagedarray.IndexFromPageIndexAndIndexInPage(page, inPage)
	if got != original {
		t.Errorf("roundtrip(%d) = %d", original, got)
	}
}

func TestNumberOfPages(t *testing.T) {
	cases := []struct {
		capacity, want int
	}{
		{0, 0},
		{1, 1},
		{16384, 1},
		{16385, 2},
		{100_000, 7},
	}
	for _, c := range cases {
		if got := pagedarray.NumberOfPages(c.capacity); got != c.want {
			t.Errorf("NumberOfPages(%d) = %d, want %d", c.capacity, got, c.want)
		}
	}
}

func TestExclusiveIndexOfPage(t *testing.T) {
	cases := []struct {
		index, want int
	}{
		{1, 1},
		{16384, 16384},
		{16385, 1},
	}
	for _, c := range cases {
		if got := pagedarray.ExclusiveIndexOfPage(c.index); got != c.want {
			t.Errorf("ExclusiveIndexOfPage(%d) = %d, want %d", c.index, got, c.want)
		}
	}
}
