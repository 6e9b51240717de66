package resumemd

import (
	"math"
	"slices"
	"sync"
)

// A4 geometry used when the usable page height cannot be measured.
const (
	A4WidthMm            = 210.0
	A4HeightMm           = 297.0
	DefaultPagePaddingMm = 8.0
	cssPxPerInch         = 96.0
	mmPerInch            = 25.4
)

// Block is one atomic unit of rendered output with its measured size in CSS
// pixels. Blocks are never split across pages.
type Block struct {
	Height       float64 `json:"height"`
	MarginTop    float64 `json:"marginTop"`
	MarginBottom float64 `json:"marginBottom"`
}

// Space is the vertical room the block takes on a page.
func (b Block) Space() float64 {
	return b.Height + b.MarginTop + b.MarginBottom
}

// Paginate assigns blocks to pages greedily and returns the indices of the
// blocks that start a new page, in ascending order.
//
// A block that does not fit in what is left of the current page starts the
// next one. A block taller than a whole page still gets a page of its own and
// overflows it. Index 0 is never a break. A capacity that is zero, negative or
// NaN yields no breaks.
func Paginate(blocks []Block, capacity float64) []int {
	if !(capacity > 0) {
		return nil
	}
	var breaks []int
	accumulated := 0.0
	for i, b := range blocks {
		space := b.Space()
		if i > 0 && accumulated+space > capacity {
			breaks = append(breaks, i)
			accumulated = space
			continue
		}
		accumulated += space
	}
	return breaks
}

// DefaultPageCapacity is the usable height in CSS pixels of an A4 page with
// the default padding: floor((297 - 2*8) / 25.4 * 96) = 1062.
func DefaultPageCapacity() float64 {
	return pageCapacity(DefaultPagePaddingMm, DefaultPagePaddingMm)
}

// PageCapacity is the usable A4 height in CSS pixels for the vertical padding
// of t. A nil t uses the default padding.
func PageCapacity(t *TypographySettings) float64 {
	if t == nil {
		return DefaultPageCapacity()
	}
	return pageCapacity(t.PagePaddingTopMm, t.PagePaddingBottomMm)
}

func pageCapacity(topMm, bottomMm float64) float64 {
	return math.Floor(MmToPx(A4HeightMm - topMm - bottomMm))
}

// MmToPx converts millimetres to CSS pixels.
func MmToPx(mm float64) float64 {
	return mm / mmPerInch * cssPxPerInch
}

// ResolveCapacity returns measured when it is a usable height, and the A4
// fallback otherwise.
func ResolveCapacity(measured float64) float64 {
	if measured > 0 && !math.IsInf(measured, 0) {
		return measured
	}
	return DefaultPageCapacity()
}

// SplitPages groups block indices 0..n-1 into pages at the given breaks.
// A break that would leave the current page empty is ignored, and breaks
// outside the range are dropped. n <= 0 yields no pages.
func SplitPages(n int, breaks []int) [][]int {
	if n <= 0 {
		return nil
	}
	isBreak := make(map[int]bool, len(breaks))
	for _, b := range breaks {
		isBreak[b] = true
	}

	var pages [][]int
	var current []int
	for i := 0; i < n; i++ {
		if isBreak[i] && len(current) > 0 {
			pages = append(pages, current)
			current = nil
		}
		current = append(current, i)
	}
	return append(pages, current)
}

// Paginator memoizes the last pagination so that repeated calls with the same
// sizes return the same slice. It is safe for concurrent use; when calls race,
// the last one to finish wins.
type Paginator struct {
	mu       sync.Mutex
	blocks   []Block
	capacity float64
	breaks   []int
	valid    bool
}

// Paginate returns Paginate(blocks, capacity), reusing the previous result
// when the input is unchanged. The returned slice must not be modified.
func (p *Paginator) Paginate(blocks []Block, capacity float64) []int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.valid && p.capacity == capacity && slices.Equal(p.blocks, blocks) {
		return p.breaks
	}
	p.blocks = slices.Clone(blocks)
	p.capacity = capacity
	p.breaks = Paginate(blocks, capacity)
	p.valid = true
	return p.breaks
}

// Reset drops the memoized result.
func (p *Paginator) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.blocks, p.breaks, p.valid = nil, nil, false
}
