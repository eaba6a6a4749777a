package services

const (
	// SwipeThreshold is the horizontal travel a swipe must exceed to count.
	SwipeThreshold = 50

	tabletMinWidth  = 768
	desktopMinWidth = 1200
)

// PageSizeForWidth returns how many cards fit side by side at a viewport width.
func PageSizeForWidth(width int) int {
	switch {
	case width >= desktopMinWidth:
		return 3
	case width >= tabletMinWidth:
		return 2
	default:
		return 1
	}
}

// TotalPages uses sliding-window paging: every step reveals one more item.
func TotalPages(itemCount, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	return max(0, itemCount-pageSize+1)
}

// Carousel tracks the first visible item of a sliding window over a list.
// The zero value is a one-card carousel over an empty list.
type Carousel struct {
	index     int
	pageSize  int
	itemCount int
}

func NewCarousel(pageSize int) *Carousel {
	c := &Carousel{}
	c.SetPageSize(pageSize)
	return c
}

func (c *Carousel) Index() int { return c.index }

func (c *Carousel) PageSize() int {
	if c.pageSize < 1 {
		return 1
	}
	return c.pageSize
}

func (c *Carousel) TotalPages() int { return TotalPages(c.itemCount, c.PageSize()) }

// Resize sets the item count and re-clamps the index.
func (c *Carousel) Resize(itemCount int) {
	c.itemCount = max(0, itemCount)
	c.clamp()
}

// SetPageSize changes the window width and re-clamps the index.
func (c *Carousel) SetPageSize(pageSize int) {
	c.pageSize = max(1, pageSize)
	c.clamp()
}

// Next moves forward one item. It reports whether the index changed.
func (c *Carousel) Next() bool { return c.GoTo(c.index + 1) }

// Prev moves back one item. It reports whether the index changed.
func (c *Carousel) Prev() bool { return c.GoTo(c.index - 1) }

// GoTo jumps to i, clamped into the valid range.
func (c *Carousel) GoTo(i int) bool {
	before := c.index
	c.index = i
	c.clamp()
	return c.index != before
}

// Swipe maps a touch gesture to Next (leftward) or Prev (rightward).
// Gestures not longer than SwipeThreshold are ignored.
func (c *Carousel) Swipe(startX, endX float64) bool {
	distance := startX - endX
	switch {
	case distance > SwipeThreshold:
		return c.Next()
	case distance < -SwipeThreshold:
		return c.Prev()
	}
	return false
}

// Window returns the half-open range of visible items.
func (c *Carousel) Window() (start, end int) {
	if c.itemCount == 0 {
		return 0, 0
	}
	start = c.index
	end = min(c.itemCount, start+c.PageSize())
	return start, end
}

// ShowNavigation is false when there is nothing to scroll.
func (c *Carousel) ShowNavigation() bool { return c.TotalPages() > 1 }

func (c *Carousel) CanPrev() bool { return c.index > 0 }

func (c *Carousel) CanNext() bool { return c.index < c.TotalPages()-1 }

func (c *Carousel) clamp() {
	total := c.TotalPages()
	if total == 0 || c.index < 0 {
		c.index = 0
		return
	}
	if c.index > total-1 {
		c.index = total - 1
	}
}
