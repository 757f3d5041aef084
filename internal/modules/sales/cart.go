package sales

import "sync"

// Cart holds the active order lines for the current register session. It
// lives in memory only; settlement or removal are the only ways a line
// leaves it. Order numbers are monotonic for the lifetime of the process.
type Cart struct {
	mu          sync.Mutex
	lines       []*OrderLine
	nextOrderNo int
}

// NewCart creates an empty cart whose first order number is 1.
func NewCart() *Cart { return &Cart{nextOrderNo: 1} }

// Add assigns the next order number to line and appends it.
func (c *Cart) Add(line *OrderLine) {
	c.mu.Lock()
	defer c.mu.Unlock()
	line.OrderNo = c.nextOrderNo
	c.nextOrderNo++
	c.lines = append(c.lines, line)
}

// Find returns the line with the given order number, or nil. Order numbers
// are not contiguous once lines have been removed, so this is a scan.
func (c *Cart) Find(orderNo int) *OrderLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.lines {
		if l.OrderNo == orderNo {
			return l
		}
	}
	return nil
}

// Remove deletes the line with the given order number and returns it, or nil
// if no such line exists.
func (c *Cart) Remove(orderNo int) *OrderLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, l := range c.lines {
		if l.OrderNo == orderNo {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return l
		}
	}
	return nil
}

// Lines returns the lines in insertion order.
func (c *Cart) Lines() []*OrderLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear drops every line. Used by settlement, which does not refund stock.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}
