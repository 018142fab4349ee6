package logic

// Navigator handles cursor movement and viewport management over a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 20}
}

// SelectedIndex returns the index under the cursor
func (n *Navigator) SelectedIndex() int {
	return n.selectedIndex
}

// ViewportOffset returns the index of the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns the number of visible rows
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// SetViewportHeight updates the visible row count
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureSelectedVisible()
}

// SetTotal updates the item count and clamps the cursor into range
func (n *Navigator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	n.total = total
	n.SetSelectedIndex(n.selectedIndex)
}

// SetSelectedIndex moves the cursor and keeps it visible
func (n *Navigator) SetSelectedIndex(index int) {
	if index >= n.total {
		index = n.total - 1
	}
	if index < 0 {
		index = 0
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
}

// Navigate moves the cursor in the given direction
func (n *Navigator) Navigate(direction string) {
	switch direction {
	case "up":
		n.SetSelectedIndex(n.selectedIndex - 1)
	case "down":
		n.SetSelectedIndex(n.selectedIndex + 1)
	case "pageup":
		n.SetSelectedIndex(n.selectedIndex - n.viewportHeight)
	case "pagedown":
		n.SetSelectedIndex(n.selectedIndex + n.viewportHeight)
	case "home":
		n.SetSelectedIndex(0)
	case "end":
		n.SetSelectedIndex(n.total - 1)
	}
}

// ensureSelectedVisible adjusts the viewport so the cursor row is on screen
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	} else if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	maxOffset := n.total - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
