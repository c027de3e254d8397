package mode

// ScrollOffset returns the first visible line that keeps cursorLine within
// [offset, offset+height). It scrolls minimally: it snaps to the cursor
// line when the cursor is above the viewport and shifts by the overflow
// when it is below.
func ScrollOffset(cursorLine, offset, height int) int {
	if height < 1 {
		height = 1
	}
	if offset < 0 {
		offset = 0
	}
	switch {
	case cursorLine < offset:
		return cursorLine
	case cursorLine >= offset+height:
		return cursorLine - height + 1
	default:
		return offset
	}
}
