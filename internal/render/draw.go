package render

// CellSize returns the edge length of a square cell when cols cells share
// surfaceWidth minus the margin.
func CellSize(surfaceWidth float64, cols int, margin float64) float64 {
	if cols <= 0 {
		return 0
	}
	size := (surfaceWidth - margin) / float64(cols)
	if size < 0 {
		return 0
	}
	return size
}

// Draw paints every cell of f onto s: a filled square in the alive or dead
// colour, then its outline. The frame is not modified.
func Draw(s Surface, f Frame, st Style) {
	size := f.Size()
	cells := f.Cells()
	if size.W <= 0 || size.H <= 0 || len(cells) != size.W*size.H {
		return
	}
	sw, _ := s.Bounds()
	cell := CellSize(sw, size.W, st.Margin)
	if cell == 0 {
		return
	}
	off := st.Margin / 2
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			px := float64(x)*cell + off
			py := float64(y)*cell + off
			fill := st.Dead
			if cells[y*size.W+x] != 0 {
				fill = st.Alive
			}
			s.FillRect(px, py, cell, cell, fill)
			if st.StrokeWidth > 0 {
				s.StrokeRect(px, py, cell, cell, st.StrokeWidth, st.Stroke)
			}
		}
	}
}
