package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome pixel grid, stored row-major with index x + DisplayWidth*y.
type Display [DisplayWidth * DisplayHeight]bool

// Pixel returns whether the pixel at x, y is set. Coordinates wrap around the display edges.
func (d *Display) Pixel(x, y int) bool {
	return d[index(x, y)]
}

// Clear unsets all pixels.
func (d *Display) Clear() {
	*d = Display{}
}

// flip toggles the pixel at x, y and returns true if the pixel was set before.
func (d *Display) flip(x, y int) bool {
	i := index(x, y)
	collision := d[i]
	d[i] = !d[i]
	return collision
}

// String renders the display as lines of '#' and '.' characters.
func (d *Display) String() string {
	buf := make([]byte, 0, (DisplayWidth+1)*DisplayHeight)
	for y := range DisplayHeight {
		for x := range DisplayWidth {
			if d.Pixel(x, y) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func index(x, y int) int {
	x %= DisplayWidth
	if x < 0 {
		x += DisplayWidth
	}
	y %= DisplayHeight
	if y < 0 {
		y += DisplayHeight
	}
	return x + DisplayWidth*y
}
