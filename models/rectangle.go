package models

// Rectangle is an axis-aligned box measured in pixels.
type Rectangle struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// Area is evaluated in 64 bits so that no pair of uint32 sides overflows.
func (r Rectangle) Area() uint64 {
	return uint64(r.Width) * uint64(r.Height)
}

// AreaString formats Area for output.
func (r Rectangle) AreaString() string {
	return utoa64(r.Area())
}
