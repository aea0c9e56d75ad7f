package logos

import "image"

// Logo is a display-ready team logo. When Placeholder is set, Image is a blank
// transparent square standing in for a logo that could not be fetched.
type Logo struct {
	Code        string
	Image       image.Image
	Placeholder bool
}

// Blank returns a fully transparent square image of the given size.
func Blank(size int) image.Image {
	if size <= 0 {
		size = defaultSize
	}
	return image.NewNRGBA(image.Rect(0, 0, size, size))
}
