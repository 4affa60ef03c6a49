package wintoast

import (
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// ImagePlacement controls where an image is rendered in the toast.
type ImagePlacement int

const (
	// ImagePlacementHero renders the image prominently across the top.
	ImagePlacementHero ImagePlacement = iota + 1
	// ImagePlacementAppLogoOverride replaces the app logo.
	ImagePlacementAppLogoOverride
)

func (p ImagePlacement) String() string {
	switch p {
	case ImagePlacementHero:
		return "hero"
	case ImagePlacementAppLogoOverride:
		return "appLogoOverride"
	default:
		return ""
	}
}

// ImageHintCrop controls how the image is cropped.
type ImageHintCrop int

const (
	// ImageHintCropCircle crops the image into a circle.
	ImageHintCropCircle ImageHintCrop = iota + 1
)

func (c ImageHintCrop) String() string {
	switch c {
	case ImageHintCropCircle:
		return "circle"
	default:
		return ""
	}
}

// Image is an image element of a toast.
type Image struct {
	src       string
	placement ImagePlacement
	hintCrop  ImageHintCrop
}

// NewImage creates an image from a URL (https, ms-appx, file, ...).
func NewImage(src *url.URL) *Image {
	return &Image{src: src.String()}
}

// NewImageFromPath creates an image from a local file path. The path
// must be absolute, otherwise ErrInvalidPath is returned.
func NewImageFromPath(path string) (*Image, error) {
	if !filepath.IsAbs(path) {
		return nil, ErrInvalidPath
	}
	return &Image{src: fileURL(path)}, nil
}

// WithPlacement sets the placement of the image.
func (i *Image) WithPlacement(placement ImagePlacement) *Image {
	i.placement = placement
	return i
}

// WithHintCrop sets the crop hint of the image.
func (i *Image) WithHintCrop(crop ImageHintCrop) *Image {
	i.hintCrop = crop
	return i
}

// writeTo fills el with this image's attributes. The slot id comes
// from the containing toast.
func (i *Image) writeTo(id uint8, el *etree.Element) {
	el.CreateAttr("id", strconv.Itoa(int(id)))
	el.CreateAttr("src", i.src)
	if i.placement != 0 {
		el.CreateAttr("placement", i.placement.String())
	}
	if i.hintCrop != 0 {
		el.CreateAttr("hint-crop", i.hintCrop.String())
	}
}

// fileURL converts an absolute local path to a file:// URL.
func fileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// Windows drive paths like C:/... need a leading slash.
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
