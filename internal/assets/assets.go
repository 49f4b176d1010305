// Package assets loads the font and textures used by the desktop frontend.
// Everything is read once at startup; a missing or undecodable file is an
// error the caller is expected to treat as fatal.
package assets

import (
	"fmt"
	"image"
	_ "image/png" // texture format
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFont parses the TrueType/OpenType file at path into a face of the given
// point size. An empty path selects the bundled Go Regular font.
func LoadFont(path string, size float64) (font.Face, error) {
	name, data := "Go Regular", goregular.TTF
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("assets: failed to read font %s: %w", path, err)
		}
		name = path
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to parse font %s: %w", name, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("assets: failed to create face for %s: %w", name, err)
	}
	return face, nil
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadImages decodes every path, stopping at the first failure.
func LoadImages(paths []string) (map[string]image.Image, error) {
	images := make(map[string]image.Image, len(paths))
	for _, p := range paths {
		img, err := LoadImage(p)
		if err != nil {
			return nil, err
		}
		images[p] = img
	}
	return images, nil
}
