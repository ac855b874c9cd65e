package wordml

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// sniffImage decodes just enough of a media payload to report its pixel
// dimensions and format. PNG, JPEG and GIF come from the standard library;
// BMP and TIFF still turn up in legacy packages and need x/image. Anything
// undecodable reports zeros.
func sniffImage(data []byte) (width, height int, format string) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, ""
	}
	return cfg.Width, cfg.Height, format
}
