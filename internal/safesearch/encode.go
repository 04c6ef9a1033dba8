package safesearch

import (
	"fmt"

	"gocv.io/x/gocv"
)

func validateImage(img gocv.Mat) error {
	if img.Empty() {
		return fmt.Errorf("%w: empty image", ErrInvalidImage)
	}
	if img.Channels() != 3 {
		return fmt.Errorf("%w: expected 3 channels, got %d", ErrInvalidImage, img.Channels())
	}
	return nil
}

// encodeJPEG swaps the host RGB order to BGR and encodes the result as JPEG.
func encodeJPEG(img gocv.Mat) ([]byte, error) {
	bgr := gocv.NewMat()
	defer bgr.Close()

	if err := gocv.CvtColor(img, &bgr, gocv.ColorRGBToBGR); err != nil {
		return nil, fmt.Errorf("reorder channels: %w", err)
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, bgr)
	if err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	defer buf.Close()

	// GetBytes aliases native memory released by Close.
	src := buf.GetBytes()
	out := make([]byte, len(src))
	copy(out, src)
	return out, nil
}
