// Image file loading into the host's RGB channel order
package io

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

var supportedExtensions = []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp", ".webp"}

// ImageLoader reads image files as 3-channel RGB Mats.
type ImageLoader struct {
	logger logrus.FieldLogger
}

func NewImageLoader(logger logrus.FieldLogger) *ImageLoader {
	return &ImageLoader{logger: logger}
}

// LoadImage decodes path and converts OpenCV's BGR order to RGB.
// The caller owns the returned Mat.
func (il *ImageLoader) LoadImage(path string) (gocv.Mat, error) {
	il.logger.WithField("filepath", path).Debug("Loading image")

	if !IsSupportedImageFormat(path) {
		return gocv.NewMat(), fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	bgr := gocv.IMRead(path, gocv.IMReadColor)
	defer bgr.Close()
	if bgr.Empty() {
		return gocv.NewMat(), fmt.Errorf("failed to load image: %s", path)
	}

	rgb, err := ToHostOrder(bgr)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("load %s: %w", path, err)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"width":    rgb.Cols(),
		"height":   rgb.Rows(),
		"channels": rgb.Channels(),
	}).Info("Image loaded successfully")

	return rgb, nil
}

// ToHostOrder converts a BGR Mat to a new RGB Mat.
func ToHostOrder(bgr gocv.Mat) (gocv.Mat, error) {
	if bgr.Channels() != 3 {
		return gocv.NewMat(), fmt.Errorf("expected 3 channels, got %d", bgr.Channels())
	}
	rgb := gocv.NewMat()
	if err := gocv.CvtColor(bgr, &rgb, gocv.ColorBGRToRGB); err != nil {
		rgb.Close()
		return gocv.NewMat(), err
	}
	return rgb, nil
}

func IsSupportedImageFormat(path string) bool {
	return slices.Contains(supportedExtensions, strings.ToLower(filepath.Ext(path)))
}

// SupportedExtensions returns the accepted file extensions, lower case with dot.
func SupportedExtensions() []string {
	return slices.Clone(supportedExtensions)
}
