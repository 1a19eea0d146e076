package site

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const jpegQuality = 80

// copyStatic mirrors the static assets directory into the output root.
// JPEG and PNG images wider than maxWidth are scaled down with
// Catmull-Rom resampling before writing; everything else is copied
// verbatim. A missing static dir is not an error.
func copyStatic(staticDir, outDir string, maxWidth int) error {
	info, err := os.Stat(staticDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("static dir %s is not a directory", staticDir)
	}

	return filepath.WalkDir(staticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(staticDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(outDir, "public", rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if isResizableImage(path) {
			if resized, ok := resizeImage(data, filepath.Ext(path), maxWidth); ok {
				slog.Debug("resized image", "path", rel, "max_width", maxWidth)
				data = resized
			}
		}
		return os.WriteFile(dst, data, 0o644)
	})
}

func isResizableImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// resizeImage scales an encoded image down to maxWidth, preserving aspect
// ratio and format. It returns ok=false when the image is already narrow
// enough or cannot be decoded, in which case the original bytes should be
// used as-is.
func resizeImage(data []byte, ext string, maxWidth int) ([]byte, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth {
		return nil, false
	}

	newH := h * maxWidth / w
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(&buf, dst)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
