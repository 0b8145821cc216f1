// handlers/photos.go - Demand photo upload and processing
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// maxPhotoDim bounds the longest edge after downscale; site photos are
// viewed on cards, full resolution is wasted storage.
const maxPhotoDim = 1280

// UploadDemandPhoto attaches a processed photo to a demand
func (h *Handler) UploadDemandPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	d, err := h.DB.GetDemand(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if d == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	raw, err := readPhotoFile(w, r, h.Cfg.MaxPhotoBytes)
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, err.Error(), status)
		return
	}

	processed, err := processPhoto(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := uuid.NewString() + ".jpg"
	if err := os.MkdirAll(h.PhotosDir, 0755); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := os.WriteFile(filepath.Join(h.PhotosDir, name), processed, 0644); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.DB.SetDemandPhoto(id, name); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/demands", http.StatusSeeOther)
}

// readPhotoFile reads the uploaded file, rejecting bodies over maxBytes.
// MaxBytesReader makes an oversized upload an error instead of a
// silently truncated read.
func readPhotoFile(w http.ResponseWriter, r *http.Request, maxBytes int64) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("photo exceeds the %d byte limit: %w", maxBytes, err)
		}
		return nil, errors.New("invalid multipart form")
	}
	file, _, err := r.FormFile("photo")
	if err != nil {
		return nil, errors.New("photo file is required")
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("unable to read photo file")
	}
	if len(raw) == 0 {
		return nil, errors.New("photo file is empty")
	}
	return raw, nil
}

// processPhoto decodes a jpeg/png upload, downscales it so the longest
// edge fits maxPhotoDim, and re-encodes as jpeg.
func processPhoto(raw []byte) ([]byte, error) {
	mime := http.DetectContentType(raw)
	switch mime {
	case "image/png", "image/jpeg":
	default:
		return nil, fmt.Errorf("photo must be png or jpeg, got %s", mime)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.New("unable to decode photo")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, errors.New("invalid image dimensions")
	}

	if width > maxPhotoDim || height > maxPhotoDim {
		scale := float64(maxPhotoDim) / float64(width)
		if height > width {
			scale = float64(maxPhotoDim) / float64(height)
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(width)*scale), int(float64(height)*scale)))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
		img = dst
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, errors.New("unable to encode photo")
	}
	return out.Bytes(), nil
}
