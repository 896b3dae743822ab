package memo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const jpegQuality = 85

// Avatar sizes that may be requested, in pixels.
var avatarSizes = map[int]bool{32: true, 64: true, 96: true, 128: true, 256: true}

// resizeImage decodes src and scales it to width, keeping the aspect ratio.
// Images already narrower than width are not enlarged. PNG sources stay PNG;
// everything else is encoded as JPEG.
func resizeImage(src io.Reader, width int) ([]byte, string, error) {
	img, format, err := image.Decode(src)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		newH := h * width / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

type avatarImage struct {
	data        []byte
	contentType string
}

// avatarCache keeps resized avatars in memory, keyed by width.
type avatarCache struct {
	mu    sync.Mutex
	sized map[int]avatarImage
}

func (ac *avatarCache) get(size int) (avatarImage, bool) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	img, ok := ac.sized[size]
	return img, ok
}

func (ac *avatarCache) put(size int, img avatarImage) {
	ac.mu.Lock()
	if ac.sized == nil {
		ac.sized = make(map[int]avatarImage)
	}
	ac.sized[size] = img
	ac.mu.Unlock()
}

func (a *App) handleAvatar(c echo.Context) error {
	size, err := strconv.Atoi(c.Param("size"))
	if err != nil || !avatarSizes[size] {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	img, ok := a.avatars.get(size)
	if !ok {
		// Resizing is the expensive path; limit it per client.
		if !a.resizeLimiter.Allow(c.RealIP()) {
			return echo.NewHTTPError(http.StatusTooManyRequests)
		}
		f, err := os.Open(filepath.Join(a.Config.StaticDir, a.Config.Avatar))
		if errors.Is(err, os.ErrNotExist) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		if err != nil {
			return err
		}
		defer f.Close()

		data, contentType, err := resizeImage(f, size)
		if err != nil {
			return fmt.Errorf("memo: avatar: %w", err)
		}
		img = avatarImage{data: data, contentType: contentType}
		a.avatars.put(size, img)
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, img.contentType, img.data)
}
