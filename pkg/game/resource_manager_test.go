package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

// encodeTestPNG creates a simple 10x10 blue PNG for testing purposes.
func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, blue)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func newTestResourceManager(t *testing.T) *ResourceManager {
	t.Helper()
	fsys := fstest.MapFS{
		"assets/ducks/yellow.png":  &fstest.MapFile{Data: encodeTestPNG(t)},
		"assets/overworld/bad.png": &fstest.MapFile{Data: []byte("not a png")},
	}
	return NewResourceManager(fsys)
}

// TestLoadImage tests loading and caching behaviour.
func TestLoadImage(t *testing.T) {
	rm := newTestResourceManager(t)

	img, err := rm.LoadImage("assets/ducks/yellow.png")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 10 || h != 10 {
		t.Errorf("image size = %dx%d, want 10x10", w, h)
	}

	again, err := rm.LoadImage("assets/ducks/./yellow.png")
	if err != nil {
		t.Fatalf("second LoadImage failed: %v", err)
	}
	if again != img {
		t.Error("expected cached image on second load")
	}
	if rm.CachedImageCount() != 1 {
		t.Errorf("CachedImageCount = %d, want 1", rm.CachedImageCount())
	}
	if rm.GetImage("assets/ducks/yellow.png") != img {
		t.Error("GetImage did not return cached image")
	}
}

// TestLoadImageErrors tests missing and corrupted files.
func TestLoadImageErrors(t *testing.T) {
	rm := newTestResourceManager(t)

	tests := []struct {
		name string
		path string
	}{
		{"文件不存在", "assets/ducks/missing.png"},
		{"文件损坏", "assets/overworld/bad.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := rm.LoadImage(tt.path); err == nil {
				t.Errorf("LoadImage(%q) expected error", tt.path)
			}
			if rm.GetImage(tt.path) != nil {
				t.Errorf("failed load of %q must not be cached", tt.path)
			}
		})
	}
}

// TestLoadImages 验证批量加载在第一个错误处停止
func TestLoadImages(t *testing.T) {
	rm := newTestResourceManager(t)

	if err := rm.LoadImages("assets/ducks/yellow.png"); err != nil {
		t.Fatalf("LoadImages failed: %v", err)
	}
	if err := rm.LoadImages("assets/ducks/yellow.png", "assets/ducks/missing.png"); err == nil {
		t.Error("LoadImages should fail on missing file")
	}
}
