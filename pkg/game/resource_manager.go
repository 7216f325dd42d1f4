package game

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceManager is responsible for centralized management of game images.
// Images are read from an fs.FS (normally the embedded asset tree), decoded once
// and cached by path.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The cache is a plain map; all
// resources are loaded in the main goroutine before the game loop starts.
//
// Usage:
//
//	rm := NewResourceManager(embedded.FS())
//	img, err := rm.LoadImage("assets/overworld/overworld.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	fsys       fs.FS
	imageCache map[string]*ebiten.Image // Cache for loaded images: path -> Image
}

// NewResourceManager creates a ResourceManager that reads from fsys.
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:       fsys,
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage loads an image from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the image format is not supported or the file is corrupted.
//   - Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	p = path.Clean(p)
	if cachedImage, exists := rm.imageCache[p]; exists {
		return cachedImage, nil
	}

	file, err := rm.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg

	return ebitenImg, nil
}

// LoadImages 依次加载多个图片，遇到第一个错误即返回
func (rm *ResourceManager) LoadImages(paths ...string) error {
	for _, p := range paths {
		if _, err := rm.LoadImage(p); err != nil {
			return err
		}
	}
	return nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(p string) *ebiten.Image {
	return rm.imageCache[path.Clean(p)]
}

// CachedImageCount 返回已缓存的图片数量
func (rm *ResourceManager) CachedImageCount() int {
	return len(rm.imageCache)
}
