package preview

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// WriteWebP encodes the preview image to path, creating directories as
// needed.
func WriteWebP(path string, img *image.NRGBA) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("preview: mkdir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("preview: webp encode %s: %w", path, err)
	}
	return nil
}
