package platform

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ImageSource identifies which lookup produced a resolved image
type ImageSource int

const (
	SourcePlaceholder ImageSource = iota
	SourceBundle
	SourceContext
	SourceFilesystem
)

// String returns the source name
func (s ImageSource) String() string {
	switch s {
	case SourceBundle:
		return "bundle"
	case SourceContext:
		return "context"
	case SourceFilesystem:
		return "filesystem"
	default:
		return "placeholder"
	}
}

// DefaultCacheSize bounds the number of scaled thumbnails kept per resolver
const DefaultCacheSize = 32

// ImageResolver locates thumbnails by logical name and returns them scaled to
// the requested size. Lookups are tried in order: the primary bundle, the
// secondary context bundle, then the images directory under WorkDir.
// Resolution never fails; a transparent placeholder is returned instead.
type ImageResolver struct {
	Bundle  fs.FS  // primary resources, rooted at the application root
	Context fs.FS  // secondary resources, searched under "images/"
	WorkDir string // filesystem fallback root, "" means the working directory

	cache *lru.Cache[string, resolved]
}

type resolved struct {
	img    image.Image
	source ImageSource
}

// NewImageResolver creates a resolver. Either bundle may be nil to skip that
// lookup.
func NewImageResolver(bundle, secondary fs.FS, workDir string) *ImageResolver {
	r := &ImageResolver{
		Bundle:  bundle,
		Context: secondary,
		WorkDir: workDir,
	}
	// lru.New only fails for a non-positive size
	r.cache, _ = lru.New[string, resolved](DefaultCacheSize)
	return r
}

// NewDefaultImageResolver wires the bundled assets, the directory of the
// running executable and the current working directory
func NewDefaultImageResolver(bundle fs.FS) *ImageResolver {
	var secondary fs.FS
	if dir := ExecutableDir(); dir != "" {
		secondary = os.DirFS(dir)
	}
	return NewImageResolver(bundle, secondary, "")
}

// Resolve returns the image for logicalName scaled to width x height, or a
// transparent placeholder of that size
func (r *ImageResolver) Resolve(logicalName string, width, height int) image.Image {
	img, _ := r.Lookup(logicalName, width, height)
	return img
}

// Lookup is Resolve that also reports where the image came from
func (r *ImageResolver) Lookup(logicalName string, width, height int) (image.Image, ImageSource) {
	width, height = clampSize(width), clampSize(height)

	key := fmt.Sprintf("%s@%dx%d", logicalName, width, height)
	if r.cache != nil {
		if hit, ok := r.cache.Get(key); ok {
			return hit.img, hit.source
		}
	}

	img, source := r.lookup(logicalName, width, height)
	if r.cache != nil {
		r.cache.Add(key, resolved{img: img, source: source})
	}
	return img, source
}

func (r *ImageResolver) lookup(logicalName string, width, height int) (image.Image, ImageSource) {
	fileName := imageFileName(logicalName)

	if src, ok := decodeFromFS(r.Bundle, bundlePath(logicalName)); ok {
		return Scale(src, width, height), SourceBundle
	}

	if src, ok := decodeFromFS(r.Context, path.Join(ImagesDir, fileName)); ok {
		return Scale(src, width, height), SourceContext
	}

	fsPath := filepath.Join(ImagesDir, filepath.FromSlash(fileName))
	if r.WorkDir != "" {
		fsPath = filepath.Join(r.WorkDir, fsPath)
	}
	if IsRegularFile(fsPath) {
		// A file that exists but does not decode ends the chain
		if src, ok := decodeFile(fsPath); ok {
			return Scale(src, width, height), SourceFilesystem
		}
	}

	return Placeholder(width, height), SourcePlaceholder
}

// decodeFromFS opens and decodes name from fsys. A nil fsys, a missing file
// or an undecodable file all report ok=false.
func decodeFromFS(fsys fs.FS, name string) (image.Image, bool) {
	if fsys == nil || !fs.ValidPath(name) {
		return nil, false
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, false
	}
	defer f.Close()
	return decode(f)
}

func decodeFile(p string) (image.Image, bool) {
	f, err := os.Open(p)
	if err != nil {
		return nil, false
	}
	defer f.Close()
	return decode(f)
}

func decode(rd io.Reader) (image.Image, bool) {
	img, _, err := image.Decode(rd)
	if err != nil || img == nil {
		return nil, false
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, false
	}
	return img, true
}

// Scale resamples src to exactly width x height using Catmull-Rom filtering
func Scale(src image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, clampSize(width), clampSize(height)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Placeholder returns a fully transparent image of the given size
func Placeholder(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, clampSize(width), clampSize(height)))
}

func clampSize(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
