package texture

import (
	"blockworld/internal/registry"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrAtlasSize is returned for atlas images that are not square or do not
// split evenly into cells.
var ErrAtlasSize = errors.New("texture: bad atlas dimensions")

// Atlas maps block texture cells to UV rectangles inside one square image.
type Atlas struct {
	imageSize int
	cellSize  int

	// Image is the RGBA pixel data, imageSize x imageSize. Nil for a
	// coordinates-only atlas.
	Image *image.RGBA
}

// New returns an atlas that only answers coordinate queries.
func New(imageSize, cellSize int) (*Atlas, error) {
	if err := checkSize(imageSize, imageSize, cellSize); err != nil {
		return nil, err
	}
	return &Atlas{imageSize: imageSize, cellSize: cellSize}, nil
}

// Load decodes an atlas image (png, bmp or webp) from disk.
func Load(path string, imageSize, cellSize int) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture atlas: %w", err)
	}
	defer f.Close()
	return Decode(f, imageSize, cellSize)
}

// Decode reads an atlas image and normalises it to imageSize pixels square.
// Images of a different (square, cell aligned) size are rescaled with
// nearest neighbour sampling so texels stay sharp.
func Decode(r io.Reader, imageSize, cellSize int) (*Atlas, error) {
	a, err := New(imageSize, cellSize)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode texture atlas: %w", err)
	}
	b := img.Bounds()
	if err := checkSize(b.Dx(), b.Dy(), cellSize); err != nil {
		return nil, fmt.Errorf("%s atlas: %w", format, err)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	if b.Dx() == imageSize {
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(rgba, rgba.Bounds(), img, b, draw.Src, nil)
	}
	a.Image = rgba
	return a, nil
}

// Generated builds an atlas with one flat colour per cell, used when no
// atlas image is configured.
func Generated(imageSize, cellSize int) (*Atlas, error) {
	a, err := New(imageSize, cellSize)
	if err != nil {
		return nil, err
	}
	a.Image = image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	perRow := imageSize / cellSize
	for cy := 0; cy < perRow; cy++ {
		for cx := 0; cx < perRow; cx++ {
			n := cy*perRow + cx
			c := color.RGBA{R: uint8(40 + n*37), G: uint8(90 + n*53), B: uint8(60 + n*29), A: 255}
			rect := image.Rect(cx*cellSize, cy*cellSize, (cx+1)*cellSize, (cy+1)*cellSize)
			draw.Draw(a.Image, rect, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
	return a, nil
}

func checkSize(w, h, cellSize int) error {
	if cellSize <= 0 || w <= 0 || w != h || w%cellSize != 0 {
		return fmt.Errorf("%w: %dx%d with %dpx cells", ErrAtlasSize, w, h, cellSize)
	}
	return nil
}

// ImageSize is the side length of the atlas in pixels.
func (a *Atlas) ImageSize() int { return a.imageSize }

// CellSize is the side length of one texture cell in pixels.
func (a *Atlas) CellSize() int { return a.cellSize }

// TextureCoords returns the four UV corners of a cell as
// xMax,yMax, xMin,yMax, xMin,yMin, xMax,yMin. Each edge is inset by half a
// pixel to keep neighbouring cells from bleeding in.
func (a *Atlas) TextureCoords(c registry.Cell) [8]float32 {
	perRow := float32(a.imageSize) / float32(a.cellSize)
	cell := 1 / perRow
	pixel := 1 / float32(a.imageSize)

	xMin := float32(c[0])*cell + 0.5*pixel
	yMin := float32(c[1])*cell + 0.5*pixel
	xMax := xMin + cell - pixel
	yMax := yMin + cell - pixel

	return [8]float32{
		xMax, yMax,
		xMin, yMax,
		xMin, yMin,
		xMax, yMin,
	}
}
