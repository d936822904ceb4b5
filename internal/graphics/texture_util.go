package graphics

import (
	"blockworld/internal/texture"
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrNoPixels is returned when uploading a coordinates-only atlas.
var ErrNoPixels = errors.New("graphics: atlas has no image")

// UploadAtlas copies the atlas pixels into a nearest-filtered 2D texture.
func UploadAtlas(a *texture.Atlas) (uint32, error) {
	if a.Image == nil {
		return 0, ErrNoPixels
	}
	rgba := a.Image

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex, nil
}
