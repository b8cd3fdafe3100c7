package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToAvatarWebPResizesLargeImage(t *testing.T) {
	out, err := ToAvatarWebP(pngBytes(t, 1024, 512))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, AvatarSize, b.Dx())
	assert.Equal(t, AvatarSize/2, b.Dy())
}

func TestToAvatarWebPKeepsSmallImage(t *testing.T) {
	out, err := ToAvatarWebP(pngBytes(t, 100, 80))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 100, b.Dx())
	assert.Equal(t, 80, b.Dy())
}

func TestToAvatarWebPRejectsGarbage(t *testing.T) {
	_, err := ToAvatarWebP([]byte("isso não é uma imagem"))
	assert.Error(t, err)
}
