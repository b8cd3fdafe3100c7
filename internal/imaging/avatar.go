package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// Fotos de perfil são normalizadas antes do upload: redimensionadas para
// caber em AvatarSize e reencodadas em webp, que é o formato servido.

const (
	AvatarSize    = 256
	ContentType   = "image/webp"
	encodeQuality = 80
)

// ToAvatarWebP decodifica jpeg/png, redimensiona mantendo a proporção e
// devolve os bytes webp prontos para armazenar.
func ToAvatarWebP(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	dst := resize(src, AvatarSize)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: encodeQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), nil
}

func resize(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
