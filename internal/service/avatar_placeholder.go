package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const avatarSize = 256

var ErrInvalidAvatarKey = errors.New("invalid avatar key")

var avatarPalette = []color.RGBA{
	{R: 17, G: 24, B: 39, A: 255},
	{R: 30, G: 64, B: 175, A: 255},
	{R: 4, G: 120, B: 87, A: 255},
	{R: 180, G: 83, B: 9, A: 255},
	{R: 157, G: 23, B: 77, A: 255},
	{R: 91, G: 33, B: 182, A: 255},
}

// AvatarService draws initial-letter placeholders for people without a photo.
// Images are rendered once per key and kept in memory.
type AvatarService struct {
	mu     sync.RWMutex
	images map[string][]byte
}

func NewAvatarService() *AvatarService {
	return &AvatarService{images: make(map[string][]byte)}
}

// URLFor returns the placeholder URL for name, or an empty string when name has no usable initial.
func (s *AvatarService) URLFor(name string) string {
	_, key := resolveInitial(name)
	if key == "" {
		return ""
	}
	return "/avatars/" + key + ".png"
}

// Image returns the PNG for a key produced by URLFor.
func (s *AvatarService) Image(key string) ([]byte, error) {
	key = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(key)), ".png")
	glyph, err := glyphForKey(key)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	cached, ok := s.images[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	img, err := renderInitialAvatarImage(glyph)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.images[key] = buf.Bytes()
	s.mu.Unlock()
	return buf.Bytes(), nil
}

func resolveInitial(name string) (string, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ""
	}

	r, _ := utf8.DecodeRuneInString(trimmed)
	if r == utf8.RuneError || !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return "", ""
	}

	glyph := strings.ToUpper(string(r))
	key := strings.ToLower(glyph)

	if len(key) != 1 || !isASCIIAlphaNumeric(key[0]) {
		upper, _ := utf8.DecodeRuneInString(glyph)
		key = fmt.Sprintf("u%x", upper)
	}

	return glyph, key
}

// glyphForKey reverses the key scheme of resolveInitial.
func glyphForKey(key string) (string, error) {
	if len(key) == 1 && isASCIIAlphaNumeric(key[0]) {
		return strings.ToUpper(key), nil
	}
	if len(key) > 1 && key[0] == 'u' {
		code, err := strconv.ParseUint(key[1:], 16, 32)
		if err != nil || code > unicode.MaxRune {
			return "", ErrInvalidAvatarKey
		}
		r := rune(code)
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return "", ErrInvalidAvatarKey
		}
		return string(r), nil
	}
	return "", ErrInvalidAvatarKey
}

func isASCIIAlphaNumeric(value byte) bool {
	return (value >= 'a' && value <= 'z') || (value >= '0' && value <= '9')
}

func renderInitialAvatarImage(letter string) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	r, _ := utf8.DecodeRuneInString(letter)
	background := avatarPalette[int(r)%len(avatarPalette)]
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	face, err := loadMonoFace(float64(avatarSize) * 0.5)
	if err != nil {
		return nil, err
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	bounds, _ := font.BoundString(face, letter)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	x := (avatarSize - textWidth) / 2
	verticalAdjust := int(math.Round(float64(avatarSize) * 0.05))
	y := (avatarSize+textHeight)/2 - verticalAdjust

	d.Dot = fixed.P(x, y)
	d.DrawString(letter)

	return img, nil
}

func loadMonoFace(size float64) (font.Face, error) {
	fontData, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
