package service

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func TestAvatarURLFor(t *testing.T) {
	svc := NewAvatarService()
	cases := map[string]string{
		"dana":   "/avatars/d.png",
		" Zoe ":  "/avatars/z.png",
		"Élodie": "/avatars/uc9.png",
		"   ":    "",
	}
	for name, want := range cases {
		if got := svc.URLFor(name); got != want {
			t.Errorf("URLFor(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestAvatarImageIsPNG(t *testing.T) {
	svc := NewAvatarService()

	data, err := svc.Image("d.png")
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != avatarSize || b.Dy() != avatarSize {
		t.Fatalf("unexpected size %v", b)
	}

	again, err := svc.Image("d")
	if err != nil || !bytes.Equal(data, again) {
		t.Fatalf("expected cached image for the same key")
	}

	if _, err := svc.Image("uc9"); err != nil {
		t.Fatalf("unicode key: %v", err)
	}
	if _, err := svc.Image("../etc"); !errors.Is(err, ErrInvalidAvatarKey) {
		t.Fatalf("expected ErrInvalidAvatarKey, got %v", err)
	}
}
