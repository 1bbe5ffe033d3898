package glow

import "testing"

func TestSpriteFalloff(t *testing.T) {
	img, err := Sprite(64)
	if err != nil {
		t.Fatalf("Sprite: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds: got=%v", b)
	}

	center := img.RGBAAt(32, 32).A
	corner := img.RGBAAt(0, 0).A
	if center == 0 {
		t.Fatalf("halo centre is transparent")
	}
	if corner != 0 {
		t.Fatalf("halo corner not transparent: %d", corner)
	}
}

func TestSpriteCached(t *testing.T) {
	a, err := Sprite(32)
	if err != nil {
		t.Fatalf("Sprite: %v", err)
	}
	b, err := Sprite(32)
	if err != nil {
		t.Fatalf("Sprite: %v", err)
	}
	if a != b {
		t.Fatalf("expected the cached sprite to be reused")
	}
}

func TestSpriteInvalidSize(t *testing.T) {
	if _, err := Sprite(0); err == nil {
		t.Fatalf("expected an error for size 0")
	}
}
