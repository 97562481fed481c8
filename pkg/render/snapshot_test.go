package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshotRendererDraws(t *testing.T) {
	r := NewSnapshotRenderer(200, 100)
	r.Clear(color.Black)

	r.FillRect(Rect{X: 0, Y: 0, W: 50, H: 50}, color.RGBA{R: 255, A: 255})
	r.DrawEntity("peashooter", FrameRect{Index: 0, W: 80, H: 80}, Rect{X: 100, Y: 10, W: 80, H: 80})
	r.DrawText("Sun: 50", 5, 60, ColorText)

	if r.Calls() != 3 {
		t.Errorf("Calls() = %d, want 3", r.Calls())
	}

	got := color.RGBAModel.Convert(r.Image().At(25, 25)).(color.RGBA)
	if got.R != 255 || got.G != 0 {
		t.Errorf("filled pixel = %+v, want red", got)
	}

	center := color.RGBAModel.Convert(r.Image().At(140, 50)).(color.RGBA)
	want := SpriteColor("peashooter", 0)
	if center.G != want.G {
		t.Errorf("sprite pixel = %+v, want %+v", center, want)
	}
}

func TestSnapshotRendererSavePNG(t *testing.T) {
	r := NewSnapshotRenderer(10, 10)
	r.Clear(color.White)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("PNG not written: %v", err)
	}
}

func TestSpriteColor(t *testing.T) {
	tests := []struct {
		name   string
		sprite string
		want   color.RGBA
	}{
		{"路障僵尸优先于普通僵尸", "zombie_conehead", color.RGBA{R: 230, G: 130, B: 40, A: 255}},
		{"普通僵尸", "zombie_normal", color.RGBA{R: 120, G: 140, B: 120, A: 255}},
		{"未知精灵", "mystery", color.RGBA{R: 255, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpriteColor(tt.sprite, 0); got != tt.want {
				t.Errorf("SpriteColor(%q) = %+v, want %+v", tt.sprite, got, tt.want)
			}
		})
	}
}
