package tui

import (
	"testing"
	"time"

	"github.com/decker502/lawndefense/pkg/game"
)

func TestToneStreamer(t *testing.T) {
	tones := []game.Tone{
		{Freq: 440, Duration: 10 * time.Millisecond},
		{Freq: 0, Duration: 10 * time.Millisecond},
	}

	t.Run("单次播放在末尾结束", func(t *testing.T) {
		s := NewToneStreamer(tones, sampleRate, 0.5, false)
		buf := make([][2]float64, 1000)

		n, ok := s.Stream(buf)
		if n != 882 || !ok {
			t.Fatalf("Expected 882 samples, got n=%d ok=%v", n, ok)
		}
		for i := 441; i < n; i++ {
			if buf[i][0] != 0 || buf[i][1] != 0 {
				t.Fatalf("Expected silence at sample %d, got %v", i, buf[i])
			}
		}
		var peak float64
		for i := 0; i < 441; i++ {
			if buf[i][0] > peak {
				peak = buf[i][0]
			}
		}
		if peak <= 0 || peak > 0.5 {
			t.Errorf("Expected peak in (0, 0.5], got %v", peak)
		}

		if n, ok := s.Stream(buf); n != 0 || ok {
			t.Errorf("Expected drained streamer, got n=%d ok=%v", n, ok)
		}
	})

	t.Run("循环播放不会结束", func(t *testing.T) {
		s := NewToneStreamer(tones, sampleRate, 0.5, true)
		buf := make([][2]float64, 1000)
		for i := 0; i < 5; i++ {
			if n, ok := s.Stream(buf); n != len(buf) || !ok {
				t.Fatalf("Expected full buffer on pass %d, got n=%d ok=%v", i, n, ok)
			}
		}
	})

	t.Run("空序列", func(t *testing.T) {
		s := NewToneStreamer(nil, sampleRate, 0.5, true)
		if n, ok := s.Stream(make([][2]float64, 10)); n != 0 || ok {
			t.Errorf("Expected empty streamer, got n=%d ok=%v", n, ok)
		}
	})
}

func TestBeepAudioWithoutSpeaker(t *testing.T) {
	// 未初始化扬声器时播放请求被忽略
	a := NewBeepAudio()
	a.Play(game.SoundPlant)
	a.Play("missing")
	a.SetMusicEnabled(true)
	a.Close()

	if a.mixer.Len() != 0 {
		t.Errorf("Expected no queued streamers, got %d", a.mixer.Len())
	}
}
