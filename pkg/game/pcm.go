package game

import (
	"encoding/binary"
	"math"
)

// SynthesizePCM 把音序列合成为 16 位小端立体声 PCM
// 每个音首尾做短淡入淡出，避免爆音
func SynthesizePCM(tones []Tone, sampleRate int, volume float64) []byte {
	volume = clampVolume(volume)

	total := 0
	for _, t := range tones {
		total += int(t.Duration.Seconds() * float64(sampleRate))
	}
	buf := make([]byte, 0, total*4)

	for _, t := range tones {
		n := int(t.Duration.Seconds() * float64(sampleRate))
		fade := sampleRate / 200
		if fade*2 > n {
			fade = n / 2
		}
		for i := 0; i < n; i++ {
			v := 0.0
			if t.Freq > 0 {
				v = math.Sin(2 * math.Pi * t.Freq * float64(i) / float64(sampleRate))
				// 方波成分让音色更像老游戏机
				if v > 0.3 {
					v = 0.6
				} else if v < -0.3 {
					v = -0.6
				}
			}
			env := 1.0
			if fade > 0 {
				if i < fade {
					env = float64(i) / float64(fade)
				} else if i >= n-fade {
					env = float64(n-1-i) / float64(fade)
				}
			}
			s := int16(v * env * volume * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}
	}
	return buf
}
