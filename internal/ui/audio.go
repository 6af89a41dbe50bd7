package ui

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/hailam/chessview/internal/movelist"
)

// SoundType identifies a feedback sound.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCastle
	SoundInvalid
)

const sampleRate = 44100

// tone is one synthesized segment: a sine at freq with an overtone mixed in,
// shaped by an exponential decay (or a linear ramp when decay is 0).
type tone struct {
	freq      float64
	seconds   float64
	amplitude float64
	decay     float64
	overtone  float64 // relative level of 2*freq
	gap       float64 // silence before the segment, in seconds
}

var soundBank = map[SoundType][]tone{
	SoundMove:    {{freq: 440, seconds: 0.08, amplitude: 0.3, decay: 30, overtone: 0.2}},
	SoundCapture: {{freq: 330, seconds: 0.12, amplitude: 0.5, decay: 25, overtone: 0.35}},
	SoundCastle: {
		{freq: 400, seconds: 0.06, amplitude: 0.3, decay: 30, overtone: 0.2},
		{freq: 440, seconds: 0.06, amplitude: 0.24, decay: 30, overtone: 0.2, gap: 0.05},
	},
	SoundInvalid: {{freq: 150, seconds: 0.1, amplitude: 0.15, overtone: 0.3}},
}

// synthesize renders tones as 16-bit little-endian stereo PCM.
func synthesize(tones []tone) []byte {
	var pcm []byte
	frame := make([]byte, 4)
	for _, tn := range tones {
		pcm = append(pcm, make([]byte, int(sampleRate*tn.gap)*4)...)
		n := int(sampleRate * tn.seconds)
		for i := 0; i < n; i++ {
			t := float64(i) / sampleRate
			env := 1 - t/tn.seconds
			if tn.decay > 0 {
				env = math.Exp(-t * tn.decay)
			}
			wave := math.Sin(2*math.Pi*tn.freq*t) + tn.overtone*math.Sin(4*math.Pi*tn.freq*t)
			v := int16(math.Max(-1, math.Min(1, wave*env*tn.amplitude)) * math.MaxInt16)
			binary.LittleEndian.PutUint16(frame[0:], uint16(v))
			binary.LittleEndian.PutUint16(frame[2:], uint16(v))
			pcm = append(pcm, frame...)
		}
	}
	return pcm
}

// AudioManager plays the feedback sounds.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates the audio context. Ebitengine allows one context per
// process.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte, len(soundBank)),
		enabled: true,
		volume:  0.5,
	}
	for st, tones := range soundBank {
		am.sounds[st] = synthesize(tones)
	}
	return am
}

// Play starts sound on a fresh player so overlapping sounds mix.
func (am *AudioManager) Play(sound SoundType) {
	data, ok := am.sounds[sound]
	if !am.enabled || !ok {
		return
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}

// SoundFor picks the sound announcing item.
func SoundFor(item movelist.Item) SoundType {
	switch {
	case item.IsCastle():
		return SoundCastle
	case strings.Contains(item.SAN, "x"):
		return SoundCapture
	default:
		return SoundMove
	}
}
