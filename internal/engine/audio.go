package engine

// Sound is a loaded sound handle.
type Sound struct {
	Name   string
	Bell   bool    // Ring the terminal bell when played
	Volume float64 // 0..1, applied by the Audio implementation
}

// Audio plays sounds. Playback failures are reported but never fatal:
// callers log them and keep going.
type Audio interface {
	Play(s Sound) error
	PlayLooping(s Sound) error
}

// NopAudio discards every sound.
type NopAudio struct{}

// Play implements Audio.
func (NopAudio) Play(Sound) error { return nil }

// PlayLooping implements Audio.
func (NopAudio) PlayLooping(Sound) error { return nil }
