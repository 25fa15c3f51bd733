// Package audio provides toast sound cue playback.
// It uses the beep library to play WAV, OGG, and MP3 audio files
// with volume control and per-kind cue configuration.
package audio
