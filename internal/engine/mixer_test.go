package engine

import (
	"errors"
	"testing"
)

func TestMixerToggles(t *testing.T) {
	m := NewMixer()
	if m.Mono(3) || m.Phase(3) {
		t.Fatalf("expected defaults off")
	}
	if !m.ToggleMono(3) || !m.Mono(3) {
		t.Fatalf("expected mono on")
	}
	if m.Mono(4) {
		t.Fatalf("toggle must not leak to other channels")
	}
	if !m.TogglePhase(3) || m.TogglePhase(3) {
		t.Fatalf("expected phase to toggle on then off")
	}
}

func TestRecorderPrimeLockedWhileRecording(t *testing.T) {
	r := NewRecorder()
	primed, err := r.TogglePrime(1)
	if err != nil || !primed || !r.IsPrimed(1) {
		t.Fatalf("expected channel primed, got %v %v", primed, err)
	}
	if !r.ToggleRecording() || !r.Status() {
		t.Fatalf("expected recording")
	}
	if _, err := r.TogglePrime(1); !errors.Is(err, ErrRecording) {
		t.Fatalf("expected ErrRecording, got %v", err)
	}
	if !r.IsPrimed(1) {
		t.Fatalf("prime must survive refused toggle")
	}
	r.SetStatus(false)
	if r.Status() {
		t.Fatalf("expected stopped")
	}
}
