package command

import (
	"errors"
	"testing"
)

func TestUnmarshal_Play(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"command":"Play","payload":{"pad_id":3,"file_path":"kick.wav","volume":0.8,"pan":-0.5}}`)

	cmd, err := Unmarshal(raw)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	play, ok := cmd.(Play)
	if !ok {
		t.Fatalf("Unmarshal() = %T, want Play", cmd)
	}
	if play.PadID != 3 || play.FilePath != "kick.wav" || play.Volume != 0.8 || play.Pan != -0.5 {
		t.Errorf("Play = %+v", play)
	}
}

func TestUnmarshal_AllVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"stop", `{"command":"Stop","payload":{"pad_id":1}}`, "Stop"},
		{"load", `{"command":"Load","payload":{"pad_id":1,"file_path":"a.wav"}}`, "Load"},
		{"set master volume", `{"command":"SetMasterVolume","payload":{"volume":0.5}}`, "SetMasterVolume"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd, err := Unmarshal([]byte(tt.raw))
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if cmd.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", cmd.Name(), tt.want)
			}
		})
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"not json", `pad one please`, ErrMalformedCommand},
		{"bad payload", `{"command":"Play","payload":{"pad_id":"NaN"}}`, ErrMalformedCommand},
		{"unknown variant", `{"command":"Reverse","payload":{}}`, ErrUnknownCommand},
		{"empty", ``, ErrMalformedCommand},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Unmarshal([]byte(tt.raw))
			if !errors.Is(err, tt.want) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	in := Play{PadID: 2, FilePath: "snare.wav", Volume: 1.0, Pan: 0.25}

	raw, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	out, err := Unmarshal(raw)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
