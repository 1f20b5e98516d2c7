package audio

import "testing"

// TestSoundTypeValues verifies sound type ordering used to index effect volumes
func TestSoundTypeValues(t *testing.T) {
	if SoundPush != 0 {
		t.Errorf("Expected SoundPush=0, got %d", SoundPush)
	}
	if SoundMatchEnd != soundTypeCount-1 {
		t.Errorf("Expected SoundMatchEnd to be last, got %d of %d", SoundMatchEnd, soundTypeCount)
	}
	if len(soundNames) != int(soundTypeCount) {
		t.Errorf("Expected %d sound names, got %d", soundTypeCount, len(soundNames))
	}
}

// TestParseSoundType verifies config keys round trip
func TestParseSoundType(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		got, ok := ParseSoundType(st.String())
		if !ok || got != st {
			t.Errorf("round trip %d: got %v, %v", st, got, ok)
		}
	}
	if _, ok := ParseSoundType("gong"); ok {
		t.Error("unknown name should not parse")
	}
	if SoundType(42).String() != "unknown" {
		t.Errorf("out of range String = %q", SoundType(42).String())
	}
}
