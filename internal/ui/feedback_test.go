package ui

import "testing"

func TestNoticesExpire(t *testing.T) {
	fm := NewFeedbackManager(nil)
	fm.OnInfo("first")
	fm.OnError("second")

	for i := 0; i < infoTicks; i++ {
		fm.Update()
	}
	if len(fm.notices) != 1 || fm.notices[0].message != "second" {
		t.Fatalf("after %d ticks: %+v", infoTicks, fm.notices)
	}
	for i := infoTicks; i < errorTicks; i++ {
		fm.Update()
	}
	if len(fm.notices) != 0 {
		t.Errorf("notices left: %d", len(fm.notices))
	}
}

func TestNoticeStackLimit(t *testing.T) {
	fm := NewFeedbackManager(nil)
	for _, m := range []string{"a", "b", "c", "d", "e"} {
		fm.OnInfo(m)
	}
	if len(fm.notices) != maxNotices {
		t.Fatalf("notices = %d, want %d", len(fm.notices), maxNotices)
	}
	if fm.notices[0].message != "c" {
		t.Errorf("oldest kept = %q, want c", fm.notices[0].message)
	}
}

func TestNoticeFade(t *testing.T) {
	n := &notice{ticks: 100, total: 100}
	if a := n.alpha(); a != 0 {
		t.Errorf("fresh alpha = %v", a)
	}
	n.ticks = 50
	if a := n.alpha(); a != 1 {
		t.Errorf("mid alpha = %v", a)
	}
	n.ticks = fadeTicks / 2
	if a := n.alpha(); a != 0.5 {
		t.Errorf("closing alpha = %v", a)
	}
}

func TestSynthesizeLength(t *testing.T) {
	tones := soundBank[SoundCastle]
	pcm := synthesize(tones)
	want := 0
	for _, tn := range tones {
		want += (int(sampleRate*tn.gap) + int(sampleRate*tn.seconds)) * 4
	}
	if len(pcm) != want || want == 0 {
		t.Errorf("castle pcm = %d bytes, want %d", len(pcm), want)
	}
}
