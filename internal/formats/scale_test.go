package formats_test

import (
	"math"
	"testing"

	"github.com/lingua-prep/linguaprep-backend/internal/formats"
	"github.com/lingua-prep/linguaprep-backend/internal/formats/ielts"
	"github.com/lingua-prep/linguaprep-backend/internal/formats/toefl"
	"github.com/lingua-prep/linguaprep-backend/internal/formats/yds"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRegisteredProfilesValidate(t *testing.T) {
	codes := formats.Codes()
	want := map[string]bool{"ielts": true, "toefl": true, "yds": true}
	for _, c := range codes {
		delete(want, c)
		p, ok := formats.Lookup(c)
		if !ok {
			t.Fatalf("Lookup(%q) failed", c)
		}
		if err := formats.Validate(p); err != nil {
			t.Errorf("profile %s invalid: %v", c, err)
		}
	}
	if len(want) != 0 {
		t.Fatalf("missing registered profiles: %v", want)
	}
}

func TestRoundScoreHalfUp(t *testing.T) {
	ie := ielts.Profile()
	cases := []struct{ in, want float64 }{
		{6.24, 6.0},
		{6.25, 6.5},
		{6.74, 6.5},
		{6.75, 7.0},
		{0, 0},
	}
	for _, c := range cases {
		if got := ie.RoundScore(c.in); !almostEqual(got, c.want) {
			t.Errorf("ielts RoundScore(%v) = %v, want %v", c.in, got, c.want)
		}
	}
	yd := yds.Profile()
	if got := yd.RoundScore(68.5); !almostEqual(got, 69) {
		t.Errorf("yds RoundScore(68.5) = %v, want 69", got)
	}
}

func TestIELTSBandTable(t *testing.T) {
	p := ielts.Profile()
	cases := []struct {
		correct, total float64
		want           float64
	}{
		{40, 40, 9.0},
		{39, 40, 9.0},  // 97.5%
		{35, 40, 8.5},  // 87.5%
		{24, 40, 6.0},  // 60%
		{23, 40, 5.5},  // 57.5%
		{1, 40, 2.5},   // bottom band, never below floor
		{0, 40, 2.5},   // 0% still lands on the table's last step
	}
	for _, c := range cases {
		if got := p.ToScale("reading", c.correct, c.total); !almostEqual(got, c.want) {
			t.Errorf("ToScale(reading, %v/%v) = %v, want %v", c.correct, c.total, got, c.want)
		}
	}
	if got := p.ToScale("reading", 5, 0); !almostEqual(got, 0) {
		t.Errorf("ToScale with zero total = %v, want scale floor", got)
	}
	// Table output is always a multiple of the 0.5 increment.
	for i := 0.0; i <= 40; i++ {
		got := p.ToScale("listening", i, 40)
		if r := math.Mod(got*2, 1); !almostEqual(r, 0) {
			t.Errorf("ToScale(listening, %v/40) = %v, not a half-band multiple", i, got)
		}
	}
}

func TestTOEFLSectionTable(t *testing.T) {
	p := toefl.Profile()
	cases := []struct {
		correct, total float64
		want           float64
	}{
		{20, 20, 30},
		{19, 20, 30}, // 95%
		{15, 20, 25}, // 75%
		{10, 20, 17}, // 50%
		{2, 20, 5},   // 10% floors at the last step
	}
	for _, c := range cases {
		if got := p.ToScale("reading", c.correct, c.total); !almostEqual(got, c.want) {
			t.Errorf("ToScale(reading, %v/%v) = %v, want %v", c.correct, c.total, got, c.want)
		}
	}
}

func TestYDSLinearConversion(t *testing.T) {
	p := yds.Profile()
	if got := p.ToScale("grammar", 17, 20); !almostEqual(got, 85) {
		t.Errorf("ToScale(grammar, 17/20) = %v, want 85", got)
	}
	if got := p.ToScale("reading", 20, 20); !almostEqual(got, 100) {
		t.Errorf("ToScale(reading, 20/20) = %v, want 100", got)
	}
}

func TestOverallMean(t *testing.T) {
	p := ielts.Profile()
	got := p.OverallScore(map[string]float64{
		"reading": 6.5, "listening": 6.5, "writing": 6.0, "speaking": 7.0,
	})
	if !almostEqual(got, 6.5) {
		t.Errorf("ielts overall = %v, want 6.5", got)
	}
	// Skills without data are excluded from the mean.
	got = p.OverallScore(map[string]float64{"reading": 7.0})
	if !almostEqual(got, 7.0) {
		t.Errorf("ielts overall single skill = %v, want 7.0", got)
	}
}

func TestOverallSumCapped(t *testing.T) {
	p := toefl.Profile()
	got := p.OverallScore(map[string]float64{
		"reading": 28, "listening": 27, "speaking": 24, "writing": 25,
	})
	if !almostEqual(got, 104) {
		t.Errorf("toefl overall = %v, want 104", got)
	}
	got = p.OverallScore(map[string]float64{
		"reading": 30, "listening": 30, "speaking": 30, "writing": 30,
	})
	if !almostEqual(got, 120) {
		t.Errorf("toefl overall maxed = %v, want 120", got)
	}
}

func TestOverallWeighted(t *testing.T) {
	p := yds.Profile()
	got := p.OverallScore(map[string]float64{
		"reading": 80, "listening": 60, "grammar": 70, "vocabulary": 50,
	})
	if !almostEqual(got, 69) {
		t.Errorf("yds overall = %v, want 69", got)
	}
	// Missing skills renormalize by the weights present.
	got = p.OverallScore(map[string]float64{"reading": 80})
	if !almostEqual(got, 80) {
		t.Errorf("yds overall single skill = %v, want 80", got)
	}
	if got := p.OverallScore(nil); !almostEqual(got, 0) {
		t.Errorf("yds overall empty = %v, want scale floor", got)
	}
}

func TestBandFeedback(t *testing.T) {
	p := ielts.Profile()
	fb, sugg := p.BandFeedback("writing", 7.5, 9) // 0.833 → top band
	if fb == "" || sugg == "" {
		t.Fatalf("expected top-band feedback and suggestion, got %q / %q", fb, sugg)
	}
	lowFb, lowSugg := p.BandFeedback("writing", 3.0, 9)
	if lowFb == fb {
		t.Errorf("low score reused top-band feedback %q", lowFb)
	}
	if lowSugg == sugg {
		t.Errorf("low score reused top-band suggestion %q", lowSugg)
	}
}
