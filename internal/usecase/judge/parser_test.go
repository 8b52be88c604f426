package judge

import "testing"

func TestParseScore_PlainJSON(t *testing.T) {
	p := NewParser()
	score, err := p.ParseScore(`{"argumentQuality": 3, "relevance": 2, "evidence": 1, "clarity": 2, "rationale": "solid reasoning"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if score.Total != 8 {
		t.Fatalf("total = %f, want 8", score.Total)
	}
	if score.ArgumentQuality != 3 || score.Relevance != 2 || score.Evidence != 1 || score.Clarity != 2 {
		t.Fatalf("unexpected sub-scores: %+v", score)
	}
	if score.Rationale != "solid reasoning" {
		t.Fatalf("rationale = %q", score.Rationale)
	}
}

func TestParseScore_MarkdownFence(t *testing.T) {
	p := NewParser()
	raw := "```json\n{\"argumentQuality\": 2, \"relevance\": 1, \"evidence\": 0, \"clarity\": 1, \"rationale\": \"ok\"}\n```"
	score, err := p.ParseScore(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if score.Total != 4 {
		t.Fatalf("total = %f, want 4", score.Total)
	}
}

func TestParseScore_ProseWrapped(t *testing.T) {
	p := NewParser()
	raw := `Here is my verdict: {"argumentQuality": 4, "relevance": 2, "evidence": 2, "clarity": 2, "rationale": "excellent"} I hope that helps.`
	score, err := p.ParseScore(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if score.Total != 10 {
		t.Fatalf("total = %f, want 10", score.Total)
	}
}

func TestParseScore_TotalRecomputedAndClamped(t *testing.T) {
	p := NewParser()
	// The model's own arithmetic is never trusted
	score, err := p.ParseScore(`{"argumentQuality": 5, "relevance": 3, "evidence": 3, "clarity": 3, "rationale": "generous"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if score.Total != 10 {
		t.Fatalf("total = %f, want clamped 10", score.Total)
	}
}

func TestParseScore_EmptyRationaleDefaults(t *testing.T) {
	p := NewParser()
	score, err := p.ParseScore(`{"argumentQuality": 1, "relevance": 1, "evidence": 1, "clarity": 1}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if score.Rationale != "AI judge score" {
		t.Fatalf("rationale = %q", score.Rationale)
	}
}

func TestParseScore_Failures(t *testing.T) {
	p := NewParser()
	cases := []struct {
		name string
		raw  string
	}{
		{"no json", "the message was quite good"},
		{"invalid json", `{"argumentQuality": }`},
		{"missing sub-score", `{"argumentQuality": 2, "relevance": 1, "clarity": 1, "rationale": "x"}`},
		{"empty", ""},
	}
	for _, tc := range cases {
		if _, err := p.ParseScore(tc.raw); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
