package judge

import (
	"testing"

	"github.com/debateclub/arena/internal/domain/entities"
)

func TestHeuristicScore_MinimalMessage(t *testing.T) {
	score := HeuristicScore("Hi.", "AI", entities.DefaultRules())

	if score.ArgumentQuality != 0 {
		t.Fatalf("argument quality = %f", score.ArgumentQuality)
	}
	if score.Relevance != 1 {
		t.Fatalf("relevance = %f", score.Relevance)
	}
	if score.Evidence != 0 {
		t.Fatalf("evidence = %f", score.Evidence)
	}
	if score.Clarity != 1 { // within limit, single sentence
		t.Fatalf("clarity = %f", score.Clarity)
	}
	if score.Total != 2 {
		t.Fatalf("total = %f", score.Total)
	}
}

func TestHeuristicScore_RelevanceUpgrade(t *testing.T) {
	topic := "nuclear energy"

	score := HeuristicScore("Nuclear energy is the answer.", topic, entities.DefaultRules())
	if score.Relevance != 2 {
		t.Fatalf("relevance = %f, want 2", score.Relevance)
	}

	score = HeuristicScore("Wind turbines are cheap.", topic, entities.DefaultRules())
	if score.Relevance != 1 {
		t.Fatalf("off-topic relevance = %f, want 1", score.Relevance)
	}
}

func TestHeuristicScore_PersonalAttackFloorsAtZero(t *testing.T) {
	score := HeuristicScore("You are stupid because reasons.", "remote work", entities.DefaultRules())
	if score.ArgumentQuality != 0 {
		t.Fatalf("argument quality = %f, want 0", score.ArgumentQuality)
	}

	// With the rule off the attack goes unpunished
	rules := entities.DefaultRules()
	rules.NoPersonalAttacks = false
	score = HeuristicScore("You are stupid because reasons.", "remote work", rules)
	if score.ArgumentQuality != 1 { // "because" connective
		t.Fatalf("argument quality = %f, want 1", score.ArgumentQuality)
	}
}

func TestHeuristicScore_VagueCitationPenalty(t *testing.T) {
	rules := entities.DefaultRules()

	score := HeuristicScore("A study showed major benefits.", "AI", rules)
	if score.Evidence != 0 {
		t.Fatalf("vague claim evidence = %f, want 0", score.Evidence)
	}

	score = HeuristicScore("A study from Harvard University showed major benefits.", "AI", rules)
	if score.Evidence != 1 {
		t.Fatalf("named source evidence = %f, want 1", score.Evidence)
	}

	rules.NoFakeCitations = false
	score = HeuristicScore("A study showed major benefits.", "AI", rules)
	if score.Evidence != 1 {
		t.Fatalf("evidence with rule off = %f, want 1", score.Evidence)
	}
}

func TestHeuristicScore_Deterministic(t *testing.T) {
	content := "Research shows remote work increases productivity because commutes disappear. For example, several firms report shorter meetings. Therefore the shift is durable."
	topic := "remote work"

	a := HeuristicScore(content, topic, entities.DefaultRules())
	b := HeuristicScore(content, topic, entities.DefaultRules())
	if a != b {
		t.Fatalf("scores diverged: %+v vs %+v", a, b)
	}
	if a.Total != a.ArgumentQuality+a.Relevance+a.Evidence+a.Clarity {
		t.Fatalf("total %f does not match sub-scores", a.Total)
	}
	if a.Rationale == "" {
		t.Fatal("missing rationale")
	}
}
