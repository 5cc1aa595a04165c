package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarshitR2004/GenCoder/internal/analyzer"
	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/types"
)

const (
	pyArray   = "def solution(nums):\n    return sum(nums)"
	javaArray = "public int solution(int[] nums) {\n    return 0;\n}"
	javaStr   = "public String solution(String word) {\n    return word;\n}"
	cppArray  = "int solution(vector<int>& nums) {\n    return 0;\n}"
)

func kinds(s []types.Suggestion) []string {
	out := make([]string, len(s))
	for i, sg := range s {
		out[i] = sg.Kind
	}
	return out
}

func advise(b analyzer.Bundle) QualityReport {
	return Advise(analyzer.New().Analyze(b), b)
}

func TestLevelFromScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, LevelExcellent},
		{90, LevelExcellent},
		{89.99, LevelGood},
		{75, LevelGood},
		{74.5, LevelFair},
		{60, LevelFair},
		{59.9, LevelPoor},
		{0, LevelPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromScore(tt.score), "score %v", tt.score)
		assert.NotEmpty(t, DescribeLevel(tt.want))
	}
}

func TestAdviseCompleteConsistentBundle(t *testing.T) {
	r := advise(analyzer.Bundle{"python": pyArray, "java": javaArray, "cpp": cppArray})

	assert.Empty(t, r.Suggestions)
	assert.InDelta(t, 95.0, r.Score, 1e-9)
	assert.Equal(t, LevelExcellent, r.Level)
	assert.Equal(t, DescribeLevel(LevelExcellent), r.Description)
}

func TestAdviseEmptyBundle(t *testing.T) {
	r := advise(analyzer.Bundle{})

	assert.Equal(t, []string{types.KindLowConfidence, types.KindMissingLanguages}, kinds(r.Suggestions))
	assert.Equal(t, []string{"python", "java", "cpp"}, r.Suggestions[1].Context["missing_languages"])
	assert.Zero(t, r.Score)
	assert.Equal(t, LevelPoor, r.Level)
}

func TestAdviseSuggestionOrder(t *testing.T) {
	b := analyzer.Bundle{"python": pyArray, "java": javaStr, "cpp": "  "}
	r := advise(b)

	require.Equal(t, []string{
		types.KindLowConfidence,
		types.KindInconsistentSignatures,
		types.KindMinimalCode,
	}, kinds(r.Suggestions))

	assert.Equal(t, types.SeverityWarning, r.Suggestions[0].Severity)
	assert.Equal(t, types.SeverityError, r.Suggestions[1].Severity)
	assert.Equal(t, []string{"function_only_array", "function_only_string"}, r.Suggestions[1].Context["detected_types"])
	assert.Equal(t, "cpp", r.Suggestions[2].Context["language"])
	assert.Equal(t, 0, r.Suggestions[2].Context["length"])
}

func TestAdviseMinimalCodePerLanguage(t *testing.T) {
	b := analyzer.Bundle{"python": "def solution(x):", "java": "", "cpp": cppArray}
	r := advise(b)

	var langs []string
	for _, s := range r.Suggestions {
		if s.Kind == types.KindMinimalCode {
			langs = append(langs, s.Context["language"].(string))
		}
	}
	assert.Equal(t, []string{"python", "java"}, langs)
}

func TestAdviseInconsistencyCostsAtLeastTwenty(t *testing.T) {
	consistent := advise(analyzer.Bundle{"python": pyArray, "java": javaArray})
	inconsistent := advise(analyzer.Bundle{"python": pyArray, "java": javaStr})

	assert.InDelta(t, 82.5, consistent.Score, 1e-9)
	assert.InDelta(t, 12.5, inconsistent.Score, 1e-9)
	assert.GreaterOrEqual(t, consistent.Score-inconsistent.Score, ErrorPenalty)
}

func TestAdviseScoreIsClamped(t *testing.T) {
	a := analyzer.Analysis{Type: catalog.FunctionOnlyInt, Confidence: 1, LanguagesAnalyzed: 3}
	b := analyzer.Bundle{"python": "def solution(a, b): pass", "java": "int solution(int a, int b) {}", "cpp": "int solution(int a, int b) {}"}
	r := Advise(a, b)
	assert.Equal(t, 100.0, r.Score)

	r = Advise(analyzer.Analysis{}, analyzer.Bundle{"ruby": "x"})
	assert.Equal(t, 0.0, r.Score)
}
