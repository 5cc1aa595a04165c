package analyzer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/extract"
	"github.com/HarshitR2004/GenCoder/internal/patterns"
)

const (
	pyArray   = "def solution(nums):\n    return sum(nums)"
	pyInt     = "def solution(a, b):\n    return a + b"
	pyString  = "def solution(word):\n    return word.upper()"
	javaArray = "public class Solution {\n    public int solution(int[] nums) {\n        return 0;\n    }\n}"
	javaStr   = "public class Solution {\n    public String solution(String word) {\n        return word;\n    }\n}"
	javaInt   = "public class Solution {\n    public int solution(int a, int b) {\n        return a + b;\n    }\n}"
	cppArray  = "#include <vector>\nusing namespace std;\n\nint solution(vector<int>& nums) {\n    return 0;\n}"
	cppInt    = "int solution(int a, int b) {\n    return a + b;\n}"
)

func TestAnalyzeSingleLanguage(t *testing.T) {
	a := New()

	tests := []struct {
		name   string
		bundle Bundle
		want   catalog.ProblemType
	}{
		{"array", Bundle{"python": pyArray}, catalog.FunctionOnlyArray},
		{"int", Bundle{"python": pyInt}, catalog.FunctionOnlyInt},
		{"string", Bundle{"python": pyString}, catalog.FunctionOnlyString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.bundle)
			assert.Equal(t, tt.want, got.Type)
			assert.Equal(t, 1, got.LanguagesAnalyzed)
			assert.InDelta(t, MaxAgreementConfidence, got.Confidence, 1e-9)

			v := got.Verdicts["python"]
			require.NotNil(t, v.Agreement)
			assert.True(t, *v.Agreement)
			assert.Equal(t, extract.ProvenanceCombined, v.Provenance)
		})
	}
}

func TestAnalyzeAllLanguagesConsistent(t *testing.T) {
	a := New()
	full := a.Analyze(Bundle{"python": pyArray, "java": javaArray, "cpp": cppArray})
	javaOnly := a.Analyze(Bundle{"java": javaArray})

	assert.Equal(t, catalog.FunctionOnlyArray, full.Type)
	assert.Equal(t, 3, full.LanguagesAnalyzed)
	assert.InDelta(t, (0.95+0.8+0.8)/3, full.Confidence, 1e-9)
	assert.Equal(t, Tally{Votes: 3, TotalConfidence: full.Votes[catalog.FunctionOnlyArray].TotalConfidence}, full.Votes[catalog.FunctionOnlyArray])

	assert.Equal(t, catalog.FunctionOnlyArray, javaOnly.Type)
	assert.Greater(t, full.Confidence, javaOnly.Confidence)

	// java has no syntax strategy, so it abstains rather than guessing.
	assert.Nil(t, full.Verdicts["java"].Syntax)
	assert.Nil(t, full.Verdicts["java"].Agreement)
}

func TestAnalyzeEmptyBundle(t *testing.T) {
	for _, b := range []Bundle{nil, {}, {"python": "", "java": "   \n\t"}} {
		got := New().Analyze(b)
		assert.Equal(t, catalog.None, got.Type)
		assert.Zero(t, got.Confidence)
		assert.Zero(t, got.LanguagesAnalyzed)
		assert.Empty(t, got.Verdicts)
	}
}

func TestAnalyzeSkipsBlankSnippetsFromDenominator(t *testing.T) {
	got := New().Analyze(Bundle{"python": pyArray, "java": "  ", "cpp": ""})
	assert.Equal(t, 1, got.LanguagesAnalyzed)
	assert.InDelta(t, 0.95, got.Confidence, 1e-9)
	assert.NotContains(t, got.Verdicts, "java")
}

func TestAnalyzeAbstainingLanguageDilutesConfidence(t *testing.T) {
	got := New().Analyze(Bundle{"java": javaArray, "cpp": "int main() { return 0; }"})
	assert.Equal(t, catalog.FunctionOnlyArray, got.Type)
	assert.Equal(t, 2, got.LanguagesAnalyzed)
	assert.InDelta(t, 0.4, got.Confidence, 1e-9)
	assert.Equal(t, catalog.None, got.Verdicts["cpp"].Type)
}

func TestAnalyzeParseFailureIsIsolated(t *testing.T) {
	got := New().Analyze(Bundle{"python": "def solution(x)\n    return x\n", "java": javaStr})

	py := got.Verdicts["python"]
	require.NotNil(t, py.Syntax)
	assert.False(t, py.Syntax.Detected())
	assert.NotEmpty(t, py.Syntax.Diagnostic)
	// The pattern strategy still reads the header.
	assert.Equal(t, catalog.FunctionOnlyInt, py.Type)
	assert.Equal(t, extract.ProvenancePattern, py.Provenance)

	assert.Equal(t, catalog.FunctionOnlyString, got.Verdicts["java"].Type)
	assert.Equal(t, 2, got.LanguagesAnalyzed)
	assert.Len(t, got.DetectedTypes(), 2)
}

func TestAnalyzeSyntaxWinsOnDisagreement(t *testing.T) {
	// The pattern strategy sees two parameters; the syntax tree drops the
	// receiver and sees a single array.
	src := "class Solution:\n    def solution(self, nums):\n        return nums\n"
	got := New().Analyze(Bundle{"python": src})

	v := got.Verdicts["python"]
	assert.Equal(t, catalog.FunctionOnlyInt, v.Pattern.Type)
	assert.Equal(t, catalog.FunctionOnlyArray, v.Type)
	require.NotNil(t, v.Agreement)
	assert.False(t, *v.Agreement)
	assert.InDelta(t, extract.SyntaxConfidence*DisagreementPenalty, v.Confidence, 1e-9)
}

func TestAnalyzeModernPythonKeepsAgreement(t *testing.T) {
	src := "def solution(word):\n    return f\"{word}!\"\n"
	got := New().Analyze(Bundle{"python": src})

	v := got.Verdicts["python"]
	require.NotNil(t, v.Syntax)
	assert.Empty(t, v.Syntax.Diagnostic)
	assert.Equal(t, catalog.FunctionOnlyString, v.Type)
	assert.Equal(t, extract.ProvenanceCombined, v.Provenance)
	assert.InDelta(t, MaxAgreementConfidence, v.Confidence, 1e-9)
}

type stubStrategy struct {
	name   string
	result extract.Result
	err    error
}

func (s stubStrategy) Name() string { return s.name }

func (s stubStrategy) Extract(string, string) (extract.Result, error) {
	return s.result, s.err
}

func TestAnalyzeLanguageStrategyFailures(t *testing.T) {
	patArray := stubStrategy{
		name:   extract.ProvenancePattern,
		result: extract.Result{Type: catalog.FunctionOnlyArray, Confidence: 0.8, Provenance: extract.ProvenancePattern},
	}
	synString := stubStrategy{
		name:   extract.ProvenanceSyntax,
		result: extract.Result{Type: catalog.FunctionOnlyString, Confidence: extract.SyntaxConfidence, Provenance: extract.ProvenanceSyntax},
	}

	t.Run("syntax failure falls back to pattern", func(t *testing.T) {
		a := New(WithStrategies(patArray, stubStrategy{name: extract.ProvenanceSyntax, err: errors.New("parser crashed")}))
		v, ok := a.AnalyzeLanguage("python", "def solution(nums): pass")
		require.True(t, ok)
		assert.Nil(t, v.Syntax)
		assert.Nil(t, v.Agreement)
		assert.Equal(t, catalog.FunctionOnlyArray, v.Type)
		assert.Equal(t, extract.ProvenancePattern, v.Provenance)
		assert.InDelta(t, 0.8, v.Confidence, 1e-9)
	})

	t.Run("pattern failure keeps syntax", func(t *testing.T) {
		a := New(WithStrategies(stubStrategy{name: extract.ProvenancePattern, err: errors.New("boom")}, synString))
		v, ok := a.AnalyzeLanguage("python", "def solution(word): pass")
		require.True(t, ok)
		assert.Equal(t, catalog.None, v.Pattern.Type)
		assert.Equal(t, "boom", v.Pattern.Diagnostic)
		assert.Equal(t, catalog.FunctionOnlyString, v.Type)
		assert.InDelta(t, extract.SyntaxConfidence, v.Confidence, 1e-9)
	})

	t.Run("parse error downgrades to none", func(t *testing.T) {
		bad := stubStrategy{
			name:   extract.ProvenanceSyntax,
			result: extract.Result{Type: catalog.FunctionOnlyInt, Confidence: 0.9, Provenance: extract.ProvenanceSyntax},
			err:    &extract.ParseError{Language: "python", Message: "invalid syntax"},
		}
		v, ok := New(WithStrategies(patArray, bad)).AnalyzeLanguage("python", "def solution(nums")
		require.True(t, ok)
		require.NotNil(t, v.Syntax)
		assert.False(t, v.Syntax.Detected())
		assert.Zero(t, v.Syntax.Confidence)
		assert.Equal(t, catalog.FunctionOnlyArray, v.Type)
	})
}

func TestAnalyzeWithLibrary(t *testing.T) {
	lib, err := patterns.Load([]byte("version: 1\nlanguages:\n  go:\n    rules:\n      - pattern: 'func\\s+solution\\s*\\(\\s*\\w+\\s+int\\s*\\)'\n        type: function_only_int\n        confidence: 0.5\n"), nil)
	require.NoError(t, err)
	a := New(WithLibrary(lib))

	got := a.Analyze(Bundle{"go": "func solution(a int) int { return a }"})
	assert.Equal(t, catalog.FunctionOnlyInt, got.Type)
	assert.InDelta(t, 0.5, got.Confidence, 1e-9)

	// The custom table has no python entry, so neither strategy fires.
	got = a.Analyze(Bundle{"python": pyArray})
	assert.Equal(t, catalog.None, got.Type)
	assert.Nil(t, got.Verdicts["python"].Syntax)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	b := Bundle{"python": pyInt, "java": javaStr, "cpp": cppArray, "go": "func solution(a int) int"}
	a := New()
	first := a.Analyze(b)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, a.Analyze(b))
	}
}

func TestAnalyzeTieGoesToCatalogOrder(t *testing.T) {
	got := New().Analyze(Bundle{"java": javaStr, "cpp": cppInt})
	assert.Equal(t, catalog.FunctionOnlyInt, got.Type)
	assert.InDelta(t, 0.4, got.Confidence, 1e-9)
	assert.Equal(t, []catalog.ProblemType{catalog.FunctionOnlyInt, catalog.FunctionOnlyString}, got.DetectedTypes())
}

func TestAnalyzeConfidenceBounds(t *testing.T) {
	bundles := []Bundle{
		{"python": pyArray, "java": javaArray, "cpp": cppArray},
		{"python": pyString, "java": javaInt, "cpp": cppArray},
		{"python": "garbage ((("},
		{"ruby": "def solution(a); end"},
	}
	for _, b := range bundles {
		got := New().Analyze(b)
		assert.GreaterOrEqual(t, got.Confidence, 0.0)
		assert.LessOrEqual(t, got.Confidence, 1.0)
	}
}

func TestOrderLanguages(t *testing.T) {
	got := OrderLanguages([]string{"rust", "cpp", "go", "python", "java"})
	assert.Equal(t, []string{"python", "java", "cpp", "go", "rust"}, got)
}

func TestClassify(t *testing.T) {
	pat := func(pt catalog.ProblemType, c float64) extract.Result {
		return extract.Result{Type: pt, Confidence: c, Provenance: extract.ProvenancePattern}
	}
	syn := func(pt catalog.ProblemType, c float64) *extract.Result {
		return &extract.Result{Type: pt, Confidence: c, Provenance: extract.ProvenanceSyntax}
	}

	tests := []struct {
		name      string
		pat       extract.Result
		syn       *extract.Result
		wantType  catalog.ProblemType
		wantConf  float64
		wantAgree *bool
	}{
		{"agreement capped", pat(catalog.FunctionOnlyInt, 0.8), syn(catalog.FunctionOnlyInt, 0.9), catalog.FunctionOnlyInt, 0.95, boolPtr(true)},
		{"agreement below cap", pat(catalog.FunctionOnlyInt, 0.5), syn(catalog.FunctionOnlyInt, 0.6), catalog.FunctionOnlyInt, 0.65, boolPtr(true)},
		{"disagreement", pat(catalog.FunctionOnlyInt, 0.8), syn(catalog.FunctionOnlyString, 0.9), catalog.FunctionOnlyString, 0.72, boolPtr(false)},
		{"pattern only", pat(catalog.FunctionOnlyArray, 0.8), nil, catalog.FunctionOnlyArray, 0.8, nil},
		{"pattern only with empty syntax", pat(catalog.FunctionOnlyArray, 0.8), syn(catalog.None, 0), catalog.FunctionOnlyArray, 0.8, nil},
		{"syntax only", pat(catalog.None, 0), syn(catalog.FunctionOnlyString, 0.9), catalog.FunctionOnlyString, 0.9, nil},
		{"neither", pat(catalog.None, 0), nil, catalog.None, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := classify("python", tt.pat, tt.syn)
			assert.Equal(t, tt.wantType, v.Type)
			assert.InDelta(t, tt.wantConf, v.Confidence, 1e-9)
			assert.Equal(t, tt.wantAgree, v.Agreement)
			assert.LessOrEqual(t, v.Confidence, MaxAgreementConfidence)
		})
	}
}

func boolPtr(b bool) *bool { return &b }
