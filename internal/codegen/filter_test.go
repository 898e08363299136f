package codegen

import (
	"testing"

	"github.com/MKhiriev/go-config-gen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── PatternSet ───────────────────────────────────────────────────────────────

func TestCompilePatterns_NilStaysUnconfigured(t *testing.T) {
	set, err := CompilePatterns(nil)
	require.NoError(t, err)

	_, configured := set.MatchesAny("M:Key")
	assert.False(t, configured)
}

func TestCompilePatterns_EmptyIsConfigured(t *testing.T) {
	set, err := CompilePatterns([]string{})
	require.NoError(t, err)

	matched, configured := set.MatchesAny("M:Key")
	assert.True(t, configured)
	assert.False(t, matched)
}

func TestCompilePatterns_InvalidExpression(t *testing.T) {
	_, err := CompilePatterns([]string{"ok", "(unclosed"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.Contains(t, err.Error(), "(unclosed")
}

func TestPatternSet_MatchesAny(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{name: "substring match", patterns: []string{"Section"}, path: "M:Section:Key", want: true},
		{name: "unanchored regex", patterns: []string{`Key\d`}, path: "M:Key7:Child", want: true},
		{name: "anchored miss", patterns: []string{"^Section"}, path: "M:Section", want: false},
		{name: "end anchor", patterns: []string{"DomainService(:Orders|$)"}, path: "Global:DomainService", want: true},
		{name: "end anchor other module", patterns: []string{"DomainService(:Orders|$)"}, path: "Global:DomainService:Billing", want: false},
		{name: "case sensitive", patterns: []string{"section"}, path: "M:Section", want: false},
		{name: "second pattern wins", patterns: []string{"nope", "Sec"}, path: "M:Section", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := CompilePatterns(tt.patterns)
			require.NoError(t, err)

			matched, configured := set.MatchesAny(tt.path)
			assert.True(t, configured)
			assert.Equal(t, tt.want, matched)
		})
	}
}

// ── Rules ────────────────────────────────────────────────────────────────────

func TestRules_Allows(t *testing.T) {
	const path = "M:Section:Key"

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    bool
	}{
		{name: "no rules", want: true},
		{name: "include matches", include: []string{"Section"}, want: true},
		{name: "include misses", include: []string{"Other"}, want: false},
		{name: "include empty", include: []string{}, want: false},
		{name: "exclude matches", exclude: []string{"Key$"}, want: false},
		{name: "exclude misses", exclude: []string{"Other"}, want: true},
		{name: "exclude empty", exclude: []string{}, want: true},
		{name: "exclude beats include", include: []string{"Section"}, exclude: []string{"Key"}, want: false},
		{name: "include miss and exclude miss", include: []string{"Other"}, exclude: []string{"Other"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := CompileRules(models.ModuleOption{
				ModuleName:          "M",
				IncludePathPatterns: tt.include,
				ExcludePathPatterns: tt.exclude,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, rules.Allows(path))
		})
	}
}

// TestRules_Allows_Property checks the emission law against every
// combination of configured/unconfigured and matching/non-matching rules.
func TestRules_Allows_Property(t *testing.T) {
	const path = "Mod:A:B"
	variants := map[string][]string{
		"unset": nil,
		"match": {"A:B"},
		"miss":  {"Z"},
	}

	for incName, inc := range variants {
		for excName, exc := range variants {
			rules, err := CompileRules(models.ModuleOption{
				ModuleName:          "Mod",
				IncludePathPatterns: inc,
				ExcludePathPatterns: exc,
			})
			require.NoError(t, err)

			want := (inc == nil || incName == "match") && (exc == nil || excName != "match")
			assert.Equal(t, want, rules.Allows(path), "include=%s exclude=%s", incName, excName)
		}
	}
}

func TestRules_SkipsChildren(t *testing.T) {
	rules, err := CompileRules(models.ModuleOption{
		ModuleName:                  "M",
		ExcludeChildrenPathPatterns: []string{"^M:Secret$"},
	})
	require.NoError(t, err)

	assert.True(t, rules.SkipsChildren("M:Secret"))
	assert.False(t, rules.SkipsChildren("M:Secrets"))
	assert.False(t, rules.SkipsChildren("M"))
}

func TestRules_SkipsChildren_Unconfigured(t *testing.T) {
	rules, err := CompileRules(models.NewModuleOption("M"))
	require.NoError(t, err)
	assert.False(t, rules.SkipsChildren("M"))
}

func TestCompileRules_ReportsListAndModule(t *testing.T) {
	_, err := CompileRules(models.ModuleOption{
		ModuleName:          "Orders",
		ExcludePathPatterns: []string{"[a-"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.Contains(t, err.Error(), "module Orders exclude")
}
