package codegen

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-config-gen/internal/document"
	"github.com/MKhiriev/go-config-gen/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func mustParse(t *testing.T, s string) *models.Node {
	t.Helper()
	n, err := document.ParseBytes([]byte(s))
	require.NoError(t, err)
	return n
}

// moduleBlock renders a single module and strips one level of indentation so
// expectations can be written flush-left.
func moduleBlock(t *testing.T, opt models.ModuleOption, doc string) string {
	t.Helper()
	out, err := GenerateModule(models.ModuleDocument{Option: opt, Document: mustParse(t, doc)})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimPrefix(l, indentUnit)
	}
	return strings.Join(lines, "\n")
}

const expectedHeader = `// Auto-generated code. Do not modify.
using System;
using Microsoft.Extensions.Configuration;

namespace Acme.Settings;

public static class Config
{
    private static IConfiguration? _instance;
    private static IConfiguration Instance =>
        _instance ?? throw new InvalidOperationException("Configuration has not been initialized.");

    public static void Initialize(IConfiguration config)
    {
        _instance = config;
    }

    private static T GetValue<T>(string key, T defaultValue = default(T)) =>
        Instance.GetValue<T>(key) ?? defaultValue;

    private static T GetSection<T>(string key, T defaultValue = default(T)) =>
        Instance.GetSection(key).Get<T>() ?? defaultValue;

`

// ── Generate ─────────────────────────────────────────────────────────────────

func TestGenerate_EndToEnd(t *testing.T) {
	root := mustParse(t, `{"Module":{"Port":8080,"Hosts":["a","b"]}}`)
	doc, ok := root.Field("Module")
	require.True(t, ok)

	got, err := Generate("Acme.Settings", []models.ModuleDocument{
		{Option: models.NewModuleOption("Module"), Document: doc},
	})
	require.NoError(t, err)

	want := expectedHeader + `    public const string ModuleSectionKey = "Module";
    public static class Module<T>
    {
        private static T? _value;
        public static T Get() => _value ??= GetSection<T>(ModuleSectionKey);
    }

    public static class Module
    {
        public const string PortSectionKey = "Module:Port";
        private static int? _port;
        public static int Port => _port ??= GetValue<int>(PortSectionKey);

        public const string HostsSectionKey = "Module:Hosts";
        private static string[]? _hosts;
        public static string[] Hosts => _hosts ??= GetSection<string[]>(HostsSectionKey);
    }
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generated code mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_ModulesInCallerOrderSeparatedByBlankLine(t *testing.T) {
	got, err := Generate("Acme.Settings", []models.ModuleDocument{
		{Option: models.NewModuleOption("Zeta"), Document: mustParse(t, `{}`)},
		{Option: models.NewModuleOption("Alpha"), Document: mustParse(t, `{}`)},
	})
	require.NoError(t, err)

	zeta := strings.Index(got, `ZetaSectionKey = "Zeta"`)
	alpha := strings.Index(got, `AlphaSectionKey = "Alpha"`)
	require.NotEqual(t, -1, zeta)
	require.NotEqual(t, -1, alpha)
	assert.Less(t, zeta, alpha)
	assert.Contains(t, got, "    public static class Zeta\n    {\n    }\n\n    public const string AlphaSectionKey")
	assert.True(t, strings.HasSuffix(got, "    }\n}\n"))
}

func TestGenerate_NoModules(t *testing.T) {
	got, err := Generate("Acme.Settings", nil)
	require.NoError(t, err)
	assert.Equal(t, expectedHeader+"}\n", got)
}

func TestGenerate_InvalidPatternProducesNoOutput(t *testing.T) {
	got, err := Generate("Acme.Settings", []models.ModuleDocument{
		{Option: models.NewModuleOption("Ok"), Document: mustParse(t, `{"A":1}`)},
		{Option: models.ModuleOption{ModuleName: "Bad", IncludePathPatterns: []string{"("}}, Document: mustParse(t, `{}`)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.Empty(t, got)
}

func TestGenerate_UnsupportedKindProducesNoOutput(t *testing.T) {
	doc := models.ObjectNode(models.Field{Key: "Weird", Value: &models.Node{Kind: models.NodeKind(99)}})

	got, err := Generate("Acme.Settings", []models.ModuleDocument{
		{Option: models.NewModuleOption("M"), Document: doc},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedValueKind)
	assert.Contains(t, err.Error(), "M:Weird")
	assert.Empty(t, got)
}

// ── sections ─────────────────────────────────────────────────────────────────

func TestGenerateModule_NestedObjectsKeepDocumentOrder(t *testing.T) {
	got := moduleBlock(t, models.NewModuleOption("M"), `{"A":{"B":1},"C":true}`)

	want := `public const string MSectionKey = "M";
public static class M<T>
{
    private static T? _value;
    public static T Get() => _value ??= GetSection<T>(MSectionKey);
}

public static class M
{
    public const string ASectionKey = "M:A";
    public static class A<T>
    {
        private static T? _value;
        public static T Get() => _value ??= GetSection<T>(ASectionKey);
    }

    public static class A
    {
        public const string BSectionKey = "M:A:B";
        private static int? _b;
        public static int B => _b ??= GetValue<int>(BSectionKey);
    }

    public const string CSectionKey = "M:C";
    private static bool? _c;
    public static bool C => _c ??= GetValue<bool>(CSectionKey);
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generated code mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateModule_ExcludeChildrenKeepsGenericAccessor(t *testing.T) {
	opt := models.ModuleOption{
		ModuleName:                  "M",
		ExcludeChildrenPathPatterns: []string{"^M:Secret$"},
	}
	got := moduleBlock(t, opt, `{"Secret":{"Password":"x","Nested":{"K":1}},"Open":1}`)

	assert.Contains(t, got, `    public const string SecretSectionKey = "M:Secret";`)
	assert.Contains(t, got, "    public static class Secret<T>")
	assert.NotContains(t, got, "public static class Secret\n")
	assert.NotContains(t, got, "Password")
	assert.NotContains(t, got, "Nested")
	assert.Contains(t, got, `OpenSectionKey = "M:Open"`)
}

func TestGenerateModule_ExcludeChildrenOnModuleRoot(t *testing.T) {
	opt := models.ModuleOption{ModuleName: "M", ExcludeChildrenPathPatterns: []string{"^M$"}}
	got := moduleBlock(t, opt, `{"A":1}`)

	assert.Equal(t, `public const string MSectionKey = "M";
public static class M<T>
{
    private static T? _value;
    public static T Get() => _value ??= GetSection<T>(MSectionKey);
}
`, got)
}

func TestGenerateModule_AllChildrenFilteredStillEmitsClass(t *testing.T) {
	opt := models.ModuleOption{ModuleName: "M", IncludePathPatterns: []string{}}
	got := moduleBlock(t, opt, `{"A":1,"B":{"C":2}}`)

	assert.True(t, strings.HasSuffix(got, "public static class M\n{\n}\n"), got)
	assert.NotContains(t, got, "M:A")
}

func TestGenerateModule_IncludeAndExclude(t *testing.T) {
	opt := models.ModuleOption{
		ModuleName:          "Global",
		IncludePathPatterns: []string{"AppSettings", "DomainService(:Orders|$)"},
		ExcludePathPatterns: []string{"Debug"},
	}
	got := moduleBlock(t, opt, `{
		"AppSettings": {"Name": "shop", "Debug": true},
		"DomainService": {"Orders": "http://orders", "Billing": "http://billing"},
		"Logging": {"Level": "Info"}
	}`)

	assert.Contains(t, got, `"Global:AppSettings:Name"`)
	assert.NotContains(t, got, "Global:AppSettings:Debug")
	assert.Contains(t, got, `"Global:DomainService"`)
	assert.Contains(t, got, `"Global:DomainService:Orders"`)
	assert.NotContains(t, got, "Billing")
	assert.NotContains(t, got, "Logging")
}

func TestGenerateModule_NoBlankLineArtifacts(t *testing.T) {
	opt := models.ModuleOption{ModuleName: "M", ExcludePathPatterns: []string{"Skip"}}
	got := moduleBlock(t, opt, `{"Skip1":1,"A":1,"Skip2":2,"B":2,"Skip3":3}`)

	assert.NotContains(t, got, "\n\n\n")
	assert.Contains(t, got, "public static class M\n{\n    public const string ASectionKey")
	assert.Contains(t, got, "GetValue<int>(BSectionKey);\n}\n")
}

// ── members ──────────────────────────────────────────────────────────────────

func TestGenerateModule_ArrayTypes(t *testing.T) {
	got := moduleBlock(t, models.NewModuleOption("M"),
		`{"Nums":[1,2,3],"Big":[2147483648],"Rates":[1.5],"Flags":[true]}`)

	assert.Contains(t, got, "    public static int[] Nums => _nums ??= GetSection<int[]>(NumsSectionKey);")
	assert.Contains(t, got, "    private static long[]? _big;")
	assert.Contains(t, got, "    public static decimal[] Rates => _rates ??= GetSection<decimal[]>(RatesSectionKey);")
	assert.Contains(t, got, "    public static bool[] Flags => _flags ??= GetSection<bool[]>(FlagsSectionKey);")
}

func TestGenerateModule_UntypedArraysGetGenericAccessorOnly(t *testing.T) {
	got := moduleBlock(t, models.NewModuleOption("M"),
		`{"Empty":[],"Items":[{"Id":1}],"Matrix":[[1]],"Holes":[null,1]}`)

	for _, name := range []string{"Empty", "Items", "Matrix", "Holes"} {
		assert.Contains(t, got, "    public static class "+name+"<T>\n")
		assert.NotContains(t, got, "public static class "+name+"\n")
		assert.NotContains(t, got, name+" =>")
	}
	assert.NotContains(t, got, "Id")
}

func TestGenerateModule_NullChildGetsGenericAccessorOnly(t *testing.T) {
	got := moduleBlock(t, models.NewModuleOption("M"), `{"Nothing":null}`)

	assert.Contains(t, got, `    public const string NothingSectionKey = "M:Nothing";`)
	assert.Contains(t, got, "    public static class Nothing<T>\n")
	assert.NotContains(t, got, "public static class Nothing\n")
}

func TestGenerateModule_MissingDocumentGetsGenericAccessorOnly(t *testing.T) {
	out, err := GenerateModule(models.ModuleDocument{Option: models.NewModuleOption("M")})
	require.NoError(t, err)

	assert.Contains(t, out, `public const string MSectionKey = "M";`)
	assert.NotContains(t, out, "public static class M\n")
}

func TestGenerateModule_NormalizesIdentifiersButKeepsRawPaths(t *testing.T) {
	got := moduleBlock(t, models.NewModuleOption("M"), `{"max-conn.count":5,"2fa":{"enabled":false}}`)

	assert.Contains(t, got, `    public const string max_conn_countSectionKey = "M:max-conn.count";`)
	assert.Contains(t, got, "    private static int? _max_conn_count;")
	assert.Contains(t, got, `    public const string _2faSectionKey = "M:2fa";`)
	assert.Contains(t, got, "    public static class _2fa\n")
	assert.Contains(t, got, `        public const string enabledSectionKey = "M:2fa:enabled";`)
	assert.Contains(t, got, "        private static bool? _enabled;")
}

func TestGenerateModule_EscapesPathLiterals(t *testing.T) {
	got := moduleBlock(t, models.NewModuleOption("M"), `{"say \"hi\"\\":"x"}`)
	assert.Contains(t, got, `= "M:say \"hi\"\\";`)
}

func TestGenerateModule_ModuleNameWithColonUsesLastSegment(t *testing.T) {
	got := moduleBlock(t, models.NewModuleOption("Shop:Orders"), `{"Port":1}`)

	assert.Contains(t, got, `public const string OrdersSectionKey = "Shop:Orders";`)
	assert.Contains(t, got, `PortSectionKey = "Shop:Orders:Port"`)
}

func TestGenerateModule_CollidingIdentifiersAreEmittedAsIs(t *testing.T) {
	got := moduleBlock(t, models.NewModuleOption("M"), `{"foo-bar":1,"foo.bar":2}`)
	assert.Equal(t, 2, strings.Count(got, "public static int foo_bar =>"))
}

func TestGenerateModule_Deterministic(t *testing.T) {
	doc := `{"B":{"X":[1]},"A":"s","C":{"D":{"E":1.25}}}`
	first := moduleBlock(t, models.NewModuleOption("M"), doc)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, moduleBlock(t, models.NewModuleOption("M"), doc))
	}
}
