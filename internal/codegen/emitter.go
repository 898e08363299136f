package codegen

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-config-gen/models"
)

const indentUnit = "    "

var csharpStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Generate renders the complete source file for modules, in the given order,
// inside namespace. Each module is emitted rooted at its module name with its
// own filter rules.
//
// Nothing is returned unless every module renders successfully.
func Generate(namespace string, modules []models.ModuleDocument) (string, error) {
	blocks := make([]string, 0, len(modules))
	for _, m := range modules {
		block, err := GenerateModule(m)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}

	return header(namespace) + strings.Join(blocks, "\n") + "}\n", nil
}

// GenerateModule renders the block of a single module at the nesting level of
// the outer Config class.
func GenerateModule(m models.ModuleDocument) (string, error) {
	rules, err := CompileRules(m.Option)
	if err != nil {
		return "", err
	}

	path := m.Option.ModuleName
	block, err := emitSection(rules, path, lastSegment(path), m.Document, 1)
	if err != nil {
		return "", fmt.Errorf("module %s: %w", m.Option.ModuleName, err)
	}
	return block, nil
}

func header(namespace string) string {
	return "// Auto-generated code. Do not modify.\n" +
		"using System;\n" +
		"using Microsoft.Extensions.Configuration;\n" +
		"\n" +
		"namespace " + namespace + ";\n" +
		"\n" +
		"public static class Config\n" +
		"{\n" +
		code(1,
			"private static IConfiguration? _instance;",
			"private static IConfiguration Instance =>",
			indentUnit+`_instance ?? throw new InvalidOperationException("Configuration has not been initialized.");`,
			"",
			"public static void Initialize(IConfiguration config)",
			"{",
			indentUnit+"_instance = config;",
			"}",
			"",
			"private static T GetValue<T>(string key, T defaultValue = default(T)) =>",
			indentUnit+"Instance.GetValue<T>(key) ?? defaultValue;",
			"",
			"private static T GetSection<T>(string key, T defaultValue = default(T)) =>",
			indentUnit+"Instance.GetSection(key).Get<T>() ?? defaultValue;",
			"",
		)
}

// emitSection renders the generic accessor of path and, when node is an
// object whose children are not excluded, a class holding one member per
// accepted child.
func emitSection(rules Rules, path, key string, node *models.Node, depth int) (string, error) {
	name := NormalizeIdentifier(key)
	generic := genericStanza(path, name, depth)

	if node == nil || node.Kind != models.KindObject || rules.SkipsChildren(path) {
		return generic, nil
	}

	children := make([]string, 0, len(node.Fields))
	for _, field := range node.Fields {
		childPath := path + ":" + field.Key
		if !rules.Allows(childPath) {
			continue
		}

		child, err := emitMember(rules, childPath, field.Key, field.Value, depth+1)
		if err != nil {
			return "", err
		}
		children = append(children, child)
	}

	return generic + "\n" +
		code(depth, "public static class "+name, "{") +
		strings.Join(children, "\n") +
		code(depth, "}"), nil
}

func emitMember(rules Rules, path, key string, node *models.Node, depth int) (string, error) {
	if node == nil {
		return emitSection(rules, path, key, nil, depth)
	}

	switch node.Kind {
	case models.KindArray:
		return emitArray(path, key, node, depth)
	case models.KindBool, models.KindNumber, models.KindString:
		return emitScalar(path, key, node, depth)
	case models.KindObject, models.KindNull:
		return emitSection(rules, path, key, node, depth)
	default:
		return "", fmt.Errorf("%w at %s: %s", ErrUnsupportedValueKind, path, node.Kind)
	}
}

func emitArray(path, key string, node *models.Node, depth int) (string, error) {
	name := NormalizeIdentifier(key)

	itemType, typed, err := InferArrayItemType(node)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if !typed {
		return genericStanza(path, name, depth), nil
	}

	return cachedAccessor(path, name, itemType.ArrayOf(), "GetSection", depth), nil
}

func emitScalar(path, key string, node *models.Node, depth int) (string, error) {
	valueType, err := InferValueType(node)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return cachedAccessor(path, NormalizeIdentifier(key), valueType, "GetValue", depth), nil
}

// cachedAccessor renders a path constant, a nullable cache field and a
// property that reads through lookup on first access only.
func cachedAccessor(path, name string, valueType ValueType, lookup string, depth int) string {
	field := cacheFieldName(name)
	return code(depth,
		fmt.Sprintf("public const string %sSectionKey = %s;", name, quote(path)),
		fmt.Sprintf("private static %s? %s;", valueType, field),
		fmt.Sprintf("public static %s %s => %s ??= %s<%s>(%sSectionKey);",
			valueType, name, field, lookup, valueType, name),
	)
}

func genericStanza(path, name string, depth int) string {
	return code(depth,
		fmt.Sprintf("public const string %sSectionKey = %s;", name, quote(path)),
		fmt.Sprintf("public static class %s<T>", name),
		"{",
		indentUnit+"private static T? _value;",
		indentUnit+fmt.Sprintf("public static T Get() => _value ??= GetSection<T>(%sSectionKey);", name),
		"}",
	)
}

// code indents every line by depth levels and terminates it with a newline.
// Empty lines stay empty.
func code(depth int, lines ...string) string {
	indent := strings.Repeat(indentUnit, depth)

	var b strings.Builder
	for _, l := range lines {
		if l != "" {
			b.WriteString(indent)
			b.WriteString(l)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func quote(s string) string {
	return `"` + csharpStringEscaper.Replace(s) + `"`
}
