package codegen

import (
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-config-gen/models"
)

// PatternSet is an ordered list of compiled path expressions.
// The zero value (nil) means "no rule configured".
type PatternSet []*regexp.Regexp

// CompilePatterns compiles exprs in order. A nil input yields a nil set so
// that an unconfigured rule stays distinguishable from an empty one.
func CompilePatterns(exprs []string) (PatternSet, error) {
	if exprs == nil {
		return nil, nil
	}

	set := make(PatternSet, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, expr, err)
		}
		set = append(set, re)
	}
	return set, nil
}

// MatchesAny reports whether any expression in the set finds a match anywhere
// in path. The second result is false when the set is not configured, in
// which case the first result carries no meaning.
func (s PatternSet) MatchesAny(path string) (matched bool, configured bool) {
	if s == nil {
		return false, false
	}
	for _, re := range s {
		if re.MatchString(path) {
			return true, true
		}
	}
	return false, true
}

// Rules holds the compiled filter rules of one module.
type Rules struct {
	include         PatternSet
	exclude         PatternSet
	excludeChildren PatternSet
}

// CompileRules compiles every pattern list of opt.
func CompileRules(opt models.ModuleOption) (Rules, error) {
	include, err := CompilePatterns(opt.IncludePathPatterns)
	if err != nil {
		return Rules{}, fmt.Errorf("module %s include: %w", opt.ModuleName, err)
	}
	exclude, err := CompilePatterns(opt.ExcludePathPatterns)
	if err != nil {
		return Rules{}, fmt.Errorf("module %s exclude: %w", opt.ModuleName, err)
	}
	excludeChildren, err := CompilePatterns(opt.ExcludeChildrenPathPatterns)
	if err != nil {
		return Rules{}, fmt.Errorf("module %s exclude children: %w", opt.ModuleName, err)
	}

	return Rules{
		include:         include,
		exclude:         exclude,
		excludeChildren: excludeChildren,
	}, nil
}

// Allows reports whether a child at path is emitted:
// (include unset or include matches) and (exclude unset or exclude does not match).
func (r Rules) Allows(path string) bool {
	if matched, configured := r.include.MatchesAny(path); configured && !matched {
		return false
	}
	if matched, configured := r.exclude.MatchesAny(path); configured && matched {
		return false
	}
	return true
}

// SkipsChildren reports whether recursion below the object at path is cut off.
func (r Rules) SkipsChildren(path string) bool {
	matched, _ := r.excludeChildren.MatchesAny(path)
	return matched
}
