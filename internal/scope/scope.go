// Package scope derives the effective build scope of an enhancement run and
// filters the declared dependency set by it.
package scope

import (
	"strings"

	"github.com/opmodel/enhance/internal/project"
)

// Scope is the effective build scope.
type Scope int

const (
	// Standard enhances ordinary compiled classes.
	Standard Scope = iota
	// Test enhances compiled test classes.
	Test
)

// testToken is the directory-name marker of the Test scope.
const testToken = "test-"

// Source records how a scope was derived.
type Source string

const (
	SourceOverride  Source = "override"
	SourceExecution Source = "execution"
)

// String returns "standard" or "test".
func (s Scope) String() string {
	if s == Test {
		return "test"
	}
	return "standard"
}

// Token returns "" for Standard and "test-" for Test.
func (s Scope) Token() string {
	if s == Test {
		return testToken
	}
	return ""
}

// Resolution is the effective scope of a run.
type Resolution struct {
	Scope  Scope
	Source Source
	// Token names the class directories, target/<token>classes.
	Token string
}

// DefaultClassSource returns target/<token>classes.
func (r Resolution) DefaultClassSource() string {
	return "target/" + r.Token + "classes"
}

// Resolve derives the effective scope.
//
// A non-empty override wins verbatim as the token and selects Test only when
// it equals "test-" in any case. Otherwise an execution id containing "test"
// in any case selects Test.
func Resolve(override, executionID string) Resolution {
	if override != "" {
		r := Resolution{Scope: Standard, Source: SourceOverride, Token: override}
		if strings.EqualFold(override, testToken) {
			r.Scope = Test
		}
		return r
	}
	s := Standard
	if strings.Contains(strings.ToLower(executionID), "test") {
		s = Test
	}
	return Resolution{Scope: s, Source: SourceExecution, Token: s.Token()}
}

// FilterResult is the outcome of Filter.
type FilterResult struct {
	// Retained dependencies in declaration order.
	Retained []project.Dependency
	// Skipped dependencies in declaration order.
	Skipped []project.Dependency
}

// Filter selects the dependencies eligible for scope s.
// Test keeps everything; Standard drops test-scoped dependencies.
func Filter(deps []project.Dependency, s Scope) FilterResult {
	res := FilterResult{
		Retained: make([]project.Dependency, 0, len(deps)),
	}
	for _, d := range deps {
		if s == Standard && d.IsTestScoped() {
			res.Skipped = append(res.Skipped, d)
			continue
		}
		res.Retained = append(res.Retained, d)
	}
	return res
}
