package domain

import "regexp"

var (
	kebabCaseExpr = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	semVerExpr    = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*)?$`)
)

// IsKebabCase reports whether value is a lowercase kebab-case token
// (letters and digits, segments separated by single hyphens, starting
// with a letter).
func IsKebabCase(value string) bool {
	return kebabCaseExpr.MatchString(value)
}

// KebabCasePattern returns the pattern kebab-case tokens are matched
// against, for use in diagnostics.
func KebabCasePattern() string {
	return kebabCaseExpr.String()
}

// IsSemVer reports whether value is a MAJOR.MINOR.PATCH semantic
// version, with an optional -prerelease suffix. Build metadata is not
// part of the accepted grammar.
func IsSemVer(value string) bool {
	return semVerExpr.MatchString(value)
}
