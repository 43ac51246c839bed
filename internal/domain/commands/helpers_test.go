//go:build unit

package commands_test

import (
	"regexp"
)

func regexpMust(expr string) *regexp.Regexp {
	return regexp.MustCompile(expr)
}
