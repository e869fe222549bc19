package utils

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDashesToCamelCaseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	dashed := gen.SliceOf(gen.AlphaString()).Map(func(parts []string) string {
		return strings.Join(parts, "-")
	})

	properties.Property("output never contains a dash", prop.ForAll(
		func(s string) bool {
			return !strings.Contains(DashesToCamelCase(s, true), "-")
		},
		dashed,
	))

	properties.Property("conversion is idempotent", prop.ForAll(
		func(s string) bool {
			once := DashesToCamelCase(s, true)
			return DashesToCamelCase(once, true) == once
		},
		dashed,
	))

	properties.Property("only dashes are removed", prop.ForAll(
		func(s string) bool {
			out := DashesToCamelCase(s, true)
			return strings.EqualFold(out, strings.ReplaceAll(s, "-", ""))
		},
		dashed,
	))

	properties.Property("first rune follows capitalizeFirst", prop.ForAll(
		func(s string) bool {
			upper := DashesToCamelCase(s, true)
			lower := DashesToCamelCase(s, false)
			if upper == "" {
				return lower == ""
			}
			first := []rune(upper)[0]
			if !unicode.IsLetter(first) {
				return true
			}
			return unicode.IsUpper(first) && unicode.IsLower([]rune(lower)[0])
		},
		dashed,
	))

	properties.TestingRun(t)
}
