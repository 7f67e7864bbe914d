package styling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInstruction(t *testing.T) {
	got := buildInstruction("neon cyberpunk theme")

	assert.Contains(t, got, "neon cyberpunk theme")
	assert.Contains(t, got, "Return ONLY CSS code")
	assert.Contains(t, got, "no markdown code fences")
	assert.Contains(t, got, "dramatic and visually obvious")
	for _, target := range []string{"h1", ".card", ".card-header", "select", "textarea", "button", ".plot-frame", "table", ".pagination", ".grid-wrap", ".form-group", ".select-group"} {
		assert.Contains(t, got, target)
	}
}

func TestBuildInstructionDeterministic(t *testing.T) {
	assert.Equal(t, buildInstruction("x"), buildInstruction("x"))
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"css fence pair", "```css\nbody{color:red}\n```", "\nbody{color:red}\n"},
		{"bare fences", "```\nbody{}\n```", "\nbody{}\n"},
		{"no fences", "body{color:red}", "body{color:red}"},
		{"inner whitespace preserved", "```css\n\n  a { x }\n\n```", "\n\n  a { x }\n\n"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripFences(tc.in))
		})
	}
}
