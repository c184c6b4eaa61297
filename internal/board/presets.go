package board

import (
	"fmt"
	"sort"
	"strings"
)

// presets are hand-made descriptions known to be solvable.
//
//	swap:    [AA AA BB] [BB BB AA] []
//	starter: [AA BB AA] [BB AA BB] []
//	classic: [AA BB CC AA] [BB CC AA BB] [CC] [] []
var presets = map[string]string{
	"swap": `3
AA
AA
BB
3F1
BB
BB
AA
3F2
`,
	"starter": `3
AA
BB
AA
3F1
BB
AA
BB
3F2
`,
	"classic": `5
AA
BB
CC
AA
4F1
BB
CC
AA
BB
4F2
CC
1F3
`,
}

// PresetNames lists the built-in puzzles in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the description text of a built-in puzzle.
func Preset(name string) (string, error) {
	text, ok := presets[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return text, nil
}
