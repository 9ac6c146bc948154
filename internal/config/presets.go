package config

import (
	"sort"
	"strconv"

	"github.com/san-kum/skilldrill/internal/field"
)

var Presets = map[string][][]int{
	"tiny": {
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	},
	"small": {
		{1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 0},
	},
	"ten": {
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	},
	"teens": {
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	},
	"scattered": {
		{0, 1, 0, 0, 1, 0},
		{1, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 1},
		{1, 0, 0, 0, 1, 0},
	},
	"tens": {
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
	},
}

// GetPreset returns the named grid with its answer set to the number of
// marked cells.
func GetPreset(name string) (field.Data, bool) {
	grid, ok := Presets[name]
	if !ok {
		return field.Data{}, false
	}
	rows := make([][]int, len(grid))
	for i, r := range grid {
		rows[i] = append([]int(nil), r...)
	}
	d := field.Data{Field: rows}
	d.Answer = field.Answer(strconv.Itoa(d.Marked()))
	return d, true
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
