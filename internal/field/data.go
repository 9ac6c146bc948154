package field

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/skilldrill/internal/widget"
)

// Answer is the expected response. Puzzle files may write it as a number or a
// string; it is held in its textual form.
type Answer string

func (a *Answer) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return widget.Invalid("answer", "expected a scalar, got yaml kind %d", node.Kind)
	}
	*a = Answer(node.Value)
	return nil
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Answer(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return widget.Invalid("answer", "expected a string or number: %v", err)
	}
	*a = Answer(n.String())
	return nil
}

// Matches reports whether response equals the answer by value: identical
// after trimming, or both integers with the same value ("07" matches 7).
func (a Answer) Matches(response string) bool {
	want := strings.TrimSpace(string(a))
	got := strings.TrimSpace(response)
	if want == got {
		return true
	}
	wn, err := strconv.ParseInt(want, 10, 64)
	if err != nil {
		return false
	}
	gn, err := strconv.ParseInt(got, 10, 64)
	if err != nil {
		return false
	}
	return wn == gn
}

// Data is the read-once puzzle definition supplied by the host.
type Data struct {
	Field  [][]int `yaml:"field" json:"field"`
	Answer Answer  `yaml:"answer" json:"answer"`
}

// Validate rejects grids that would render partially: empty grids, empty
// rows and ragged rows.
func (d Data) Validate() error {
	if len(d.Field) == 0 {
		return widget.Invalid("field", "grid has no rows")
	}
	width := len(d.Field[0])
	for i, row := range d.Field {
		if len(row) == 0 {
			return widget.Invalid("field", "row %d is empty", i)
		}
		if len(row) != width {
			return widget.Invalid("field", "row %d has %d cells, want %d", i, len(row), width)
		}
	}
	return nil
}

// Marked counts cells equal to 1 across the whole grid.
func (d Data) Marked() int {
	n := 0
	for _, row := range d.Field {
		for _, v := range row {
			if v == 1 {
				n++
			}
		}
	}
	return n
}
