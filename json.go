package doctext

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ToJSON encodes the document as a JSON array of line strings, the same
// form FromJSON accepts.
func (t Text) ToJSON() (string, error) {
	raw := "[]"
	var err error
	for _, l := range t.ToLines() {
		raw, err = sjson.Set(raw, "-1", l)
		if err != nil {
			return "", err
		}
	}
	return raw, nil
}

// DebugJSON is ToJSON with indentation applied, for diagnostics and
// test failure output.
func (t Text) DebugJSON() (string, error) {
	raw, err := t.ToJSON()
	if err != nil {
		return "", err
	}
	return string(pretty.Pretty([]byte(raw))), nil
}

// FromJSON builds a Text from a JSON array of line strings, the inverse
// of ToJSON. Round-tripping a document through ToJSON/FromJSON yields an
// Eq document.
func FromJSON(raw string) (Text, error) {
	result := gjson.Parse(raw)
	if !result.IsArray() {
		return Text{}, contractViolation(raw)
	}
	lines := make([]string, 0, result.Get("#").Int())
	var rangeErr error
	result.ForEach(func(_, value gjson.Result) bool {
		if value.Type != gjson.String {
			rangeErr = contractViolation(value.Raw)
			return false
		}
		lines = append(lines, value.String())
		return true
	})
	if rangeErr != nil {
		return Text{}, rangeErr
	}
	return Of(lines)
}
