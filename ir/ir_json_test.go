package ir

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestMarshalJSON(t *testing.T) {
	n := FromSlice([]*Node{
		FromInt(1),
		Anchored("a", FromString("x")),
		Aliased("b", nil),
	})
	d, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"Array","values":[` +
		`{"type":"Integer","int":1},` +
		`{"type":"Anchored","name":"a","child":{"type":"String","string":"x"}},` +
		`{"type":"Aliased","name":"b","resolved":false}]}`
	if string(d) != want {
		t.Errorf("got %s\nwant %s", d, want)
	}
}
