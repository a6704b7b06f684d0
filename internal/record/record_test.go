package record

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

func TestParse(t *testing.T) {
	v := Parse("42")
	n, ok := v.Num()
	gt.B(t, ok).True()
	gt.Equal(t, n, 42.0)

	v = Parse("open")
	s, ok := v.Str()
	gt.B(t, ok).True()
	gt.Equal(t, s, "open")
}

func TestValueEqual(t *testing.T) {
	gt.B(t, Number(3).Equal(Number(3))).True()
	gt.B(t, Number(3).Equal(Number(4))).False()
	gt.B(t, String("a").Equal(String("a"))).True()
	gt.B(t, String("a").Equal(String("A"))).False()
	gt.B(t, String("404").Equal(Number(404))).True()
	gt.B(t, Number(1.5).Equal(String("1.5"))).True()
}

func TestValueText(t *testing.T) {
	gt.Equal(t, Number(12.5).Text(), "12.5")
	gt.Equal(t, Number(1200).Text(), "1200")
	gt.Equal(t, String("x").Text(), "x")
	gt.Equal(t, Value{}.Text(), "")
}

func TestValueMarshalJSON(t *testing.T) {
	r := Record{"id": Number(1), "title": String("Slow page")}
	data, err := json.Marshal(r)
	gt.NoError(t, err)
	gt.Equal(t, string(data), `{"id":1,"title":"Slow page"}`)
}

func TestFromMap(t *testing.T) {
	m := map[string]interface{}{
		"id":       7,
		"title":    "Missing meta description",
		"score":    61.5,
		"resolved": false,
		"owner":    nil,
		"detected": time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	r, err := FromMap(m)
	gt.NoError(t, err)
	gt.Equal(t, r.ID(), "7")
	gt.Equal(t, r.Title(), "Missing meta description")
	score, ok := r.Score()
	gt.B(t, ok).True()
	gt.Equal(t, score, 61.5)
	gt.Equal(t, r["resolved"].Text(), "false")
	gt.Equal(t, r["detected"].Text(), "2024-01-15")
	_, present := r.Get("owner")
	gt.B(t, present).False()
}

func TestFromMapRejectsNested(t *testing.T) {
	_, err := FromMap(map[string]interface{}{
		"tags": []interface{}{"a", "b"},
	})
	gt.Error(t, err)
}

func TestRecordFields(t *testing.T) {
	r := Record{"b": Number(1), "a": Number(2), "c": String("x")}
	gt.Equal(t, r.Fields(), []string{"a", "b", "c"})
}

func TestRecordSeverity(t *testing.T) {
	r := Record{"severity": String("high")}
	s, ok := r.Severity()
	gt.B(t, ok).True()
	gt.Equal(t, s, "high")

	_, ok = Record{"severity": Number(3)}.Severity()
	gt.B(t, ok).False()
}
