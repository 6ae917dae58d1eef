package tags

import (
	"reflect"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	var tests = []struct {
		name string
		in   []string
		out  []string
	}{
		{"plain list", []string{"solar", "bikes"}, []string{"solar", "bikes"}},
		{"lowercases, trims and drops empties", []string{" Solar ", "", "  "}, []string{"solar"}},
		{"dedupes after lowercasing", []string{"Solar", "solar", "SOLAR", "bikes"}, []string{"solar", "bikes"}},
		{"caps at the limit", []string{"a", "b", "c", "d", "e", "f", "g"}, []string{"a", "b", "c", "d", "e"}},
		{"empty input falls back", []string{}, []string{DefaultTag}},
		{"all blank falls back", []string{"", "   "}, []string{DefaultTag}},
	}

	Convey("Normalize tag lists", t, func() {
		for _, test := range tests {
			Convey(test.name, func() {
				So(Normalize(test.in, 5), ShouldResemble, test.out)
			})
		}
	})
}

func TestDiff(t *testing.T) {
	current := []string{"solar", "bikes", "city"}
	next := []string{"Solar", "trains"}

	added, removed := Diff(current, next)
	if !reflect.DeepEqual(added, []string{"trains"}) {
		t.Errorf("added = %v", added)
	}
	if !reflect.DeepEqual(removed, []string{"bikes", "city"}) {
		t.Errorf("removed = %v", removed)
	}

	added, removed = Diff(nil, nil)
	if len(added) != 0 || len(removed) != 0 {
		t.Error("empty sets should diff to nothing")
	}
}
