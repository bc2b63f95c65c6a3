package logfields

import (
	"errors"
	"testing"
)

func TestHelpers(t *testing.T) {
	cases := []struct {
		attrKey string
		got     string
		want    string
	}{
		{KeyPackage, Package("foo").Value.String(), "foo"},
		{KeyExport, Export("Bar").Value.String(), "Bar"},
		{KeyPages, Pages(3).Value.String(), "3"},
		{KeyError, Error(errors.New("boom")).Value.String(), "boom"},
		{KeyError, Error(nil).Value.String(), ""},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %q want %q", c.attrKey, c.got, c.want)
		}
	}
	if Path("a").Key != KeyPath {
		t.Errorf("Path key = %q", Path("a").Key)
	}
}
