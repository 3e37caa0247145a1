package version

import "testing"

func TestVersion(t *testing.T) {
	v := Version()
	if v.Major != 0 || v.Minor != 3 || v.Patch != 0 {
		t.Errorf("unexpected version %d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Core() == "" || v.String() == "" {
		t.Error("version renders empty")
	}
}
