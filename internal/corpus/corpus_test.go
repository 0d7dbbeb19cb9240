// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/simdoracle/oracle"
)

func TestIntBoundaries(t *testing.T) {
	got := IntBoundaries(oracle.MustLaneModel(8))
	want := []string{"0", "1", "-1", "127", "-128", "126", "-127", "0x7f", "0x80", "0xff"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("IntBoundaries(8) mismatch (-want +got):\n%s", diff)
	}

	got = IntBoundaries(oracle.MustLaneModel(64))
	assert.Contains(t, got, "-9223372036854775808")
	assert.Contains(t, got, "0xffffffffffffffff")
}

func TestDefaultValidates(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	for _, w := range []int{8, 16, 32, 64} {
		assert.NotEmpty(t, c.Ints(w), "width %d", w)
	}
	assert.Len(t, c.Floats(32), 16)
	assert.Len(t, c.Floats(64), 16)
	assert.Equal(t, []string{"nan", "-nan", "nan:0x200000", "-nan:0x200000"}, c.NaNs(32))
}

func TestDefaultIsIndependent(t *testing.T) {
	a := Default()
	a.Float[32][0] = "changed"
	assert.Equal(t, "0x0p+0", Default().Floats(32)[0])
}

func TestParseOverride(t *testing.T) {
	data := []byte(`
int:
  8: ["0", "0x7f", "0x7f", "-1"]
float:
  32: ["1.125", "0.25"]
`)
	c, err := Parse(data)
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"0", "0x7f", "-1"}, c.Ints(8)); diff != "" {
		t.Errorf("Ints(8) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"1.125", "0.25"}, c.Floats(32))
	assert.Equal(t, Default().Ints(16), c.Ints(16))
	assert.Equal(t, Default().NaNs(32), c.NaNs(32))
}

func TestParseRejectsBadLiterals(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad int", "int:\n  8: [\"0xzz\"]\n"},
		{"bad width", "int:\n  12: [\"1\"]\n"},
		{"nan in float list", "float:\n  32: [\"nan\"]\n"},
		{"number in nan list", "nan:\n  32: [\"1.0\"]\n"},
		{"bad float width", "float:\n  16: [\"1.0\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte("int: [oops"))
	assert.ErrorContains(t, err, "parsing corpus")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nan:\n  32: [\"nan\", \"-nan\"]\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"nan", "-nan"}, c.NaNs(32))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading corpus")
}
