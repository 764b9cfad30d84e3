// Package gold implements golden files.
package gold

import (
	"encoding/hex"
	"flag"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

func writeFile(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, data, 0o600))
}

func testName(t testing.TB, ext string) []string {
	return []string{strings.ReplaceAll(t.Name(), "/", "_") + ext}
}

// Str checks s against text golden file.
//
// If no name is given, file name is derived from test name.
func Str(t testing.TB, s string, name ...string) {
	t.Helper()

	if len(name) == 0 {
		name = testName(t, ".txt")
	}
	if Update {
		writeFile(t, []byte(s), name...)
		return
	}

	require.Equal(t, string(ReadFile(t, name...)), s)
}

// Bytes checks data against binary golden file, stored as hex.
//
// If no name is given, file name is derived from test name.
func Bytes(t testing.TB, data []byte, name ...string) {
	t.Helper()

	if len(name) == 0 {
		name = testName(t, ".hex")
	}
	Str(t, hex.EncodeToString(data)+"\n", name...)
}
