package adapters

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpecTextFileWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.txt")
	text := SpecTextFile{}

	require.NoError(t, text.Write(path, "mpileaks@1.0 ^mpi@2:"))

	got, err := text.Read(path)
	require.NoError(t, err)
	require.Equal(t, "mpileaks@1.0 ^mpi@2:", got)
}

func TestSpecTextFileReadMissingFile(t *testing.T) {
	text := SpecTextFile{}
	_, err := text.Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
