package adapters

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHostArchRuntimeDefault(t *testing.T) {
	host := NewHostArchRuntime()
	def := host.Default()
	require.True(t, strings.HasPrefix(def, runtime.GOOS+"-"))
	require.Contains(t, def, runtime.GOARCH)
}
