package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	info := Info{Version: "v1.2.0", Commit: "abc123", BuildDate: "2026-01-02", GoVersion: "go1.25.0"}
	assert.Equal(t, "tabs v1.2.0 (commit abc123, built 2026-01-02, go1.25.0)", info.String())
}

func TestInfo_StringFallbacks(t *testing.T) {
	assert.Equal(t, "tabs dev (commit unknown, built unknown, unknown)", Info{}.String())
}
