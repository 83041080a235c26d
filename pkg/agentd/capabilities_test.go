package agentd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArch(t *testing.T) {
	assert.Equal(t, "amd64", NormalizeArch("x86_64"))
	assert.Equal(t, "amd64", NormalizeArch("amd64"))
	assert.Equal(t, "arm64", NormalizeArch("aarch64"))
	assert.Equal(t, "arm64", NormalizeArch("arm64"))
	assert.Equal(t, "riscv64", NormalizeArch("riscv64"))
}

func TestSnapshotCapabilities(t *testing.T) {
	caps := snapshotCapabilities(DefaultTestConfig())
	assert.NotEmpty(t, caps.CPUArch)
	assert.NotEmpty(t, caps.KittVersion)
	assert.NotEmpty(t, caps.Hostname)
}
