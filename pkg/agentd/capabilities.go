package agentd

import (
	"os"
	"runtime"

	"github.com/Kirizan/kitt-sub000/pkg/config"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/Kirizan/kitt-sub000/pkg/version"
)

// NormalizeArch maps the various spellings of an architecture to the
// canonical form used for compatibility checks.
func NormalizeArch(arch string) string {
	switch arch {
	case "x86_64", "amd64":
		return "amd64"
	case "aarch64", "arm64":
		return "arm64"
	default:
		return arch
	}
}

// hostArch is the normalized architecture of this agent.
func hostArch() string {
	return NormalizeArch(runtime.GOARCH)
}

// snapshotCapabilities probes the host for the capability payload sent
// with every heartbeat. Probes that fail leave their field zero rather
// than failing the heartbeat.
func snapshotCapabilities(cfg *config.AgentConfig) models.AgentCapabilities {
	caps := models.AgentCapabilities{
		CPUArch:     hostArch(),
		KittVersion: version.Full(),
	}
	if hostname, err := os.Hostname(); err == nil {
		caps.Hostname = hostname
	}
	caps.RAMGB = totalRAMGB()
	caps.StorageGBFree = freeDiskGB(cfg.ModelCacheDir)
	return caps
}
