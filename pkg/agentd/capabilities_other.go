//go:build !linux

package agentd

// Non-Linux hosts report zero for RAM and disk; the fields are
// informational and the planner does not depend on them.

func totalRAMGB() int { return 0 }

func freeDiskGB(string) float64 { return 0 }
