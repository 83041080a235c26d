//go:build linux

package agentd

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// totalRAMGB reads MemTotal from /proc/meminfo, rounded down to whole GB.
func totalRAMGB() int {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[0] == "MemTotal:" {
			kb, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return 0
			}
			return int(kb / (1024 * 1024))
		}
	}
	return 0
}

// freeDiskGB reports free space on the filesystem holding path.
func freeDiskGB(path string) float64 {
	var st syscall.Statfs_t
	if err := syscall.Statfs(path, &st); err != nil {
		return 0
	}
	return float64(st.Bavail) * float64(st.Bsize) / (1024 * 1024 * 1024)
}
