package steam

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

var clientProcessNames = []string{"steam", "steam.exe", "steam_osx"}

// ClientRunning reports whether a Steam client process is alive. It only
// reads the process table.
func ClientRunning(ctx context.Context) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("list processes: %w", err)
	}
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if isClientProcess(name) {
			return true, nil
		}
	}
	return false, nil
}

func isClientProcess(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, candidate := range clientProcessNames {
		if name == candidate {
			return true
		}
	}
	return false
}
