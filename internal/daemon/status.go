package daemon

import (
	"context"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/process"

	"ollamaapi/pkg/types"
)

// Status returns a snapshot of the daemon for reporting. It reads process
// stats for the daemon pid but never probes the daemon API.
func (s *Supervisor) Status(ctx context.Context) types.DaemonStatus {
	st := types.DaemonStatus{Host: s.opts.Host}
	if bin, err := s.lookPath(s.opts.Bin); err == nil {
		st.Installed = true
		st.Binary = bin
	}

	s.mu.Lock()
	st.State = string(s.state)
	if p := s.proc; p != nil && !p.exited() {
		st.Managed = true
		st.PID = p.pid
		st.StartedAt = p.startedAt.Unix()
	}
	s.mu.Unlock()

	if st.PID == 0 && st.State == string(StateReady) {
		st.PID = findByName(ctx, filepath.Base(s.opts.Bin))
	}
	if st.PID > 0 {
		st.RSSBytes = rss(ctx, st.PID)
		if st.StartedAt == 0 {
			st.StartedAt = createTime(ctx, st.PID)
		}
	}
	return st
}

func rss(ctx context.Context, pid int) uint64 {
	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return 0
	}
	mi, err := p.MemoryInfoWithContext(ctx)
	if err != nil || mi == nil {
		return 0
	}
	return mi.RSS
}

func createTime(ctx context.Context, pid int) int64 {
	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return 0
	}
	ms, err := p.CreateTimeWithContext(ctx)
	if err != nil {
		return 0
	}
	return ms / 1000
}

// findByName locates an externally started daemon. Returns 0 when none or
// more than one process matches.
func findByName(ctx context.Context, name string) int {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return 0
	}
	found := 0
	for _, p := range procs {
		n, err := p.NameWithContext(ctx)
		if err != nil || n != name {
			continue
		}
		if found != 0 {
			return 0
		}
		found = int(p.Pid)
	}
	return found
}
