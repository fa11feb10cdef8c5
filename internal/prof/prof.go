// Package prof wires Go's runtime profilers to CLI flags.
package prof

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Options names the output files for each profile kind. Empty paths disable
// the corresponding profile.
type Options struct {
	CPUPath string
	MemPath string
}

// Session is an active profiling run. Stop must be called exactly once.
type Session struct {
	opts    Options
	cpuFile *os.File
}

// Start begins CPU profiling when requested. Heap profiling is captured at
// Stop time.
func Start(opts Options) (*Session, error) {
	s := &Session{opts: opts}
	if opts.CPUPath != "" {
		f, err := os.Create(opts.CPUPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to start CPU profile: %w", err)
		}
		s.cpuFile = f
	}
	return s, nil
}

// Stop finishes the CPU profile and writes the heap profile when requested.
func (s *Session) Stop() error {
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := s.cpuFile.Close(); err != nil {
			return err
		}
		s.cpuFile = nil
	}
	if s.opts.MemPath != "" {
		f, err := os.Create(s.opts.MemPath)
		if err != nil {
			return fmt.Errorf("failed to create heap profile: %w", err)
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write heap profile: %w", err)
		}
		return f.Close()
	}
	return nil
}
