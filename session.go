package vpalloc

import (
	"fmt"
	"strings"

	"github.com/QuangTung97/vpalloc/allocator"
)

// Session drives a single allocator from parsed commands and renders
// the reply lines of the interactive surface.
type Session struct {
	allocator *allocator.Allocator
}

// NewSession ...
func NewSession(capacity uint32) *Session {
	return &Session{
		allocator: allocator.New(capacity),
	}
}

// Allocator ...
func (s *Session) Allocator() *allocator.Allocator {
	return s.allocator
}

// Exec runs one command against the allocator and returns the reply
// text. CommandExit returns an empty reply, ending the session is the
// caller's concern.
func (s *Session) Exec(cmd Command) string {
	switch cmd.Kind {
	case CommandRequest:
		if s.allocator.Allocate(cmd.Owner, cmd.Size, cmd.Strategy) {
			return fmt.Sprintf("Successfully allocated %d bytes to %s", cmd.Size, cmd.Owner)
		}
		return fmt.Sprintf("Error: Cannot allocate %d bytes to %s", cmd.Size, cmd.Owner)

	case CommandRelease:
		if s.allocator.Release(cmd.Owner) {
			return fmt.Sprintf("Successfully released memory for %s", cmd.Owner)
		}
		return fmt.Sprintf("Error: Process %s not found", cmd.Owner)

	case CommandCompact:
		s.allocator.Compact()
		return "Memory compacted"

	case CommandStatus:
		return s.formatStatus()

	case CommandFragmentation:
		return s.formatFragmentation()

	case CommandExit:
		return ""
	}
	return "Unknown command"
}

func (s *Session) formatStatus() string {
	blocks := s.allocator.Status()
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		status := "Unused"
		if !b.IsFree() {
			status = "Process " + b.Owner
		}
		lines = append(lines, fmt.Sprintf("Addresses [%d:%d] %s", b.Start, b.End, status))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) formatFragmentation() string {
	stats := s.allocator.GetStats()
	frag := NewFragmentation(stats)
	return fmt.Sprintf(
		"Free %d bytes in %d blocks, largest %d (%d%% contiguous)",
		stats.FreeTotal, stats.FreeBlocks, stats.LargestFree, frag.Percent(),
	)
}
