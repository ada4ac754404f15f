package vpalloc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/QuangTung97/vpalloc/allocator"
)

var (
	// ErrUnknownCommand ...
	ErrUnknownCommand = errors.New("vpalloc: unknown command")
	// ErrBadRequest ...
	ErrBadRequest = errors.New("vpalloc: bad request")
)

// CommandKind ...
type CommandKind int

const (
	// CommandRequest allocates memory: RQ <owner> <size> <F|B|W>
	CommandRequest CommandKind = iota
	// CommandRelease frees an owner's memory: RL <owner>
	CommandRelease
	// CommandCompact slides owned blocks to address 0: C
	CommandCompact
	// CommandStatus prints the block map: STAT
	CommandStatus
	// CommandFragmentation prints free-space accounting: FRAG
	CommandFragmentation
	// CommandExit ends the session: X
	CommandExit
)

// Command ...
type Command struct {
	Kind     CommandKind
	Owner    string
	Size     uint32
	Strategy allocator.Strategy
}

// ParseStrategy maps the single-letter strategy codes F, B and W.
func ParseStrategy(code string) (allocator.Strategy, bool) {
	switch code {
	case "F":
		return allocator.FirstFit, true
	case "B":
		return allocator.BestFit, true
	case "W":
		return allocator.WorstFit, true
	}
	return 0, false
}

// ParseCommand parses one line of the textual command surface.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrUnknownCommand
	}

	switch fields[0] {
	case "RQ":
		if len(fields) != 4 {
			return Command{}, fmt.Errorf("%w: RQ needs owner, size and strategy", ErrBadRequest)
		}
		size, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil || size == 0 {
			return Command{}, fmt.Errorf("%w: invalid size %q", ErrBadRequest, fields[2])
		}
		strategy, ok := ParseStrategy(fields[3])
		if !ok {
			return Command{}, fmt.Errorf("%w: invalid strategy %q", ErrBadRequest, fields[3])
		}
		return Command{
			Kind:     CommandRequest,
			Owner:    fields[1],
			Size:     uint32(size),
			Strategy: strategy,
		}, nil

	case "RL":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("%w: RL needs an owner", ErrBadRequest)
		}
		return Command{Kind: CommandRelease, Owner: fields[1]}, nil

	case "C":
		return Command{Kind: CommandCompact}, nil

	case "STAT":
		return Command{Kind: CommandStatus}, nil

	case "FRAG":
		return Command{Kind: CommandFragmentation}, nil

	case "X":
		return Command{Kind: CommandExit}, nil
	}
	return Command{}, ErrUnknownCommand
}
