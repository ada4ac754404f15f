package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunREPL(t *testing.T) {
	in := strings.NewReader(
		"RQ P1 40 F\n" +
			"BOGUS\n" +
			"RQ P2 10\n" +
			"STAT\n" +
			"X\n")

	var out bytes.Buffer
	err := runREPL(in, &out, 100)
	assert.Nil(t, err)

	assert.Equal(t,
		"allocator> Successfully allocated 40 bytes to P1\n"+
			"allocator> Unknown command\n"+
			"allocator> vpalloc: bad request: RQ needs owner, size and strategy\n"+
			"allocator> Addresses [0:39] Process P1\n"+
			"Addresses [40:99] Unused\n"+
			"allocator> ",
		out.String())
}

func TestRunREPLEndOfInput(t *testing.T) {
	var out bytes.Buffer
	err := runREPL(strings.NewReader("STAT\n"), &out, 10)
	assert.Nil(t, err)
	assert.Equal(t,
		"allocator> Addresses [0:9] Unused\n"+
			"allocator> ",
		out.String())
}
