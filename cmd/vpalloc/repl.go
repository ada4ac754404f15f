package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/QuangTung97/vpalloc"
)

const prompt = "allocator> "

func runREPL(in io.Reader, out io.Writer, capacity uint32) error {
	session := vpalloc.NewSession(capacity)
	scanner := bufio.NewScanner(in)

	for {
		if _, err := fmt.Fprint(out, prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, err := vpalloc.ParseCommand(scanner.Text())
		if errors.Is(err, vpalloc.ErrUnknownCommand) {
			fmt.Fprintln(out, "Unknown command")
			continue
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if cmd.Kind == vpalloc.CommandExit {
			return nil
		}
		fmt.Fprintln(out, session.Exec(cmd))
	}
}
