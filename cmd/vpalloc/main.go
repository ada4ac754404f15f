package main

import (
	"fmt"
	"log"
	"os"

	"github.com/QuangTung97/vpalloc"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:        "vpalloc",
		Description: "a variable-partition memory allocation simulator",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "total memory size in bytes",
			},
		},
		Action: func(ctx *cli.Context) error {
			conf, err := LoadConfig()
			if err != nil {
				return err
			}
			size := conf.Size
			if ctx.IsSet("size") {
				size = uint32(ctx.Uint("size"))
			}
			if size == 0 {
				return fmt.Errorf("size must > 0")
			}
			return runREPL(os.Stdin, os.Stdout, size)
		},
		Commands: []*cli.Command{{
			Name:        "replay",
			Description: "replay a YAML scenario file",
			ArgsUsage:   "FILE",
			Action: func(ctx *cli.Context) error {
				if ctx.NArg() != 1 {
					return fmt.Errorf("replay needs exactly one scenario file")
				}
				scenario, err := vpalloc.LoadScenario(ctx.Args().First())
				if err != nil {
					return err
				}
				return scenario.Run(os.Stdout)
			},
		}},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
