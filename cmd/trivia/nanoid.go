package main

import (
	"fmt"

	"trivia/internal/utils"

	"github.com/urfave/cli/v2"
)

var requestIDCommand = &cli.Command{
	Name:      "request-id",
	Aliases:   []string{"nanoid"},
	Usage:     "Generate X-Request-Id values, or check whether the server would keep given ones",
	ArgsUsage: "[id...]",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of IDs to generate",
			Value:   1,
		},
		&cli.BoolFlag{
			Name:  "check",
			Usage: "Report for each argument whether it is kept or replaced by the server",
		},
	},
	Action: func(c *cli.Context) error {
		if c.Bool("check") {
			if c.NArg() == 0 {
				return fmt.Errorf("--check needs at least one id")
			}
			for _, id := range c.Args().Slice() {
				fmt.Printf("%s\t%s\n", id, requestIDVerdict(id))
			}
			return nil
		}

		for range c.Int("count") {
			fmt.Printf("X-Request-Id: %s\n", utils.NanoID())
		}
		return nil
	},
}

func requestIDVerdict(id string) string {
	if utils.IsRequestID(id) {
		return "kept"
	}
	return "replaced"
}
