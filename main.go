package main

import (
	"context"
	"fmt"
	"os"

	"visualchess/src"
	"visualchess/src/engine/corechess"
	"visualchess/src/logx"
	clic "visualchess/ui/cli"
	"visualchess/ui/gui"
	"visualchess/ui/gui/gbase/gconf"

	"github.com/urfave/cli/v3"
)

func newLogger(level string) logx.Logger {
	l := logx.NewLogx(logx.GetLoggerLevelByString(level), true, true)
	l.InitLogger(os.Stdout)
	return l
}

func runGUI(fen, logLevel string, debug bool) error {
	cfg, err := gconf.NewGUIConfig()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if debug {
		cfg.Debug = true
	}

	logger := newLogger(cfg.LogLevel)
	eng := corechess.NewEngine(logger)
	if fen != "" {
		if err := eng.LoadFEN(fen); err != nil {
			return err
		}
	}
	controller := src.NewController(eng, float64(cfg.TileSize), logger)

	g, err := gui.NewGUI(controller, cfg, logger)
	if err != nil {
		return err
	}
	if err := g.Run(); err != nil {
		return err
	}
	return cfg.Save()
}

func main() {
	if err := (&cli.Command{
		Name:  "visualchess",
		Usage: "chess board on screen",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "fen",
				Usage: "string FEN format",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug/info/warn/error",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "show TPS overlay",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runGUI(c.String("fen"), c.String("log-level"), c.Bool("debug"))
		},
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "play in the terminal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "fen",
						Usage: "string FEN format",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					eng := corechess.NewEngine(logx.Nop{})
					if fen := c.String("fen"); fen != "" {
						if err := eng.LoadFEN(fen); err != nil {
							fmt.Printf("Error read FEN: %v\n", err)
							return nil
						}
					}
					clic.EnableANSI()
					cl := clic.NewCLI(eng)
					if err := cl.RunLineMode(); err != nil {
						fmt.Printf("error visualchess: %v\n", err)
					}
					return nil
				},
			},
		},
	}).Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
	}
}
