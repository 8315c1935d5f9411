package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	roundservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/application"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/application/parsers"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/benchmark"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/strokesgained"
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/vision"
	roundtime "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/time_utils"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/metrics"
	"github.com/Black-And-White-Club/birdie-buddy/config"
	"github.com/Black-And-White-Club/birdie-buddy/db/bundb"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "scorecard",
		Usage: "inspect and import golf scorecards",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
			&cli.StringFlag{Name: "benchmark", Usage: "benchmark YAML file (defaults to the built-in table)"},
		},
		Commands: []*cli.Command{
			parseCommand(),
			importCommand(),
			expectedCommand(),
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadTable(c *cli.Context) (*benchmark.Table, error) {
	if path := c.String("benchmark"); path != "" {
		return benchmark.LoadFile(path)
	}
	return benchmark.Load()
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse a scorecard file and print strokes gained without saving",
		ArgsUsage: "<file.json|file.csv|file.xlsx>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("a scorecard file is required", 2)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			parser, err := parsers.NewFactory().GetParser(path)
			if err != nil {
				return err
			}
			card, err := parser.Parse(data)
			if err != nil {
				return err
			}
			table, err := loadTable(c)
			if err != nil {
				return err
			}
			return printCard(c.App.Writer, strokesgained.NewCalculator(table), card)
		},
	}
}

func printCard(out io.Writer, calc *strokesgained.Calculator, card *parsers.Scorecard) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HOLE\tPAR\tSHOT\tLIE\tDIST\tCATEGORY\tSG")

	var total roundtypes.CategoryTotals
	for _, h := range card.Holes {
		shots := make([]roundtypes.Shot, 0, len(h.Shots))
		for _, s := range h.Shots {
			shots = append(shots, roundtypes.Shot{StartDistance: s.StartDistance, Lie: s.Lie})
		}
		scored, err := calc.ScoreHole(shots)
		if err != nil {
			return fmt.Errorf("hole %d: %w", h.Number, err)
		}
		for _, s := range scored {
			category := string(s.Category)
			if category == "" {
				category = "-"
			}
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%d\t%s\t%+.3f\n", h.Number, h.Par, s.Number, s.Lie, s.StartDistance, category, s.StrokesGained)
		}
		total = total.Add(roundtypes.Hole{Shots: scored}.Totals())
	}
	fmt.Fprintf(tw, "\nTOTAL\t\t\t\t\t\t%+.3f\n", total.Total)
	fmt.Fprintf(tw, "driving %+.3f  approach %+.3f  around green %+.3f  putting %+.3f\n",
		total.Driving, total.Approach, total.AroundTheGreen, total.Putting)
	return tw.Flush()
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import a scorecard file or photo as a new round",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Required: true, Usage: "owner user ID"},
			&cli.StringFlag{Name: "course", Required: true, Usage: "course name"},
			&cli.StringFlag{Name: "played", Usage: `when the round was played, e.g. "2026-10-11" or "last saturday"`},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("a scorecard file is required", 2)
			}
			userID, err := uuid.Parse(c.String("user"))
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}
			playedAt, err := roundtime.NewPlayedAtParser(roundtime.RealClock{}).Parse(c.String("played"))
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
			db, err := bundb.NewBunDB(c.Context, cfg.Postgres, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			table, err := loadTable(c)
			if err != nil {
				return err
			}
			var reader roundservice.ScorecardReader
			if cfg.Vision.Endpoint != "" {
				reader = vision.NewClient(vision.Config{
					Endpoint:    cfg.Vision.Endpoint,
					APIKey:      cfg.Vision.APIKey,
					Timeout:     cfg.Vision.Timeout,
					MaxFailures: cfg.Vision.MaxFailures,
					OpenTimeout: cfg.Vision.OpenTimeout,
				}, logger)
			}
			svc := roundservice.NewRoundService(
				rounddb.NewRepository(db),
				strokesgained.NewCalculator(table),
				parsers.NewFactory(),
				reader,
				logger,
				metrics.NewNoop(),
				nil,
				db,
			)

			filename := filepath.Base(path)
			var round *roundservice.RoundDetail
			if mediaType := vision.MediaTypeFor(filename); mediaType != "" {
				round, err = svc.ImportScorecardImage(c.Context, userID, roundservice.ImageImportRequest{
					CourseName: c.String("course"),
					Filename:   filename,
					Image:      data,
					MediaType:  mediaType,
					PlayedAt:   playedAt,
				})
			} else {
				round, err = svc.ImportScorecard(c.Context, userID, roundservice.ImportRequest{
					CourseName: c.String("course"),
					Filename:   filename,
					Data:       data,
					PlayedAt:   playedAt,
				})
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "Imported round %s at %s: score %d (par %d), strokes gained %+.3f\n",
				round.ID, round.CourseName, round.Score, round.Par, round.StrokesGained.Total)
			return nil
		},
	}
}

func expectedCommand() *cli.Command {
	return &cli.Command{
		Name:  "expected",
		Usage: "look up expected strokes for a lie and distance",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "lie", Required: true, Usage: "tee, fairway, rough, recovery, penalty, sand or green"},
			&cli.IntFlag{Name: "distance", Required: true, Usage: "yards, or feet on the green"},
		},
		Action: func(c *cli.Context) error {
			table, err := loadTable(c)
			if err != nil {
				return err
			}
			lie, ok := roundtypes.ParseLie(c.String("lie"))
			if !ok {
				return fmt.Errorf("unknown lie %q (want one of %v)", c.String("lie"), table.Lies())
			}
			if lo, hi, ok := table.Range(lie); ok && (c.Int("distance") < lo || c.Int("distance") > hi) {
				return fmt.Errorf("%s covers %d-%d, got %d", lie, lo, hi, c.Int("distance"))
			}
			expected, err := table.ExpectedStrokes(lie, c.Int("distance"))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s %d: %.3f (%s)\n", lie, c.Int("distance"), expected, roundtypes.Classify(lie, c.Int("distance")))
			return nil
		},
	}
}
