package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/geoarc/sweep/point"
	"github.com/geoarc/sweep/segment"
)

func main() {
	cmd := &cli.Command{
		Name:      "gensegments",
		Usage:     "Generates random line segments, arcs and circles in a plane and outputs results to stdout as JSON",
		UsageText: "gensegments --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value> --maxradius <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxradius",
				Usage:    "The maximum radius of generated arcs and circles",
				OnlyOnce: true,
				Value:    5,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("maxradius must be greater than zero")
					}
					return nil
				},
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomFloatInRange(min, max int64) float64 {
	return float64(min) + rand.Float64()*float64(max-min)
}

func randomPoint(minx, maxx, miny, maxy int64) point.Point {
	return point.New(randomFloatInRange(minx, maxx), randomFloatInRange(miny, maxy))
}

func app(_ context.Context, cmd *cli.Command) error {

	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	maxradius := cmd.Int("maxradius")
	n := cmd.Int("number")

	// sanity checks
	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	// prep output slice
	output := make([]segment.Segment, n)

	// fill output slice
	for i := int64(0); i < n; i++ {
		switch rand.Int64N(3) {
		case 0: // line
			for {
				p := randomPoint(minx, maxx, miny, maxy)
				q := randomPoint(minx, maxx, miny, maxy)

				// skip degenerate segments
				if !p.Eq(q) {
					output[i] = segment.NewLine(p, q)
					break
				}
			}
		case 1: // arc
			center := randomPoint(minx, maxx, miny, maxy)
			radius := 1 + rand.Float64()*float64(maxradius-1)
			start := rand.Float64() * 2 * math.Pi
			span := rand.Float64() * 2 * math.Pi
			output[i] = segment.NewArc(center, radius, start, start+span)
		case 2: // circle
			center := randomPoint(minx, maxx, miny, maxy)
			radius := 1 + rand.Float64()*float64(maxradius-1)
			output[i] = segment.NewFullCircle(center, radius)
		}
	}
	b, err := json.Marshal(output)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
