package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tweetkit/tweetkit/cachestore"
	"github.com/tweetkit/tweetkit/tweet"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "tweetkit",
		Usage:   "tweet model developer tool",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log dropped batch elements and other debug detail",
			},
		},
		Before: func(cctx *cli.Context) error {
			level := slog.LevelInfo
			if cctx.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdDecode,
		cmdCacheKey,
	}
	return app.Run(args)
}

var cmdDecode = &cli.Command{
	Name:      "decode",
	Usage:     "hydrate tweets from an API JSON payload (object or array)",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "perspective",
			Usage: "viewer user ID to bind; empty means logged-out",
		},
	},
	Action: func(cctx *cli.Context) error {
		b, err := readInput(cctx.Args().First())
		if err != nil {
			return err
		}

		b = bytes.TrimSpace(b)

		var tweets []*tweet.Tweet
		if len(b) > 0 && b[0] == '[' {
			tweets, err = tweet.DecodeTweetsJSON(b)
			if err != nil {
				return err
			}
		} else {
			t, err := tweet.DecodeTweetJSON(b)
			if err != nil {
				return err
			}
			tweets = []*tweet.Tweet{t}
		}

		for i, t := range tweets {
			tweets[i] = t.WithPerspective(cctx.String("perspective"))
		}

		out, err := json.MarshalIndent(tweets, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var cmdCacheKey = &cli.Command{
	Name:      "cache-key",
	Usage:     "print the versioned cache key for an entity ID",
	ArgsUsage: "<id>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "kind",
			Usage: "entity kind (tweet or user)",
			Value: string(tweet.KindTweet),
		},
		&cli.StringFlag{
			Name:  "perspective",
			Usage: "viewer user ID scoping the entry",
			Value: cachestore.PerspectiveNone,
		},
	},
	Action: func(cctx *cli.Context) error {
		id := cctx.Args().First()
		keys := tweet.DefaultKeyBuilder()
		key, err := keys.Key(cachestore.Kind(cctx.String("kind")), id, cctx.String("perspective"))
		if err != nil {
			return err
		}
		fmt.Println(key)
		return nil
	},
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
