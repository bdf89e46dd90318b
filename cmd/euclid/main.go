package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sghaida/euclid/answer"
	"github.com/sghaida/euclid/checker"
	"github.com/sghaida/euclid/config"
	"github.com/sghaida/euclid/digest"
	"github.com/sghaida/euclid/log"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

var solveCmd = cli.Command{
	Name:      "solve",
	Aliases:   []string{"s"},
	Usage:     "Computes the signed answer for one (a, b, k) input",
	ArgsUsage: "<a> <b> <k>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "id, i",
			Usage: `Student id used in the digest`,
		},
		cli.StringFlag{
			Name:  "key, k",
			Usage: `Secret key used in the digest`,
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: `Path to a YAML credentials file`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 3 {
			_ = cli.ShowCommandHelp(ctx, "solve")
			return cli.NewExitError("solve expects exactly three integer arguments", 2)
		}

		args := make([]int, 3)
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(ctx.Args().Get(i))
			if err != nil {
				return cli.NewExitError(
					fmt.Sprintf("argument %q is not an integer", ctx.Args().Get(i)), 2)
			}
			args[i] = n
		}
		a, b, k := args[0], args[1], args[2]
		if a < 0 || b < 0 {
			return cli.NewExitError("a and b must be non-negative", 2)
		}

		creds, err := resolveCredentials(ctx)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}

		ans := answer.Solve(a, b, k, creds)

		w := ctx.App.Writer
		fmt.Fprintf(w, "gcd:      %d\n", ans.GCD)
		fmt.Fprintf(w, "depth:    %d\n", ans.Depth)
		if ans.HasStep {
			fmt.Fprintf(w, "step %d:   (%d, %d)\n", k, ans.Step.Dividend, ans.Step.Divisor)
		} else {
			fmt.Fprintf(w, "step %d:   None\n", k)
		}
		fmt.Fprintf(w, "response: %s\n", ans.Response)
		fmt.Fprintf(w, "digest:   %s\n", ans.Digest)
		return nil
	},
}

var checkCmd = cli.Command{
	Name:    "check",
	Aliases: []string{"c"},
	Usage:   "Replays the fixed 20-case verification suite",
	Action: func(ctx *cli.Context) error {
		failed := checker.Run(ctx.App.Writer, checker.DefaultCases())
		if failed > 0 {
			return cli.NewExitError(
				fmt.Sprintf("%d test case(s) failed", failed), 1)
		}
		return nil
	},
}

// resolveCredentials resolves in precedence order: flags, config file,
// environment.
func resolveCredentials(ctx *cli.Context) (digest.Credentials, error) {
	creds := digest.Credentials{
		StudentID: ctx.String("id"),
		SecretKey: ctx.String("key"),
	}
	if creds.StudentID != "" && creds.SecretKey != "" {
		return creds, nil
	}

	if path := ctx.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			log.GetLogger().Error("failed to load config file",
				zap.String("path", path), zap.Error(err))
			return digest.Credentials{}, err
		}
		fill(&creds, cfg.Credentials)
		if creds.StudentID != "" && creds.SecretKey != "" {
			return creds, nil
		}
	}

	fill(&creds, config.FromEnv().Credentials)
	if creds.StudentID == "" || creds.SecretKey == "" {
		return digest.Credentials{}, errors.New(
			"missing credentials: pass --id/--key, a --config file, or set " +
				config.EnvStudentID + "/" + config.EnvSecretKey)
	}
	return creds, nil
}

// fill copies cc into the empty fields of creds.
func fill(creds *digest.Credentials, cc config.Credentials) {
	if creds.StudentID == "" {
		creds.StudentID = cc.StudentID
	}
	if creds.SecretKey == "" {
		creds.SecretKey = cc.SecretKey
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "euclid"
	app.Version = version
	app.Usage = "GCD homework answer kit"
	app.Commands = []cli.Command{
		solveCmd,
		checkCmd,
	}
	return app
}

func main() {
	if err := log.InitLogger(); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if err := newApp().Run(os.Args); err != nil {
		log.GetLogger().Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
