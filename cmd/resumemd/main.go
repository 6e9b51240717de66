package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-resumemd/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// commands maps each subcommand to its runner.
var commands = map[string]func(ctx context.Context, args []string, env *Environment) error{
	"parse":    runParse,
	"fmt":      runFmt,
	"paginate": runPaginate,
	"convert":  runConvert,
}

// runMain dispatches args[1] and returns the process exit code.
// A leading Markdown path with no command means convert.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "resumemd %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	run, ok := commands[cmd]
	if !ok {
		if !looksLikeMarkdown(cmd) {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
		run, rest = runConvert, args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := run(ctx, rest, env)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, env.Getenv))
	}
	return exitCodeFor(err)
}

// looksLikeMarkdown reports whether s is a Markdown path given in place of a command.
func looksLikeMarkdown(s string) bool {
	return !strings.HasPrefix(s, "-") && fileutil.IsMarkdown(s)
}

// configureMaxProcs matches GOMAXPROCS to the container CPU quota, logging
// through logf. Errors are ignored: the runtime default is a safe fallback.
func configureMaxProcs(logf func(format string, args ...any)) {
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}
