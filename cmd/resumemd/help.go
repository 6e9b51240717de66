package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumemd <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert Markdown résumés to paged HTML and PDF")
	fmt.Fprintln(w, "  parse      Print the structured résumé as YAML or JSON")
	fmt.Fprintln(w, "  fmt        Rewrite résumés in canonical Markdown")
	fmt.Fprintln(w, "  paginate   Compute page breaks for given block heights")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'resumemd help <command>' for details on a specific command.")
}

// printLogUsage prints the logging flags shared by every command.
func printLogUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output and timings")
	fmt.Fprintln(w, "      --log-format <s>      Log format: pretty, json")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumemd convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown résumés to paged A4 HTML and PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-page browser timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --html                Write paged HTML alongside PDF")
	fmt.Fprintln(w, "      --html-only           Write paged HTML only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Typography:")
	fmt.Fprintln(w, "      --style-variant <s>   Experience layout: standard, compact, impact")
	fmt.Fprintln(w, "      --body-size <px>      Body font size (10-14)")
	fmt.Fprintln(w, "      --heading-size <px>   Section heading size (14-18)")
	fmt.Fprintln(w, "      --name-size <px>      Name size (24-32)")
	fmt.Fprintln(w, "      --line-height <f>     Line height (1.2-1.6)")
	fmt.Fprintln(w, "      --font-family <s>     CSS font stack")
	fmt.Fprintln(w, "      --content-gap <px>    Gap between blocks (0-40)")
	fmt.Fprintln(w, "      --padding-top <mm>    Page padding, also -bottom, -left, -right (0-40)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Base CSS: style name, .css path, or inline CSS")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file applied last")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w)
	printLogUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RESUMEMD_CONFIG, RESUMEMD_STYLE, RESUMEMD_TIMEOUT, RESUMEMD_OUTPUT_DIR,")
	fmt.Fprintln(w, "  RESUMEMD_WORKERS, RESUMEMD_LOG_LEVEL, RESUMEMD_LOG_FORMAT")
}

// printParseUsage prints usage for the parse command.
func printParseUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumemd parse <file.md|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the structured résumé. Use - to read standard input.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: yaml, json (default yaml)")
	fmt.Fprintln(w, "  -o, --output <path>       Write to file instead of stdout")
	fmt.Fprintln(w)
	printLogUsage(w)
}

// printFmtUsage prints usage for the fmt command.
func printFmtUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumemd fmt <file.md|->... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the canonical Markdown of each résumé.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -w, --write               Rewrite files in place")
	fmt.Fprintln(w, "      --check               Fail if a file is not canonical")
	fmt.Fprintln(w)
	printLogUsage(w)
}

// printPaginateUsage prints usage for the paginate command.
func printPaginateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumemd paginate [flags] <height[:marginTop:marginBottom]>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the indices of the blocks that start a new page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --capacity <px>       Usable page height (0 = A4 default)")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, json (default text)")
	fmt.Fprintln(w)
	printLogUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "parse":
		printParseUsage(env.Stdout)
	case "fmt":
		printFmtUsage(env.Stdout)
	case "paginate":
		printPaginateUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: resumemd version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: resumemd help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
