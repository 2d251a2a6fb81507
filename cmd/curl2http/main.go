package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	curlparser "github.com/tyrchen/curl-parser"
	"github.com/tyrchen/curl-parser/internal/grammar"
	"github.com/tyrchen/curl-parser/internal/output"
	"github.com/tyrchen/curl-parser/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// varFlags collects repeatable -var key=value template context entries.
type varFlags map[string]any

func (v varFlags) String() string {
	var pairs []string
	for key, value := range v {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, value))
	}
	return strings.Join(pairs, ",")
}

func (v varFlags) Set(s string) error {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	v[strings.TrimSpace(key)] = value
	return nil
}

func main() {
	vars := make(varFlags)
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		inputFile   = flag.String("f", "", "Read the curl command from a file instead of arguments")
		bodyOnly    = flag.Bool("body", false, "Print only the encoded request body")
		tuiMode     = flag.Bool("tui", false, "Launch interactive TUI mode")
	)
	flag.Var(vars, "var", "Template variable as key=value (repeatable)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, grammar.FormatHelp())
		fmt.Fprintf(os.Stderr, "\nFlags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("curl2http version %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	if *tuiMode {
		if err := tui.Launch(); err != nil {
			printError(err)
			os.Exit(1)
		}
		return
	}

	command, err := readCommand(*inputFile, flag.Args())
	if err != nil {
		printError(err)
		os.Exit(2)
	}

	req, err := curlparser.Load(command, vars)
	if err != nil {
		printError(err)
		os.Exit(5) // Grammar/semantic error
	}

	if *bodyOnly {
		encoded, err := req.EncodedBody()
		if err != nil {
			printError(err)
			os.Exit(5)
		}
		fmt.Println(encoded)
		return
	}

	formatted, err := output.FormatRequest(req)
	if err != nil {
		printError(fmt.Errorf("failed to format request: %w", err))
		os.Exit(5)
	}
	fmt.Println(string(formatted))
}

// readCommand resolves the curl command text from a file, the argument list,
// or piped stdin, in that order.
func readCommand(path string, args []string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		if len(data) > 0 {
			return string(data), nil
		}
	}

	return "", fmt.Errorf("no curl command given (pass it as an argument, via -f, or on stdin)")
}

// printError prints an error with helpful diagnostics.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	// Check if it's a ParseError with suggestions
	if parseErr, ok := err.(*curlparser.ParseError); ok && parseErr.Suggest != "" {
		fmt.Fprintf(os.Stderr, "Hint: Try using '%s' instead\n", parseErr.Suggest)
	}
}
