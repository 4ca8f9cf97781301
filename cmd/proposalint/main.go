package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/grahms/proposalint"
)

// Config holds the linter CLI configuration.
type Config struct {
	Format   string
	LogLevel string
	Paths    []string
}

// finding is one diagnostic localized to a file, as emitted on stdout.
type finding struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func main() {
	config := parseFlags()
	logger := setupLogger(config.LogLevel)

	files, err := collectFiles(config.Paths)
	if err != nil {
		logger.Fatalf("Failed to collect input files: %v", err)
	}
	if len(files) == 0 {
		logger.Warn("No proposal documents found")
	}

	linter := proposalint.NewLinter()
	findings := []finding{}
	for _, file := range files {
		results, err := lintFile(linter, file)
		if err != nil {
			logger.Errorf("Failed to lint %s: %v", file, err)
			findings = append(findings, finding{File: file, Line: 1, Message: err.Error()})
			continue
		}
		logger.Debugf("Linted %s: %d finding(s)", file, len(results))
		findings = append(findings, results...)
	}

	if err := printFindings(config.Format, findings); err != nil {
		logger.Fatalf("Failed to write output: %v", err)
	}
	if len(findings) > 0 {
		os.Exit(1)
	}
}

func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.Format, "format", "text", "Output format (text, json)")
	flag.StringVar(&config.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	config.Paths = flag.Args()
	if len(config.Paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: proposalint [-format text|json] [-log-level level] <file-or-dir> ...")
		os.Exit(2)
	}
	return config
}

func setupLogger(logLevel string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	return logger
}

// collectFiles expands the given paths; directories are walked for .md
// documents, explicit files are taken as-is.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, ".md") {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func lintFile(linter *proposalint.Linter, path string) ([]finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	node, err := proposalint.ExtractPreamble(f)
	if err != nil {
		if errors.Is(err, proposalint.ErrNoPreamble) || errors.Is(err, proposalint.ErrUnterminatedPreamble) {
			return []finding{{File: path, Line: 1, Message: err.Error()}}, nil
		}
		return nil, err
	}

	collector := &proposalint.Collector{}
	linter.Lint(node, collector)

	findings := make([]finding, 0, len(collector.Diagnostics))
	for _, d := range collector.Diagnostics {
		findings = append(findings, finding{File: path, Line: d.Node.Pos.Line, Message: d.Message})
	}
	return findings, nil
}

func printFindings(format string, findings []finding) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(findings)
	default:
		for _, f := range findings {
			fmt.Printf("%s:%d: %s\n", f.File, f.Line, f.Message)
		}
		return nil
	}
}
