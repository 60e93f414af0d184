package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gcbaptista/go-search-index/config"
	"github.com/gcbaptista/go-search-index/index"
	"github.com/gcbaptista/go-search-index/metrics"
	"github.com/gcbaptista/go-search-index/model"
	"github.com/gcbaptista/go-search-index/store"
)

const version = "v1.0.0"

// maxLineSize bounds a single record line of the data file.
const maxLineSize = 16 * 1024 * 1024

type options struct {
	configPath   string
	dataPath     string
	jsonLines    bool
	search       string
	autocomplete string
}

func main() {
	// Define command-line flags
	var (
		help         = flag.Bool("help", false, "Show help message")
		showVersion  = flag.Bool("version", false, "Show version information")
		configPath   = flag.String("config", "", "YAML settings file (defaults apply when empty)")
		dataPath     = flag.String("data", "", "Text file to index, one record per line")
		jsonLines    = flag.Bool("json", false, "Read the data file as JSON lines documents")
		search       = flag.String("search", "", "Search query to run")
		autocomplete = flag.String("autocomplete", "", "Autocomplete query to run")
		logLevel     = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Go Search Index - An in-memory keyword index with autocomplete and fuzzy matching\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s -data titles.txt -search \"dark kni\"        # Live search\n", os.Args[0])
		fmt.Printf("  %s -data titles.txt -autocomplete \"the da\"    # Autocomplete\n", os.Args[0])
		fmt.Printf("  %s -config index.yaml -data titles.txt -search batman\n", os.Args[0])
		fmt.Printf("  %s -json -data movies.jsonl -search nolan      # Index JSON documents\n", os.Args[0])
		return
	}

	// Handle version flag
	if *showVersion {
		fmt.Printf("Go Search Index %s\n", version)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(*logLevel)}))

	opts := options{
		configPath:   *configPath,
		dataPath:     *dataPath,
		jsonLines:    *jsonLines,
		search:       *search,
		autocomplete: *autocomplete,
	}
	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Error("search index failed", "error", err)
		os.Exit(1)
	}
}

func run(opts options, stdout io.Writer, logger *slog.Logger) error {
	if opts.dataPath == "" {
		return errors.New("-data is required")
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	recorder := metrics.NewPrometheus(reg)

	ix, err := index.NewFunc(settings, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	}, index.WithLogger(logger), index.WithRecorder(recorder))
	if err != nil {
		return err
	}

	records := store.NewRecordStore[uuid.UUID, model.Document]()
	if err := load(opts, ix, records); err != nil {
		return err
	}
	logger.Info("indexed records",
		"path", opts.dataPath, "records", records.Len(), "keywords", ix.Len(),
		"search_type", settings.SearchType, "autocomplete_type", settings.AutocompleteType)

	if opts.search != "" {
		for _, key := range ix.Search(opts.search) {
			doc, _ := records.Get(key)
			fmt.Fprintf(stdout, "%s\t%s\n", key, doc.Title())
		}
	}
	if opts.autocomplete != "" {
		for _, completion := range ix.Autocomplete(opts.autocomplete) {
			fmt.Fprintln(stdout, completion)
		}
	}

	return printCounters(reg, logger)
}

// load indexes every non-blank line of the data file. Plain lines become
// documents with a title; JSON documents sharing a documentID replace each
// other.
func load(opts options, ix *index.Index[uuid.UUID], records *store.RecordStore[uuid.UUID, model.Document]) error {
	file, err := os.Open(opts.dataPath)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		doc := model.Document{"title": line}
		key := uuid.New()
		if opts.jsonLines {
			doc = model.Document{}
			if err := json.Unmarshal([]byte(line), &doc); err != nil {
				return fmt.Errorf("invalid document on line %d: %w", lineNumber, err)
			}
			if id, ok := doc.GetDocumentID(); ok {
				key = uuid.NewSHA1(uuid.NameSpaceURL, []byte(id))
			}
		}

		if previous, replaced := records.Put(key, doc); replaced {
			ix.Replace(key, previous, doc)
			continue
		}
		ix.Insert(key, doc)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}
	return nil
}

// printCounters logs every non-zero counter in reg.
func printCounters(reg *prometheus.Registry, logger *slog.Logger) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			value := metric.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			attrs := []any{"metric", family.GetName(), "value", value}
			for _, label := range metric.GetLabel() {
				attrs = append(attrs, label.GetName(), label.GetValue())
			}
			logger.Info("diagnostic counter", attrs...)
		}
	}
	return nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
