package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/jaki95/lineup-genre-sorter/config"
	"github.com/jaki95/lineup-genre-sorter/internal/domain"
	"github.com/jaki95/lineup-genre-sorter/internal/export"
	"github.com/jaki95/lineup-genre-sorter/internal/service"
)

func main() {
	configPath := flag.String("config", "./config/config.yaml", "Path to the configuration file")
	input := flag.String("input", "", "Lineup text file, HTML page or URL (reads stdin when empty)")
	seedSource := flag.String("seed", "", "Seed artist source (overrides config)")
	output := flag.String("output", "", "Write the results as CSV to this path")
	genres := flag.String("genres", "", "Comma-separated genres to list")
	workers := flag.Int("workers", 0, "Maximum concurrent resolutions (overrides config)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seedSource != "" {
		cfg.Seed.Source = *seedSource
	}
	if *workers > 0 {
		cfg.Resolver.Workers = config.ClampWorkers(*workers)
	}

	// Logs go to stderr so the listing on stdout stays clean
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, err := service.LoadDirectory(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	processor := service.NewProcessor(cfg, dir)

	bar := progressbar.NewOptions(
		-1,
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionFullWidth(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan][1/1][reset] Resolving artists..."),
		progressbar.OptionClearOnFinish(),
	)
	progress := func(done, total int) {
		bar.ChangeMax(total)
		_ = bar.Set(done)
	}

	var result *domain.Result
	if *input == "" {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		result, err = processor.Process(ctx, string(text), progress)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		result, err = processor.ProcessSource(ctx, *input, progress)
		if err != nil {
			log.Fatal(err)
		}
	}
	_ = bar.Finish()

	if *output != "" {
		if err := writeCSVFile(*output, result.Records); err != nil {
			log.Fatal(err)
		}
		slog.Info("Wrote CSV", "path", *output, "records", len(result.Records))
	}

	printResult(os.Stdout, service.Filtered(result, splitGenres(*genres)))
}

func writeCSVFile(path string, records []domain.GenreRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(file, records); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func printResult(w io.Writer, result *domain.Result) {
	s := result.Summary
	fmt.Fprintf(w, "Parsed: %d  Matched: %d  Unknown: %d  Match rate: %d%%\n", s.Parsed, s.Matched, s.Unknown, s.MatchRate)
	if len(s.TopGenres) > 0 {
		top := make([]string, 0, len(s.TopGenres))
		for _, g := range s.TopGenres {
			top = append(top, fmt.Sprintf("%s (%d)", g.Genre, g.Count))
		}
		fmt.Fprintf(w, "Top genres: %s\n", strings.Join(top, ", "))
	}

	for _, g := range result.Genres {
		records := result.Grouped[g]
		fmt.Fprintf(w, "\n%s (%d)\n", g, len(records))
		for _, r := range records {
			fmt.Fprintf(w, "- %s\n", r.LineupEntry)
		}
	}
}

func splitGenres(raw string) []string {
	var genres []string
	for _, g := range strings.Split(raw, ",") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
