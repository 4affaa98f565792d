package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/parway/pkg/logging"
	"github.com/ib-77/parway/pkg/parway"
	"github.com/ib-77/parway/pkg/parway/codec"
	"github.com/ib-77/parway/pkg/trie"
)

var (
	wordsPath   string
	queriesPath string
	queryMode   string
	workers     int

	queryCmd = &cobra.Command{
		Use:   "query",
		Short: "Run a batch of queries against a word list",
		RunE:  runQuery,
	}
)

func init() {
	queryCmd.Flags().StringVarP(&wordsPath, "words", "w", "", "word-list file, one entry per line")
	queryCmd.Flags().StringVarP(&queriesPath, "queries", "q", "", "query file, one query per line")
	queryCmd.Flags().StringVarP(&queryMode, "mode", "m", "", "exact, predictive or prefix")
	queryCmd.Flags().IntVarP(&workers, "workers", "n", 0, "worker-count hint for parallel builds")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	// Flags win over the config file.
	if wordsPath != "" {
		cfg.Words = wordsPath
	}
	if queriesPath != "" {
		cfg.Queries = queriesPath
	}
	if queryMode != "" {
		cfg.Mode = queryMode
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.Words == "" || cfg.Queries == "" {
		return fmt.Errorf("both a word list and a query file are required")
	}

	log := logging.New(&cfg.Logging)
	defer func() { _ = log.Sync() }()

	words, err := readLines(cfg.Words)
	if err != nil {
		return err
	}
	queries, err := readLines(cfg.Queries)
	if err != nil {
		return err
	}

	// Values are 1-based line numbers into the word list.
	b := trie.NewBuilder[byte, int]()
	for i, w := range words {
		b.Put(w, i+1)
	}
	m := b.Build()
	log.Info("trie built",
		zap.Int("words", len(words)), zap.Int("entries", m.Len()), zap.Int("queries", len(queries)))

	var opts []parway.Option
	opts = append(opts, parway.WithLogger(log))
	if cfg.Workers > 0 {
		opts = append(opts, parway.WithWorkers(cfg.Workers))
	}

	var out any
	ctx := cmd.Context()
	switch cfg.Mode {
	case "exact":
		out, err = trie.BatchExactMatch(ctx, m, queries, opts...)
	case "predictive":
		out, err = trie.BatchPredictiveSearch(ctx, m, queries, opts...)
	case "prefix":
		out, err = trie.BatchCommonPrefixSearch(ctx, m, queries, opts...)
	}
	if err != nil {
		return fmt.Errorf("executing %s batch: %w", cfg.Mode, err)
	}

	data, err := codec.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func readLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines [][]byte
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		line := make([]byte, len(sc.Bytes()))
		copy(line, sc.Bytes())
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
