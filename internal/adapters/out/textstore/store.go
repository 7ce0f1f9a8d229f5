// Package textstore persists the order registry as a flat delimited text
// file. The whole registry is rewritten on every save (snapshot strategy);
// loading tolerates individually malformed lines by skipping them.
package textstore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"pizzeria/internal/core/domain/model/order"
)

// Store implements ports.OrderStore over a single text file.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a text store writing to the given file path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With("component", "text_order_store"),
	}
}

// LoadAll reads the store file line by line and rehydrates every
// well-formed record, in stored order. A missing file yields an empty
// result and no error. Malformed lines are logged and skipped so one bad
// record never aborts the rest of the load.
func (s *Store) LoadAll() ([]*order.Order, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open store file %s: %w", s.path, err)
	}
	defer file.Close()

	var orders []*order.Order

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		o, parseErr := parseOrder(line)
		if parseErr != nil {
			s.logger.Warn("skipping malformed store record",
				"file", s.path,
				"line", lineNo,
				"error", parseErr,
			)
			continue
		}
		orders = append(orders, o)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read store file %s: %w", s.path, err)
	}

	return orders, nil
}

// SaveAll truncates the store file and rewrites it with one record per
// order, in the order provided. This is a full-snapshot write, never an
// append.
func (s *Store) SaveAll(orders []*order.Order) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create store file %s: %w", s.path, err)
	}

	w := bufio.NewWriter(file)
	for _, o := range orders {
		if _, err := fmt.Fprintln(w, serializeOrder(o)); err != nil {
			file.Close()
			return fmt.Errorf("write store file %s: %w", s.path, err)
		}
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("flush store file %s: %w", s.path, err)
	}

	return file.Close()
}
