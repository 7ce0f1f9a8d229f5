// Package receipts handles the auxiliary ticket I/O: writing printable
// receipt files for orders and looking entries up in the legacy order log.
package receipts

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const banner = "========================================"

// Store implements ports.ReceiptStore over a tickets directory and the
// legacy plain-text order log.
type Store struct {
	ticketsDir string
	logPath    string
	now        func() time.Time
}

// NewStore creates a receipt store writing tickets under ticketsDir and
// reading the legacy log at logPath.
func NewStore(ticketsDir, logPath string) *Store {
	return &Store{
		ticketsDir: ticketsDir,
		logPath:    logPath,
		now:        time.Now,
	}
}

// Save writes a formatted ticket file for the order and returns its path.
// The tickets directory is created on demand; file names embed the order
// number and a timestamp so tickets are never overwritten.
func (s *Store) Save(orderNo, state string, lines []string, total string) (string, error) {
	if err := os.MkdirAll(s.ticketsDir, 0o755); err != nil {
		return "", fmt.Errorf("create tickets directory %s: %w", s.ticketsDir, err)
	}

	now := s.now()
	name := fmt.Sprintf("ticket_%s_%s.txt", orderNo, now.Format("20060102_150405"))
	path := filepath.Join(s.ticketsDir, name)

	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("            PIZZERIA TICKET             \n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "Ticket: %s\n", orderNo)
	fmt.Fprintf(&b, "Date: %s\n", now.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(&b, "State: %s\n", state)
	b.WriteString("----------------------------------------\n")
	b.WriteString("PIZZA SPECIFICATIONS:\n")
	b.WriteString("----------------------------------------\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "TOTAL: %s\n", total)
	b.WriteString(banner + "\n")
	b.WriteString("        THANK YOU FOR YOUR ORDER!       \n")
	b.WriteString(banner + "\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write ticket file %s: %w", path, err)
	}

	return path, nil
}

// ReadLog scans the legacy order log for the block recorded for the given
// order number. A block starts at a line mentioning "ORDER <n>" and runs
// through the closing separator line. Returns false when the log file or
// the entry is absent.
func (s *Store) ReadLog(orderNo string) (string, bool) {
	file, err := os.Open(s.logPath)
	if err != nil {
		return "", false
	}
	defer file.Close()

	var block strings.Builder
	found := false

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if !found && strings.Contains(line, "ORDER "+orderNo) {
			found = true
		}

		if found {
			block.WriteString(line + "\n")
			if strings.HasPrefix(line, "=============================") {
				break
			}
		}
	}

	if !found || scanner.Err() != nil {
		return "", false
	}
	return block.String(), true
}
