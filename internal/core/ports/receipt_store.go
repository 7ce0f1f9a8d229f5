package ports

// ReceiptStore is the contract for the auxiliary receipt I/O: generating
// printable ticket files and looking entries up in the legacy order log.
// Receipt formatting consumes order data already computed by the core; it
// never feeds back into it.
type ReceiptStore interface {
	// Save writes a formatted ticket file for the order and returns the
	// path of the created file.
	Save(orderNo string, state string, lines []string, total string) (string, error)

	// ReadLog returns the raw log block recorded for the order, or false
	// when the log or the entry is absent.
	ReadLog(orderNo string) (string, bool)
}
