// internal/harness/writer.go
package harness

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// RecordWriter appends experiment rows as CSV, flushing after every row so an
// interrupted run keeps what it has produced.
type RecordWriter struct {
	csv    *csv.Writer
	closer io.Closer
}

// NewRecordWriter writes the header to w and returns a writer for the rows.
func NewRecordWriter(w io.Writer) (*RecordWriter, error) {
	rw := &RecordWriter{csv: csv.NewWriter(w)}
	if err := rw.writeRow(Header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return rw, nil
}

// CreateRecordFile truncates or creates path and returns a RecordWriter for it.
func CreateRecordFile(path string) (*RecordWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	rw, err := NewRecordWriter(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	rw.closer = f
	return rw, nil
}

// Write appends one record.
func (w *RecordWriter) Write(r Record) error {
	return w.writeRow(r.Row())
}

func (w *RecordWriter) writeRow(row []string) error {
	if err := w.csv.Write(row); err != nil {
		return err
	}
	w.csv.Flush()
	return w.csv.Error()
}

// Close flushes pending output and closes the underlying file, if any.
func (w *RecordWriter) Close() error {
	w.csv.Flush()
	err := w.csv.Error()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
