// =============================================================================
// Daily Sales Summary - File Manager Utility
// =============================================================================
//
// This module provides the file system side of the pipeline:
//   - Invoice discovery (*.txt in the invoices directory, sorted by name)
//   - Invoice reading (best-effort text decoding)
//   - Report writing (parent directories created, existing file replaced)
//   - Sample invoice naming for the generate command
//
// DISCOVERY RULES:
//   - Only the top level of the invoices directory is scanned
//   - The *.txt match is case-sensitive
//   - Directories whose names end in .txt are skipped
//   - Files are returned in lexicographic order of their names
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// InvoicePattern is the glob matched against file names in the invoices directory.
const InvoicePattern = "*.txt"

// utf8BOM is stripped from the start of invoice text.
const utf8BOM = "\ufeff"

// =============================================================================
// ERRORS
// =============================================================================

// DirectoryNotFoundError is returned when the invoices directory does not
// exist or is not a directory.
type DirectoryNotFoundError struct {
	// Path is the directory as given by the caller.
	Path string

	// Err is the underlying stat error. It is nil when Path exists but is
	// not a directory.
	Err error
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("invoices directory not found: %s", e.Path)
}

func (e *DirectoryNotFoundError) Unwrap() error { return e.Err }

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the pipeline.
type FileManager struct {
	// InvoicesDir is the directory scanned for invoice files.
	InvoicesDir string
}

// InvoiceFile is the raw content of one discovered invoice.
type InvoiceFile struct {
	// Name is the base file name. The parser uses it as the source identifier.
	Name string

	// Path is the full path of the file.
	Path string

	// Text is the decoded file content.
	Text string
}

// NewFileManager creates a new FileManager for the given invoices directory.
func NewFileManager(invoicesDir string) *FileManager {
	return &FileManager{InvoicesDir: invoicesDir}
}

// =============================================================================
// INVOICE DISCOVERY
// =============================================================================

// DiscoverInvoices lists the invoice files in the invoices directory.
//
// RETURNS:
//   - The file paths, sorted by file name.
//   - A *DirectoryNotFoundError if the directory is missing or not a directory.
func (fm *FileManager) DiscoverInvoices() ([]string, error) {
	info, err := os.Stat(fm.InvoicesDir)
	if err != nil {
		return nil, &DirectoryNotFoundError{Path: fm.InvoicesDir, Err: err}
	}
	if !info.IsDir() {
		return nil, &DirectoryNotFoundError{Path: fm.InvoicesDir}
	}

	// os.ReadDir returns entries sorted by file name.
	entries, err := os.ReadDir(fm.InvoicesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices directory: %w", err)
	}

	var result []string
	for _, entry := range entries {
		if matched, _ := filepath.Match(InvoicePattern, entry.Name()); !matched {
			continue
		}

		// Stat follows symlinks, so a link to a directory is skipped too.
		path := filepath.Join(fm.InvoicesDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		result = append(result, path)
	}

	return result, nil
}

// ReadInvoice reads one invoice file as text. Invalid UTF-8 sequences are
// dropped and a leading byte order mark is removed.
func ReadInvoice(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read invoice %s: %w", filepath.Base(path), err)
	}

	text := strings.ToValidUTF8(string(data), "")
	return strings.TrimPrefix(text, utf8BOM), nil
}

// LoadInvoices discovers and reads every invoice in the invoices directory.
//
// RETURNS:
//   - The invoices in discovery order. An empty directory yields no invoices
//     and no error.
//   - An error if the directory is missing or a file cannot be read.
func (fm *FileManager) LoadInvoices() ([]InvoiceFile, error) {
	paths, err := fm.DiscoverInvoices()
	if err != nil {
		return nil, err
	}

	invoices := make([]InvoiceFile, 0, len(paths))
	for _, path := range paths {
		text, err := ReadInvoice(path)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, InvoiceFile{
			Name: filepath.Base(path),
			Path: path,
			Text: text,
		})
	}

	return invoices, nil
}

// =============================================================================
// OUTPUT
// =============================================================================

// WriteReport writes text to path, replacing any existing content.
//
// PARAMETERS:
//   - text: The rendered report.
//   - path: The destination file. Missing parent directories are created.
//
// RETURNS:
//   - The absolute path of the written file.
//   - An error if the directory or file cannot be written.
func WriteReport(text, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(absPath, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return absPath, nil
}

// =============================================================================
// SAMPLE INVOICE NAMING
// =============================================================================

// GenerateInvoiceFileName returns a unique invoice file name of the form
// "invoice_<uuid>.txt".
func GenerateInvoiceFileName() string {
	return fmt.Sprintf("invoice_%s.txt", uuid.New().String())
}
