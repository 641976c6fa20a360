package emporium

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// A book lives in a .jsonl file under the syndicate directory. Its name is
// the relative path without the extension.

// FindBook returns the unique book matching the name. An empty query with no
// book files yields a fresh default book.
func FindBook(path, query string) (*Book, error) {
	bookPaths, err := findBookPaths(path, query)
	if err != nil {
		return nil, err
	}
	switch len(bookPaths) {
	case 0:
		if query == "" {
			b := NewBook()
			b.name = "book"
			return b, nil
		}
		return nil, fmt.Errorf("could not find book %q", query)
	case 1:
		return loadBookFile(path, bookPaths[0])
	default:
		return nil, fmt.Errorf("multiple books found for %q", query)
	}
}

// FindBooks discovers and loads book files under a directory. If query is
// empty, all books are loaded; otherwise only the named one.
func FindBooks(path, query string) ([]*Book, error) {
	bookPaths, err := findBookPaths(path, query)
	if err != nil {
		return nil, err
	}

	var books []*Book
	for _, fullPath := range bookPaths {
		book, err := loadBookFile(path, fullPath)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// SaveBook writes the book back to its file under the syndicate directory.
func SaveBook(path string, book *Book) error {
	if book.name == "" {
		return fmt.Errorf("cannot save a book without a name")
	}
	fullPath := filepath.Join(path, book.name+".jsonl")
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("could not create book directory: %w", err)
	}
	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("could not create book file %q: %w", fullPath, err)
	}
	defer f.Close()
	return EncodeBook(f, book)
}

func findBookPaths(path, query string) ([]string, error) {
	if query != "" {
		fullPath := filepath.Join(path, query+".jsonl")
		if _, err := os.Stat(fullPath); err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, err
		}
		return []string{fullPath}, nil
	}

	var paths []string
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && p == path {
				return filepath.SkipAll
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".jsonl") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func loadBookFile(base, fullPath string) (*Book, error) {
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", fullPath, err)
	}
	defer f.Close()

	book, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", fullPath, err)
	}

	rel, err := filepath.Rel(base, fullPath)
	if err != nil {
		rel = filepath.Base(fullPath)
	}
	book.name = strings.TrimSuffix(rel, ".jsonl")
	return book, nil
}
