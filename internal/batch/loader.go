package batch

import (
	"context"
	"path/filepath"

	"sshub/ledger-assist/internal/fileutils"

	"golang.org/x/sync/errgroup"
)

// TextExtensions are the file extensions loaded as receipt text.
var TextExtensions = []string{".txt"}

// maxOpenFiles bounds concurrent reads in LoadDirectory.
const maxOpenFiles = 8

// LoadDirectory reads every receipt text file directly inside dir. Documents
// are sorted by file name and labelled with their base name.
func LoadDirectory(ctx context.Context, dir string) ([]Document, error) {
	files, err := fileutils.ListFilesWithExtension(dir, TextExtensions...)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxOpenFiles)

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fileutils.ReadFile(file)
			if err != nil {
				return err
			}
			docs[i] = Document{Source: filepath.Base(file), Text: string(data)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
