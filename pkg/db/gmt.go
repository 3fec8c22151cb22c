package db

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yumyai/genesetexpander/pkg/model"
)

var ErrGeneSetFileNotExists = errors.New("gene set file does not exist")

const maxGMTLine = 16 * 1024 * 1024

// GMTFile is a tab-separated gene-set file: set id, label, then member ids.
type GMTFile struct {
	Path string
}

func (f GMTFile) LoadInto(ctx context.Context, c *model.Collection) error {
	fh, err := os.Open(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrGeneSetFileNotExists, f.Path)
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer fh.Close()

	if err := ReadGMT(ctx, fh, c); err != nil {
		return fmt.Errorf("read %s: %w", f.Path, err)
	}
	return nil
}

// ReadGMT parses gene sets from r into c. Lines with fewer than three columns
// are skipped.
func ReadGMT(ctx context.Context, r io.Reader, c *model.Collection) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxGMTLine)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		cols := strings.Split(strings.TrimSpace(scanner.Text()), "\t")
		if len(cols) < 3 {
			continue
		}

		members := make([]string, len(cols)-2)
		copy(members, cols[2:])
		c.Add(&model.GeneSet{
			ID:      cols[0],
			Label:   cols[1],
			Members: members,
		})
	}
	return scanner.Err()
}
