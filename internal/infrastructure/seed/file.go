package seed

import (
	"context"
	"fmt"
	"os"
)

// File - начальные данные из локального JSON-файла
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return data, nil
}

func (f *File) String() string {
	return f.path
}
