package pptx

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// createArchive empacota o conteúdo do diretório de trabalho como um arquivo
// ZIP em destPath, preservando os caminhos relativos das partes
func createArchive(scratchDir, destPath string) error {
	out, err := os.Create(destPath)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(out)

	err = filepath.WalkDir(scratchDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(scratchDir, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		_, err = io.Copy(w, in)

		return err
	})
	if err != nil {
		zw.Close()
		out.Close()

		return err
	}

	if err := zw.Close(); err != nil {
		out.Close()

		return err
	}

	return out.Close()
}
