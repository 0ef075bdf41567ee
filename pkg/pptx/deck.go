// Package pptx monta apresentações .pptx mínimas (Open Packaging Conventions):
// um manifesto de content types, o grafo de relationships e uma parte XML por
// slide, compactados em um único arquivo zip.
package pptx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-deck-api/internal/config"
	"github.com/vfg2006/store-deck-api/pkg/utils"
)

var (
	// ErrDeckFinalized indica uso do deck após Save; o deck é write-once
	ErrDeckFinalized = errors.New("deck já finalizado")

	// ErrPackageWrite indica falha ao gravar o pacote no armazenamento durável
	ErrPackageWrite = errors.New("falha ao gravar o pacote do deck")
)

// Slide é uma entrada do deck; Num é 1-based e atribuído no AddSlide
type Slide struct {
	Num     int
	Title   string
	Content string
}

// Artifact é o handle do pacote publicado
type Artifact struct {
	Path string
	URL  string
}

// Deck acumula slides e serializa o pacote uma única vez.
// Ciclo de vida: vazio → em construção (AddSlide) → salvo (Save, terminal).
type Deck struct {
	cfg        config.Deck
	slides     []Slide
	scratchDir string
	saved      bool
}

// NewDeck cria o deck e seu diretório de trabalho exclusivo.
// O sufixo aleatório garante que builds concorrentes não se misturem.
func NewDeck(cfg config.Deck) (*Deck, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar sufixo do diretório de trabalho: %w", err)
	}

	scratchDir := filepath.Join(cfg.ScratchDir, "deck-scratch-"+id)

	dirs := []string{
		filepath.Join(scratchDir, "ppt", "slides"),
		filepath.Join(scratchDir, "ppt", "_rels"),
		filepath.Join(scratchDir, "_rels"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("erro ao criar diretório de trabalho: %w", err)
		}
	}

	return &Deck{
		cfg:        cfg,
		slides:     make([]Slide, 0),
		scratchDir: scratchDir,
	}, nil
}

// AddSlide adiciona um par título/conteúdo ao final do deck
func (d *Deck) AddSlide(title, content string) error {
	if d.saved {
		return ErrDeckFinalized
	}

	d.slides = append(d.slides, Slide{
		Num:     len(d.slides) + 1,
		Title:   title,
		Content: content,
	})

	return nil
}

// SlideCount retorna a quantidade de slides adicionados até o momento
func (d *Deck) SlideCount() int {
	return len(d.slides)
}

// Save serializa o deck, publica o arquivo de forma atômica e retorna o handle.
// O diretório de trabalho é removido mesmo quando a gravação falha; um deck
// vazio produz um pacote válido com lista de slides vazia.
func (d *Deck) Save(filename string) (*Artifact, error) {
	if d.saved {
		return nil, ErrDeckFinalized
	}
	d.saved = true

	// Limpeza incondicional do diretório de trabalho
	defer func() {
		if err := os.RemoveAll(d.scratchDir); err != nil {
			logrus.WithError(err).WithField("scratch_dir", d.scratchDir).
				Warn("Erro ao remover diretório de trabalho do deck")
		}
	}()

	if err := d.writeParts(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}

	if err := os.MkdirAll(d.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}

	finalPath := filepath.Join(d.cfg.OutputDir, filename)
	tempPath := filepath.Join(d.cfg.OutputDir, "."+filename+".tmp")

	if err := createArchive(d.scratchDir, tempPath); err != nil {
		_ = os.Remove(tempPath)
		return nil, fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}

	// Publicação atômica: o arquivo só aparece no caminho final completo
	if err := os.Rename(tempPath, finalPath); err != nil {
		_ = os.Remove(tempPath)
		return nil, fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}

	return &Artifact{
		Path: finalPath,
		URL:  strings.TrimRight(d.cfg.PublicBaseURL, "/") + "/" + filename,
	}, nil
}

// writeParts materializa todas as partes do pacote no diretório de trabalho
func (d *Deck) writeParts() error {
	if err := d.writePart(filepath.Join("ppt", "presentation.xml"), presentationXML(d.slides)); err != nil {
		return err
	}

	for _, slide := range d.slides {
		name := filepath.Join("ppt", "slides", fmt.Sprintf("slide%d.xml", slide.Num))
		if err := d.writePart(name, slideXML(slide)); err != nil {
			return err
		}
	}

	if err := d.writePart(filepath.Join("ppt", "_rels", "presentation.xml.rels"), presentationRelsXML(d.slides)); err != nil {
		return err
	}

	if err := d.writePart("[Content_Types].xml", contentTypesXML(d.slides)); err != nil {
		return err
	}

	return d.writePart(filepath.Join("_rels", ".rels"), rootRelsXML())
}

func (d *Deck) writePart(name, content string) error {
	if err := os.WriteFile(filepath.Join(d.scratchDir, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("erro ao gravar a parte %s: %w", name, err)
	}

	return nil
}
