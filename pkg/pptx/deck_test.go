package pptx

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/store-deck-api/internal/config"
)

func testDeckConfig(t *testing.T) config.Deck {
	t.Helper()

	return config.Deck{
		OutputDir:     t.TempDir(),
		ScratchDir:    t.TempDir(),
		PublicBaseURL: "http://localhost:8000/uploads/",
	}
}

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer reader.Close()

	parts := make(map[string]string)

	for _, file := range reader.File {
		rc, err := file.Open()
		require.NoError(t, err)

		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		parts[file.Name] = string(content)
	}

	return parts
}

func TestDeckSave(t *testing.T) {
	cfg := testDeckConfig(t)

	deck, err := NewDeck(cfg)
	require.NoError(t, err)

	require.NoError(t, deck.AddSlide("Resumo Executivo", "Receita em alta no período."))
	require.NoError(t, deck.AddSlide("Projeções", "Crescimento projetado de 12%."))
	assert.Equal(t, 2, deck.SlideCount())

	artifact, err := deck.Save("deck-teste.pptx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "deck-teste.pptx"), artifact.Path)
	assert.Equal(t, "http://localhost:8000/uploads/deck-teste.pptx", artifact.URL)

	parts := readArchive(t, artifact.Path)

	require.Contains(t, parts, "ppt/presentation.xml")
	require.Contains(t, parts, "ppt/slides/slide1.xml")
	require.Contains(t, parts, "ppt/slides/slide2.xml")
	require.Contains(t, parts, "ppt/_rels/presentation.xml.rels")
	require.Contains(t, parts, "[Content_Types].xml")
	require.Contains(t, parts, "_rels/.rels")

	presentation := parts["ppt/presentation.xml"]
	assert.Contains(t, presentation, `<p:sldId id="257" r:id="rId1"/>`)
	assert.Contains(t, presentation, `<p:sldId id="258" r:id="rId2"/>`)

	// Toda referência da lista de slides precisa resolver para uma parte existente
	rels := parts["ppt/_rels/presentation.xml.rels"]
	assert.Contains(t, rels, `Id="rId1"`)
	assert.Contains(t, rels, `Target="slides/slide1.xml"`)
	assert.Contains(t, rels, `Id="rId2"`)
	assert.Contains(t, rels, `Target="slides/slide2.xml"`)

	assert.Contains(t, parts["ppt/slides/slide1.xml"], "<a:t>Resumo Executivo</a:t>")
	assert.Contains(t, parts["ppt/slides/slide2.xml"], "<a:t>Crescimento projetado de 12%.</a:t>")
}

func TestDeckContentTypesPerSlide(t *testing.T) {
	cfg := testDeckConfig(t)

	deck, err := NewDeck(cfg)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, deck.AddSlide("Título", "Conteúdo"))
	}

	artifact, err := deck.Save("deck-tipos.pptx")
	require.NoError(t, err)

	parts := readArchive(t, artifact.Path)
	contentTypes := parts["[Content_Types].xml"]

	assert.Contains(t, contentTypes, `<Default Extension="xml"`)
	assert.Contains(t, contentTypes, `<Default Extension="rels"`)
	assert.Contains(t, contentTypes, `PartName="/ppt/presentation.xml"`)

	for _, part := range []string{"slide1", "slide2", "slide3"} {
		assert.Contains(t, contentTypes, `PartName="/ppt/slides/`+part+`.xml"`)
	}
}

func TestDeckEscapesReservedCharacters(t *testing.T) {
	cfg := testDeckConfig(t)

	deck, err := NewDeck(cfg)
	require.NoError(t, err)

	require.NoError(t, deck.AddSlide(`Vendas & Marketing`, `<script>alert("x")</script>`))

	artifact, err := deck.Save("deck-escape.pptx")
	require.NoError(t, err)

	parts := readArchive(t, artifact.Path)
	slide := parts["ppt/slides/slide1.xml"]

	assert.Contains(t, slide, "<a:t>Vendas &amp; Marketing</a:t>")
	assert.Contains(t, slide, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;")
	assert.NotContains(t, slide, "<script>")
}

func TestDeckFinalized(t *testing.T) {
	cfg := testDeckConfig(t)

	deck, err := NewDeck(cfg)
	require.NoError(t, err)

	require.NoError(t, deck.AddSlide("Único", "Slide"))

	artifact, err := deck.Save("deck-final.pptx")
	require.NoError(t, err)

	// Mutação e novo Save após a finalização falham sem alterar o pacote publicado
	assert.ErrorIs(t, deck.AddSlide("Extra", "Não entra"), ErrDeckFinalized)

	_, err = deck.Save("deck-final.pptx")
	assert.ErrorIs(t, err, ErrDeckFinalized)

	parts := readArchive(t, artifact.Path)
	assert.NotContains(t, parts, "ppt/slides/slide2.xml")
	assert.Equal(t, 1, strings.Count(parts["ppt/presentation.xml"], "<p:sldId "))
}

func TestDeckEmptyIsValid(t *testing.T) {
	cfg := testDeckConfig(t)

	deck, err := NewDeck(cfg)
	require.NoError(t, err)

	artifact, err := deck.Save("deck-vazio.pptx")
	require.NoError(t, err)

	parts := readArchive(t, artifact.Path)

	assert.Contains(t, parts["ppt/presentation.xml"], "<p:sldIdLst></p:sldIdLst>")
	assert.NotContains(t, parts["ppt/_rels/presentation.xml.rels"], relTypeSlide)
}
