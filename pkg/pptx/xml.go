package pptx

import (
	"fmt"
	"strings"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	nsPresentation  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawing       = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsDocRels       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	ctPresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	relTypeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeSlide    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escapeText escapa o texto para inclusão literal nas partes XML.
// Todo texto vindo do chamador passa por aqui, sem exceção.
func escapeText(s string) string {
	return escaper.Replace(s)
}

// presentationXML gera a parte principal do documento, com uma referência
// ordenada rId<n> por slide (1:1 com o índice do slide, sem lacunas)
func presentationXML(slides []Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation xmlns:p="%s" xmlns:r="%s">`, nsPresentation, nsDocRels)
	b.WriteString("<p:sldIdLst>")

	for _, slide := range slides {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+slide.Num, slide.Num)
	}

	b.WriteString("</p:sldIdLst>")
	b.WriteString(`<p:sldSz cx="9144000" cy="6858000"/>`)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString("</p:presentation>")

	return b.String()
}

// slideXML gera a parte de um slide: título e conteúdo como dois text runs
func slideXML(slide Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld xmlns:p="%s" xmlns:a="%s">`, nsPresentation, nsDrawing)
	b.WriteString("<p:cSld><p:spTree><p:sp><p:txBody>")
	fmt.Fprintf(&b, "<a:p><a:r><a:t>%s</a:t></a:r></a:p>", escapeText(slide.Title))
	fmt.Fprintf(&b, "<a:p><a:r><a:t>%s</a:t></a:r></a:p>", escapeText(slide.Content))
	b.WriteString("</p:txBody></p:sp></p:spTree></p:cSld></p:sld>")

	return b.String()
}

// contentTypesXML gera o manifesto do pacote. Cada parte de slide recebe o seu
// próprio Override; declarar apenas o primeiro slide deixaria os demais sem
// content type válido.
func contentTypesXML(slides []Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<Types xmlns="%s">`, nsContentTypes)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	fmt.Fprintf(&b, `<Default Extension="rels" ContentType="%s"/>`, ctRelationships)
	fmt.Fprintf(&b, `<Override PartName="/ppt/presentation.xml" ContentType="%s"/>`, ctPresentation)

	for _, slide := range slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="%s"/>`, slide.Num, ctSlide)
	}

	b.WriteString("</Types>")

	return b.String()
}

// presentationRelsXML gera o relationship rId<n> → slides/slide<n>.xml de cada
// referência da lista ordenada do documento
func presentationRelsXML(slides []Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<Relationships xmlns="%s">`, nsPackageRels)

	for _, slide := range slides {
		fmt.Fprintf(
			&b,
			`<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`,
			slide.Num, relTypeSlide, slide.Num,
		)
	}

	b.WriteString("</Relationships>")

	return b.String()
}

// rootRelsXML liga a raiz do pacote à parte principal do documento
func rootRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<Relationships xmlns="%s">`, nsPackageRels)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="/ppt/presentation.xml"/>`, relTypeDocument)
	b.WriteString("</Relationships>")

	return b.String()
}
