package report

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/telltaleatheist/ContentStudio/internal/chapters"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// writeDocx renders a chapter sheet: a document title followed by one
// line per chapter with the timestamp in bold.
func writeDocx(title string, list []chapters.Chapter, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, ch := range list {
		p := doc.AddParagraph("")
		p.AddText(ch.Timestamp).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		p.AddText("  " + ch.Title).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
