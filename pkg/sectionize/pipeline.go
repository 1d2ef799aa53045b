package sectionize

import (
	"fmt"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"github.com/VivekMane57/sectionize/pkg/sectionize/strategy"
	"go.uber.org/zap"
)

// Pipeline turns segmented documents into keyed sections. It holds no
// per-document state and may be shared between goroutines.
type Pipeline struct {
	classifier *Classifier
	log        *zap.Logger
}

// NewPipeline returns a pipeline for opts. A nil logger disables logging.
func NewPipeline(opts Options, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{classifier: NewClassifier(opts), log: log}
}

// Transform extracts every sheet of doc. It returns false when the document
// holds no extractable section.
func (p *Pipeline) Transform(doc *models.Document) (*models.Output, bool) {
	out := models.NewOutput(doc.DocumentName)
	for _, sheet := range doc.Sheets {
		for _, s := range p.Sheet(sheet) {
			out.Add(allocateKey(out, sheet.Name, s.SectionTitle), s)
		}
	}
	p.log.Info("document transformed",
		zap.String("document", doc.DocumentName),
		zap.Int("sheets", len(doc.Sheets)),
		zap.Int("sections", out.Len()),
	)
	if out.Len() == 0 {
		return nil, false
	}
	return out, true
}

// Sheet extracts the sections of one sheet in production order. Context is
// threaded through the blocks in order and never leaves the sheet.
func (p *Pipeline) Sheet(sheet models.Sheet) []*models.Section {
	id := p.classifier.Identify(sheet.Name)
	if id == IdentityBifurcation {
		return p.classifier.Bifurcation().Sections(sheet.Name, sheet.Tables)
	}

	var (
		sections []*models.Section
		ctx      models.Context
	)
	routes := p.classifier.Strategies(id)
	for i, table := range sheet.Tables {
		if len(table.Data) == 0 {
			continue
		}
		var (
			parsed      *strategy.Parsed
			headerFound bool
			used        string
		)
		for _, s := range routes {
			parsed, ctx, headerFound = s.Extract(table.Block(), ctx)
			if parsed != nil {
				used = s.Name()
				break
			}
		}

		p.log.Debug("block dispatched",
			zap.String("sheet", sheet.Name),
			zap.Int("block", i),
			zap.String("identity", string(id)),
			zap.String("strategy", used),
			zap.Bool("header_found", headerFound),
			zap.Int("records", recordCount(parsed)),
		)
		if parsed == nil {
			continue
		}

		if headerFound || len(sections) == 0 {
			sections = append(sections, newSection(sheet.Name, i, table, parsed))
			continue
		}
		last := sections[len(sections)-1]
		last.Metrics = append(last.Metrics, parsed.Records...)
	}
	return sections
}

func newSection(sheet string, pos int, table models.Table, parsed *strategy.Parsed) *models.Section {
	title := parsed.Title
	if title == "" {
		n := table.TableIndex
		if n == 0 {
			n = pos + 1
		}
		title = fmt.Sprintf("table_%d", n)
	}
	return &models.Section{
		Sheet:        sheet,
		SectionTitle: title,
		StartRow:     table.StartRow,
		StartCol:     table.StartCol,
		RowCount:     table.RowCount,
		ColumnCount:  table.ColumnCount,
		Metrics:      parsed.Records,
	}
}

// allocateKey returns sheet_slug(title), suffixed _2, _3, ... until it is
// not yet used in out.
func allocateKey(out *models.Output, sheet, title string) string {
	base := sheet + "_" + strategy.Slug(title)
	key := base
	for n := 2; out.Has(key); n++ {
		key = fmt.Sprintf("%s_%d", base, n)
	}
	return key
}

func recordCount(parsed *strategy.Parsed) int {
	if parsed == nil {
		return 0
	}
	return len(parsed.Records)
}
