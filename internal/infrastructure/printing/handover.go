package printing

import (
	"context"
	"fmt"
	"time"

	"github.com/packetery/backend/internal/domain/shipment"
	"go.uber.org/zap"
)

const handoverTemplate = "handover.html"

// HandoverRenderer renders handover sheets to PDF
type HandoverRenderer struct {
	engine *TemplateEngine
	pdf    PDFRenderer
	logger *zap.Logger
}

// NewHandoverRenderer creates a new HandoverRenderer
func NewHandoverRenderer(engine *TemplateEngine, pdf PDFRenderer, logger *zap.Logger) *HandoverRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HandoverRenderer{engine: engine, pdf: pdf, logger: logger}
}

type handoverView struct {
	Title  string
	Sheet  *shipment.HandoverSheet
	Totals []shipment.CODTotal
}

// RenderHTML builds the HTML of the sheet
func (r *HandoverRenderer) RenderHTML(sheet *shipment.HandoverSheet) (string, error) {
	if sheet.GeneratedAt.IsZero() {
		sheet.GeneratedAt = time.Now()
	}
	return r.engine.Render(handoverTemplate, handoverView{
		Title:  "Packeta handover sheet",
		Sheet:  sheet,
		Totals: sheet.CODTotals(),
	})
}

// RenderHandoverSheet builds the sheet HTML and prints it to an A4 PDF
func (r *HandoverRenderer) RenderHandoverSheet(ctx context.Context, sheet *shipment.HandoverSheet) ([]byte, error) {
	if len(sheet.Rows) == 0 {
		return nil, NewRenderError(ErrCodeInvalidHTML, "handover sheet has no packets", nil)
	}

	html, err := r.RenderHTML(sheet)
	if err != nil {
		return nil, err
	}

	result, err := r.pdf.Render(ctx, &RenderRequest{
		HTML:       html,
		Title:      "Packeta handover sheet",
		Margins:    DefaultMargins(),
		FooterHTML: `<div style="font-size:8px;width:100%;text-align:center;"><span class="pageNumber"></span> / <span class="totalPages"></span></div>`,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render handover sheet: %w", err)
	}

	r.logger.Debug("Handover sheet rendered",
		zap.Int("packets", len(sheet.Rows)),
		zap.Int("pages", result.PageCount),
	)
	return result.PDFData, nil
}

// Ensure HandoverRenderer implements shipment.SheetRenderer
var _ shipment.SheetRenderer = (*HandoverRenderer)(nil)
