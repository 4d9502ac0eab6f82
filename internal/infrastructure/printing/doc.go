// Package printing renders HTML documents to PDF with headless Chrome.
//
// It is used for the handover sheet, the list of submitted packets a
// merchant hands to the courier together with the parcels:
//
//	pdf, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{NoSandbox: true})
//	if err != nil {
//	    return err
//	}
//	sheets := printing.NewHandoverRenderer(printing.NewTemplateEngine(), pdf, logger)
//	data, err := sheets.RenderHandoverSheet(ctx, sheet)
package printing
