// Package pipeline sequences normalization, segmentation, recognition,
// merging, and spatial anchoring into one page-processing run.
//
//	engine, err := ocr.NewTesseract()
//	if err != nil {
//	    // handle error
//	}
//	defer engine.Close()
//
//	p := pipeline.New(engine)
//	result, err := p.RunWithFields(ctx, img, fields.DefaultMedicalLabels())
//
// A Pipeline is stateless between invocations: each call operates on its own
// bitmap and produces an independent result, so one Pipeline may serve many
// concurrent callers as long as the recognition engine allows it.
package pipeline
