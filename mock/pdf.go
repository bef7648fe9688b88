package mock

import (
	"context"

	"github.com/skillpack/skillpack"
)

var _ skillpack.PDFDecoder = (*PDFDecoder)(nil)

// PDFDecoder is a mock implementation of skillpack.PDFDecoder.
type PDFDecoder struct {
	PageCountFn  func(ctx context.Context) (int, error)
	DecodePageFn func(ctx context.Context, index int, opts skillpack.PDFDecodeOptions) (*skillpack.PDFPage, error)
}

func (d *PDFDecoder) PageCount(ctx context.Context) (int, error) {
	return d.PageCountFn(ctx)
}

func (d *PDFDecoder) DecodePage(ctx context.Context, index int, opts skillpack.PDFDecodeOptions) (*skillpack.PDFPage, error) {
	return d.DecodePageFn(ctx, index, opts)
}
