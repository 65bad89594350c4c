package ocr

import "context"

// StaticExtractor returns the same result for every image.
type StaticExtractor struct {
	Result Result
	Err    error
}

func (s StaticExtractor) Extract(ctx context.Context, _ []byte, _ string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if s.Err != nil {
		return Result{}, s.Err
	}
	return s.Result, nil
}
