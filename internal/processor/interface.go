package processor

import "context"

// Processor turns one input file (subtitle or video) into a published
// chapter list.
type Processor interface {
	Process(ctx context.Context, path string) error
}
