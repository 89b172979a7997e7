package images

import (
	"context"

	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

// System stores product images in the platform bucket.
type System interface {
	Upload(ctx context.Context, filename string, data []byte, contentType string) (*supabase.Object, error)
}
