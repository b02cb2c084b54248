package interfaces

import (
	"context"
	"io"
)

// IAttachmentStorage persists proof-of-transfer files and returns their location.
type IAttachmentStorage interface {
	Save(ctx context.Context, key string, data io.Reader, contentType string) (location string, err error)
}
