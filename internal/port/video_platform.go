package port

import (
	"context"

	"forkful/internal/domain"
)

// VideoPlatform abstracts the video platform's metadata and caption endpoints.
type VideoPlatform interface {
	VideoMetadata(ctx context.Context, videoID string) (*domain.VideoMetadata, error)
	// Transcript returns caption text for the video, or an error when captions
	// are unavailable. Callers treat transcript failures as optional input.
	Transcript(ctx context.Context, videoID string) (string, error)
}
