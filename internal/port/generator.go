package port

import "context"

// Generator abstracts the generative model endpoint. Both methods return the
// model's reply as a raw JSON document; callers coerce it into domain shapes.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) ([]byte, error)
	GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) ([]byte, error)
}
