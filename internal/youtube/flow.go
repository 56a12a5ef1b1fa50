package youtube

import (
	"context"
	"log"
	"sync"

	"forkful/internal/domain"
	"forkful/internal/extractor"
	"forkful/internal/port"
)

// FlowState is one phase of the video extraction flow.
type FlowState string

const (
	StateIdle       FlowState = "idle"
	StateFetching   FlowState = "fetching"
	StateExtracting FlowState = "extracting"
	StateSuccess    FlowState = "success"
	StateError      FlowState = "error"
)

// Flow drives one video extraction as a small state machine:
// idle, fetching, extracting, then success or error. The preview is non-nil
// only in success, error always carries a typed value, and Reset returns to idle
// from any state, cancelling whatever call is in flight so a late response
// cannot clobber newer state.
type Flow struct {
	platform  port.VideoPlatform
	generator port.Generator

	mu      sync.Mutex
	state   FlowState
	preview *domain.YouTubeRecipePreview
	err     *domain.ExtractionError
	cancel  context.CancelFunc
	run     int // generation counter; a completed run older than this is stale
}

// NewFlow creates an idle extraction flow.
func NewFlow(platform port.VideoPlatform, generator port.Generator) *Flow {
	return &Flow{
		platform:  platform,
		generator: generator,
		state:     StateIdle,
	}
}

// State returns the current phase.
func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Preview returns the assembled recipe preview; non-nil only in success.
func (f *Flow) Preview() *domain.YouTubeRecipePreview {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.preview
}

// Err returns the typed failure; non-nil only in error.
func (f *Flow) Err() *domain.ExtractionError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Reset cancels any in-flight work and returns unconditionally to idle,
// clearing all fields. Callable from any state.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.run++
	f.state = StateIdle
	f.preview = nil
	f.err = nil
}

// Extract runs the flow for a video URL or bare ID. It returns the preview on
// success or the typed error that moved the flow into the error state.
func (f *Flow) Extract(ctx context.Context, input string) (*domain.YouTubeRecipePreview, *domain.ExtractionError) {
	videoID := ExtractVideoID(input)
	if videoID == "" {
		ee := domain.NewExtractionError(domain.ErrInvalidVideoID,
			"could not find a video ID in: "+input)
		f.fail(0, ee)
		return nil, ee
	}

	ctx, run := f.begin(ctx)

	meta, err := f.platform.VideoMetadata(ctx, videoID)
	if err != nil {
		ee := domain.AsExtractionError(err)
		f.fail(run, ee)
		return nil, ee
	}

	f.transition(run, StateExtracting)

	// Captions are optional: a missing track is normal and never surfaces.
	transcript, err := f.platform.Transcript(ctx, videoID)
	if err != nil {
		log.Printf("youtube.Flow: captions unavailable for %s: %v", videoID, err)
		transcript = ""
	}

	prompt := extractor.BuildYouTubePrompt(meta.Title, meta.Description, transcript)
	raw, err := f.generator.GenerateText(ctx, prompt)
	if err != nil {
		ee := domain.AsExtractionError(err)
		f.fail(run, ee)
		return nil, ee
	}

	rec, notes, err := extractor.CoerceRecipeReply(raw)
	if err != nil {
		ee := domain.AsExtractionError(err)
		if ee.Type == domain.ErrNoRecipeFound {
			ee.Message = "no recipe found in this video, you can still add it manually"
		}
		f.fail(run, ee)
		return nil, ee
	}

	preview := &domain.YouTubeRecipePreview{
		YouTubeRecipe: domain.YouTubeRecipe{
			Title:           rec.Title,
			Ingredients:     rec.Ingredients,
			Instructions:    rec.Instructions,
			Servings:        rec.Servings,
			PrepTime:        rec.PrepTime,
			CookTime:        rec.CookTime,
			Confidence:      rec.Confidence,
			ExtractionNotes: notes,
		},
		VideoID:      videoID,
		VideoTitle:   meta.Title,
		ThumbnailURL: meta.ThumbnailURL,
		SourceURL:    WatchURL(videoID),
	}
	f.succeed(run, preview)
	return preview, nil
}

// begin moves to fetching and arms a cancellable context for this run.
func (f *Flow) begin(parent context.Context) (context.Context, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	f.cancel = cancel
	f.run++
	f.state = StateFetching
	f.preview = nil
	f.err = nil
	return ctx, f.run
}

func (f *Flow) transition(run int, state FlowState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if run != f.run {
		return // reset happened mid-flight
	}
	f.state = state
}

func (f *Flow) succeed(run int, preview *domain.YouTubeRecipePreview) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if run != f.run {
		return
	}
	f.state = StateSuccess
	f.preview = preview
	f.err = nil
	f.cancel = nil
}

func (f *Flow) fail(run int, err *domain.ExtractionError) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if run != 0 && run != f.run {
		return
	}
	f.state = StateError
	f.preview = nil
	f.err = err
	f.cancel = nil
}
