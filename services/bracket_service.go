package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/bracket-engine/brackets"
	"github.com/Dosada05/bracket-engine/export"
	"github.com/Dosada05/bracket-engine/participants"
	"github.com/Dosada05/bracket-engine/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const maxRoomNameLength = 64

// Broadcaster pushes messages to websocket rooms.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

type GenerateInput struct {
	Format      brackets.Format
	Competitors []string
	// Room, when set, receives the generated bracket over websocket.
	Room string
}

type BracketGeneratedPayload struct {
	Format  brackets.Format `json:"format"`
	Bracket brackets.Result `json:"bracket"`
}

type PreviewResult struct {
	SingleElimination *brackets.SingleEliminationResult `json:"single_elimination"`
	DoubleElimination *brackets.DoubleEliminationResult `json:"double_elimination"`
}

type PublishedExport struct {
	Format brackets.Format `json:"format"`
	Key    string          `json:"key"`
	URL    string          `json:"url"`
	ETag   string          `json:"etag,omitempty"`
}

type BracketService interface {
	Generate(ctx context.Context, input GenerateInput) (brackets.Result, error)
	Preview(ctx context.Context, competitors []string) (*PreviewResult, error)
	Export(ctx context.Context, format brackets.Format, competitors []string) (string, brackets.Result, error)
	Publish(ctx context.Context, format brackets.Format, competitors []string) (*PublishedExport, error)
}

type bracketService struct {
	hub           Broadcaster
	uploader      storage.FileUploader
	logger        *slog.Logger
	newRandomizer func() brackets.Randomizer
}

// NewBracketService wires the generators to their collaborators. hub and
// uploader are optional. newRandomizer supplies a fresh randomness source per
// generated bracket; nil uses the process-wide source.
func NewBracketService(
	hub Broadcaster,
	uploader storage.FileUploader,
	logger *slog.Logger,
	newRandomizer func() brackets.Randomizer,
) BracketService {
	if logger == nil {
		logger = slog.Default()
	}
	if newRandomizer == nil {
		newRandomizer = brackets.DefaultRandomizer
	}
	return &bracketService{
		hub:           hub,
		uploader:      uploader,
		logger:        logger,
		newRandomizer: newRandomizer,
	}
}

func (s *bracketService) generator(format brackets.Format) (brackets.BracketGenerator, error) {
	gen, err := brackets.NewGenerator(format,
		brackets.WithRandomizer(s.newRandomizer()),
		brackets.WithLogger(s.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return gen, nil
}

func (s *bracketService) generate(ctx context.Context, format brackets.Format, competitors []string) (brackets.Result, error) {
	gen, err := s.generator(format)
	if err != nil {
		return nil, err
	}
	field := participants.Normalize(competitors)
	res, err := gen.GenerateBracket(ctx, brackets.GenerateBracketParams{Competitors: field})
	if err != nil {
		return res, fmt.Errorf("failed to generate %s bracket for %d participants: %w", gen.GetName(), len(field), err)
	}
	s.logger.InfoContext(ctx, "bracket generated",
		slog.String("format", string(format)),
		slog.Int("participants", len(field)))
	return res, nil
}

func (s *bracketService) Generate(ctx context.Context, input GenerateInput) (brackets.Result, error) {
	room := strings.TrimSpace(input.Room)
	if len(room) > maxRoomNameLength {
		return nil, ErrRoomNameTooLong
	}

	res, err := s.generate(ctx, input.Format, input.Competitors)
	if err != nil {
		return res, err
	}

	if room != "" && s.hub != nil {
		s.hub.BroadcastToRoom(room, brackets.WebSocketMessage{
			Type:    brackets.MessageBracketGenerated,
			Payload: BracketGeneratedPayload{Format: input.Format, Bracket: res},
			RoomID:  room,
		})
	}
	return res, nil
}

// Preview generates both formats concurrently from independent copies of the
// competitor list.
func (s *bracketService) Preview(ctx context.Context, competitors []string) (*PreviewResult, error) {
	preview := &PreviewResult{}
	// Both formats run to completion even when one of them fails.
	var g errgroup.Group

	g.Go(func() error {
		field := append([]string(nil), competitors...)
		res, err := s.generate(ctx, brackets.FormatSingleElimination, field)
		if r, ok := res.(*brackets.SingleEliminationResult); ok {
			preview.SingleElimination = r
		}
		return err
	})
	g.Go(func() error {
		field := append([]string(nil), competitors...)
		res, err := s.generate(ctx, brackets.FormatDoubleElimination, field)
		if r, ok := res.(*brackets.DoubleEliminationResult); ok {
			preview.DoubleElimination = r
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return preview, err
	}
	return preview, nil
}

func (s *bracketService) Export(ctx context.Context, format brackets.Format, competitors []string) (string, brackets.Result, error) {
	res, err := s.generate(ctx, format, competitors)
	if err != nil {
		return "", res, err
	}
	text, err := export.Text(res)
	if err != nil {
		return "", res, fmt.Errorf("failed to export %s bracket: %w", format, err)
	}
	return text, res, nil
}

func (s *bracketService) Publish(ctx context.Context, format brackets.Format, competitors []string) (*PublishedExport, error) {
	if s.uploader == nil {
		return nil, ErrPublishingDisabled
	}
	text, _, err := s.Export(ctx, format, competitors)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("brackets/%s/%s.txt", format, uuid.NewString())
	uploaded, err := s.uploader.Upload(ctx, key, "text/plain; charset=utf-8", strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("failed to publish %s bracket: %w", format, err)
	}
	s.logger.InfoContext(ctx, "bracket published", slog.String("key", uploaded.Key))

	return &PublishedExport{
		Format: format,
		Key:    uploaded.Key,
		URL:    uploaded.Location,
		ETag:   uploaded.ETag,
	}, nil
}
