package knowledge

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"jan-server/services/support-api/internal/utils/platformerrors"
)

// Service reads the knowledge base and renders it for prompt grounding.
type Service interface {
	ListEntries(ctx context.Context) ([]FAQEntry, error)
	Context(ctx context.Context) (string, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the knowledge service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "knowledge-service").Logger(),
	}
}

func (s *service) ListEntries(ctx context.Context) ([]FAQEntry, error) {
	entries, err := s.repo.ListFAQs(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list faq entries")
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "list faq entries")
	}
	return entries, nil
}

// Context flattens every entry into Q/A pairs separated by a blank line.
func (s *service) Context(ctx context.Context) (string, error) {
	entries, err := s.ListEntries(ctx)
	if err != nil {
		return "", err
	}
	return Render(entries), nil
}

// Render formats entries as the grounding block.
func Render(entries []FAQEntry) string {
	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		blocks = append(blocks, "Q: "+entry.Question+"\nA: "+entry.Answer)
	}
	return strings.Join(blocks, "\n\n")
}
