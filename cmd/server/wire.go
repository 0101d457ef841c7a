//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"jan-server/services/support-api/internal/config"
	"jan-server/services/support-api/internal/domain/conversation"
	"jan-server/services/support-api/internal/domain/knowledge"
	"jan-server/services/support-api/internal/domain/reply"
	"jan-server/services/support-api/internal/infrastructure/llmprovider"
	"jan-server/services/support-api/internal/infrastructure/logger"
	conversationrepo "jan-server/services/support-api/internal/infrastructure/repository/conversation"
	knowledgerepo "jan-server/services/support-api/internal/infrastructure/repository/knowledge"
	"jan-server/services/support-api/internal/interfaces/httpserver"
)

var knowledgeSet = wire.NewSet(
	knowledgerepo.NewGormRepository,
	wire.Bind(new(knowledge.Repository), new(*knowledgerepo.GormRepository)),
	knowledge.NewService,
	wire.Bind(new(reply.KnowledgeSource), new(knowledge.Service)),
)

var conversationSet = wire.NewSet(
	conversationrepo.NewGormRepository,
	wire.Bind(new(conversation.Repository), new(*conversationrepo.GormRepository)),
	wire.Bind(new(reply.HistorySource), new(*conversationrepo.GormRepository)),
	newReplyGenerator,
	wire.Bind(new(conversation.ReplyGenerator), new(*reply.Generator)),
	newConversationConfig,
	conversation.NewService,
)

// BuildApplication assembles the support service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		llmprovider.NewProvider,
		knowledgeSet,
		conversationSet,
		newReadinessCheck,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}
