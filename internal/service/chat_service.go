package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"healthsphere-ml-be/internal/constant"
	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/entity"
	"healthsphere-ml-be/internal/mapper"
	"healthsphere-ml-be/internal/pkg/logger"
	"healthsphere-ml-be/internal/pkg/serverutils"
	"healthsphere-ml-be/internal/repository/memory"

	"github.com/google/uuid"
)

// IChatService runs the rule-based health coaching conversations.
type IChatService interface {
	ProcessMessage(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	StartConversation(ctx context.Context, request *dto.StartConversationRequest) (*dto.StartConversationResponse, error)
	GetConversationHistory(ctx context.Context, conversationId string) (*dto.ConversationHistoryResponse, error)
	DeleteConversation(ctx context.Context, conversationId string) error
	GetAvailableContexts(ctx context.Context) (*dto.ContextsResponse, error)
}

type chatService struct {
	conversationRepository *memory.ConversationRepository
	chatMapper             *mapper.ChatMapper
	sysLogger              logger.ILogger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewChatService(
	conversationRepository *memory.ConversationRepository,
	chatMapper *mapper.ChatMapper,
	seed int64,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		conversationRepository: conversationRepository,
		chatMapper:             chatMapper,
		sysLogger:              sysLogger,
		rng:                    rand.New(rand.NewSource(seed)),
	}
}

// ProcessMessage appends the user message and a generated reply to the
// conversation log. An empty conversation_id starts a new conversation.
func (s *chatService) ProcessMessage(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	contextName := resolveContext(request.Context)

	var conversationId uuid.UUID
	if request.ConversationId == "" {
		conversation := newConversation(request.UserId, contextName)
		s.conversationRepository.Save(conversation)
		conversationId = conversation.Id
	} else {
		parsed, err := uuid.Parse(request.ConversationId)
		if err != nil {
			return nil, serverutils.NewValidationError("invalid conversation_id: %s", request.ConversationId)
		}
		if _, found := s.conversationRepository.Get(parsed); !found {
			return nil, serverutils.NewNotFoundError("conversation '%s' not found", request.ConversationId)
		}
		conversationId = parsed
	}

	rule := matchRule(request.Message)
	response := s.pick(rule.Responses)

	now := time.Now()
	s.conversationRepository.Append(conversationId,
		entity.Message{Message: request.Message, IsUser: true, Timestamp: now, UserId: request.UserId},
		entity.Message{Message: response, IsUser: false, Timestamp: now, UserId: request.UserId},
	)

	contextInfo := constant.ChatContexts[contextName]

	s.sysLogger.Info("chat", "message processed", map[string]interface{}{
		"conversation_id": conversationId.String(),
		"topic":           rule.Topic,
		"user_id":         request.UserId,
	})

	return &dto.ChatResponse{
		Response:       response,
		ConversationId: conversationId,
		Suggestions:    rule.Suggestions,
		Context: dto.ChatContextMeta{
			ContextType: contextName,
			Personality: contextInfo.Personality,
			Expertise:   contextInfo.Expertise,
		},
	}, nil
}

func (s *chatService) StartConversation(ctx context.Context, request *dto.StartConversationRequest) (*dto.StartConversationResponse, error) {
	contextName := resolveContext(request.Context)

	conversation := newConversation(request.UserId, contextName)
	s.conversationRepository.Save(conversation)

	s.sysLogger.Info("chat", "conversation started", map[string]interface{}{
		"conversation_id": conversation.Id.String(),
		"context":         contextName,
		"user_id":         request.UserId,
	})

	return &dto.StartConversationResponse{
		ConversationId: conversation.Id,
		Context:        contextName,
	}, nil
}

func (s *chatService) GetConversationHistory(ctx context.Context, conversationId string) (*dto.ConversationHistoryResponse, error) {
	parsed, err := uuid.Parse(conversationId)
	if err != nil {
		return nil, serverutils.NewValidationError("invalid conversation_id: %s", conversationId)
	}

	conversation, found := s.conversationRepository.Get(parsed)
	if !found {
		return nil, serverutils.NewNotFoundError("conversation '%s' not found", conversationId)
	}

	return s.chatMapper.ConversationToHistory(conversation), nil
}

// DeleteConversation is idempotent: deleting an unknown id is not an error.
func (s *chatService) DeleteConversation(ctx context.Context, conversationId string) error {
	parsed, err := uuid.Parse(conversationId)
	if err != nil {
		return serverutils.NewValidationError("invalid conversation_id: %s", conversationId)
	}

	s.conversationRepository.Delete(parsed)
	return nil
}

func (s *chatService) GetAvailableContexts(ctx context.Context) (*dto.ContextsResponse, error) {
	contexts := make(map[string]dto.ChatContextDetail, len(constant.ChatContexts))
	for name, info := range constant.ChatContexts {
		contexts[name] = dto.ChatContextDetail{
			Description: info.Description,
			Personality: info.Personality,
			Expertise:   info.Expertise,
		}
	}

	return &dto.ContextsResponse{
		Contexts:   contexts,
		TotalCount: len(contexts),
	}, nil
}

func (s *chatService) pick(responses []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return responses[s.rng.Intn(len(responses))]
}

func newConversation(userId, contextName string) *entity.Conversation {
	now := time.Now()
	return &entity.Conversation{
		Id:           uuid.New(),
		UserId:       userId,
		Context:      contextName,
		Messages:     []entity.Message{},
		CreatedAt:    now,
		LastActivity: now,
	}
}

func resolveContext(contextName string) string {
	if _, ok := constant.ChatContexts[contextName]; ok {
		return contextName
	}
	return constant.DefaultChatContext
}

// matchRule scans the ordered rule table and returns the first rule with a
// keyword contained in the lowercased message. The trailing default rule has
// no keywords and always matches.
func matchRule(message string) constant.ChatRule {
	lowered := strings.ToLower(message)

	for _, rule := range constant.ChatRules {
		if len(rule.Keywords) == 0 {
			return rule
		}
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule
			}
		}
	}

	return constant.ChatRules[len(constant.ChatRules)-1]
}
