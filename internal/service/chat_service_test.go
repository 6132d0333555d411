package service

import (
	"context"
	"testing"

	"healthsphere-ml-be/internal/constant"
	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/mapper"
	"healthsphere-ml-be/internal/pkg/serverutils"
	"healthsphere-ml-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService() IChatService {
	return NewChatService(memory.NewConversationRepository(), mapper.NewChatMapper(), 42, nopLogger{})
}

func TestStartConversation(t *testing.T) {
	svc := newChatService()

	result, err := svc.StartConversation(context.Background(), &dto.StartConversationRequest{
		UserId:  "user-1",
		Context: "diabetes_management",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.ConversationId)
	assert.Equal(t, "diabetes_management", result.Context)

	history, err := svc.GetConversationHistory(context.Background(), result.ConversationId.String())
	require.NoError(t, err)
	assert.Empty(t, history.Messages)
}

func TestStartConversation_UnknownContextFallsBack(t *testing.T) {
	svc := newChatService()

	result, err := svc.StartConversation(context.Background(), &dto.StartConversationRequest{
		UserId:  "user-1",
		Context: "astrology",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultChatContext, result.Context)
}

func TestProcessMessage_NewConversation(t *testing.T) {
	svc := newChatService()

	result, err := svc.ProcessMessage(context.Background(), &dto.ChatRequest{
		Message: "I want to improve my workout routine",
		UserId:  "user-1",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.ConversationId)
	assert.NotEmpty(t, result.Response)
	assert.Equal(t, constant.DefaultChatContext, result.Context.ContextType)
	assert.Equal(t, "supportive and knowledgeable", result.Context.Personality)

	history, err := svc.GetConversationHistory(context.Background(), result.ConversationId.String())
	require.NoError(t, err)
	require.Len(t, history.Messages, 2)
	assert.True(t, history.Messages[0].IsUser)
	assert.Equal(t, "I want to improve my workout routine", history.Messages[0].Message)
	assert.Equal(t, "user-1", history.Messages[0].UserId)
	assert.False(t, history.Messages[1].IsUser)
	assert.Equal(t, result.Response, history.Messages[1].Message)
	assert.Equal(t, "user-1", history.Messages[1].UserId, "assistant entries carry the requesting user's id")
}

func TestProcessMessage_ExistingConversationAccumulates(t *testing.T) {
	svc := newChatService()

	started, err := svc.StartConversation(context.Background(), &dto.StartConversationRequest{UserId: "user-1"})
	require.NoError(t, err)
	id := started.ConversationId.String()

	for i := 0; i < 3; i++ {
		_, err := svc.ProcessMessage(context.Background(), &dto.ChatRequest{
			Message:        "how can I sleep better",
			UserId:         "user-1",
			ConversationId: id,
		})
		require.NoError(t, err)
	}

	history, err := svc.GetConversationHistory(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, history.Messages, 6)
}

func TestProcessMessage_KeywordRouting(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		wantTopic string
	}{
		{"workout routes to exercise", "plan my workout please", "exercise"},
		{"meal routes to nutrition", "what should my next meal be", "nutrition"},
		{"heart routes to cardiovascular", "is my heart healthy", "cardiovascular"},
		{"insomnia routes to sleep", "I have insomnia", "sleep"},
		{"anxiety routes to stress", "my anxiety is bad lately", "stress"},
		{"lose routes to weight", "I want to lose a few kilos", "weight"},
		{"diabetes routes to diabetes", "managing my diabetes", "diabetes"},
		{"no keyword routes to general", "hello there", "general"},
		// "diet" precedes "diabetes" in the table, so a message with both
		// routes to nutrition.
		{"diet wins over diabetes", "diet tips for diabetes", "nutrition"},
	}

	topicByResponse := make(map[string]string)
	for _, rule := range constant.ChatRules {
		for _, r := range rule.Responses {
			topicByResponse[r] = rule.Topic
		}
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newChatService()
			result, err := svc.ProcessMessage(context.Background(), &dto.ChatRequest{
				Message: tc.message,
				UserId:  "user-1",
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantTopic, topicByResponse[result.Response])
			assert.NotEmpty(t, result.Suggestions)
		})
	}
}

func TestProcessMessage_InvalidConversationId(t *testing.T) {
	svc := newChatService()

	_, err := svc.ProcessMessage(context.Background(), &dto.ChatRequest{
		Message:        "hello",
		UserId:         "user-1",
		ConversationId: "not-a-uuid",
	})
	require.Error(t, err)

	var validationErr *serverutils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestProcessMessage_UnknownConversationId(t *testing.T) {
	svc := newChatService()

	_, err := svc.ProcessMessage(context.Background(), &dto.ChatRequest{
		Message:        "hello",
		UserId:         "user-1",
		ConversationId: uuid.NewString(),
	})
	require.Error(t, err)

	var notFoundErr *serverutils.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestDeleteConversation(t *testing.T) {
	svc := newChatService()

	started, err := svc.StartConversation(context.Background(), &dto.StartConversationRequest{UserId: "user-1"})
	require.NoError(t, err)
	id := started.ConversationId.String()

	require.NoError(t, svc.DeleteConversation(context.Background(), id))

	_, err = svc.GetConversationHistory(context.Background(), id)
	var notFoundErr *serverutils.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)

	// deleting again is not an error
	assert.NoError(t, svc.DeleteConversation(context.Background(), id))
}

func TestGetAvailableContexts(t *testing.T) {
	svc := newChatService()

	result, err := svc.GetAvailableContexts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(constant.ChatContexts), result.TotalCount)
	assert.Contains(t, result.Contexts, "health_coaching")
	assert.Contains(t, result.Contexts, "mental_wellness")
	assert.Equal(t, "clinical and precise", result.Contexts["diabetes_management"].Personality)
}
