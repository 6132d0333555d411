package mapper

import (
	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/entity"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) MessageToDTO(msg entity.Message) dto.MessageDTO {
	return dto.MessageDTO{
		Message:   msg.Message,
		IsUser:    msg.IsUser,
		Timestamp: msg.Timestamp,
		UserId:    msg.UserId,
	}
}

func (m *ChatMapper) ConversationToHistory(conversation *entity.Conversation) *dto.ConversationHistoryResponse {
	if conversation == nil {
		return nil
	}

	messages := make([]dto.MessageDTO, 0, len(conversation.Messages))
	for _, msg := range conversation.Messages {
		messages = append(messages, m.MessageToDTO(msg))
	}

	return &dto.ConversationHistoryResponse{
		ConversationId: conversation.Id,
		Messages:       messages,
	}
}
