package memory

import (
	"sync"
	"time"

	"healthsphere-ml-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ConversationRepository owns the in-process conversation map. Conversations
// live for the process lifetime and are lost on restart.
//
// go-cache guards individual Set/Get calls, but appending is a
// read-modify-write, so the repository serializes writes with its own mutex
// instead of accepting last-writer-wins on concurrent appends.
type ConversationRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Save(conversation *entity.Conversation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Set(conversation.Id.String(), conversation, cache.NoExpiration)
}

// Get returns a snapshot of the conversation so callers never share the
// message slice with concurrent appends.
func (r *ConversationRepository) Get(id uuid.UUID) (*entity.Conversation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(id.String())
	if !found {
		return nil, false
	}
	conversation := x.(*entity.Conversation)

	snapshot := *conversation
	snapshot.Messages = make([]entity.Message, len(conversation.Messages))
	copy(snapshot.Messages, conversation.Messages)
	return &snapshot, true
}

// Append adds messages to the conversation log and bumps last activity.
// Returns false if the conversation does not exist.
func (r *ConversationRepository) Append(id uuid.UUID, messages ...entity.Message) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(id.String())
	if !found {
		return false
	}
	conversation := x.(*entity.Conversation)
	conversation.Messages = append(conversation.Messages, messages...)
	conversation.LastActivity = time.Now()
	return true
}

func (r *ConversationRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(id.String())
}
