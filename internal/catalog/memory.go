package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// MemoryRepository implements Repository over static in-memory data. It
// stands in for the external catalog collaborator the same way the mock
// data set does in the mobile client.
type MemoryRepository struct {
	yields        map[string]Yield
	posts         []Post
	farmers       map[string]Farmer
	conversations map[string]Conversation
	messages      map[string][]Message
}

// NewMemoryRepository creates a repository over the given records
func NewMemoryRepository(yields []Yield, posts []Post, farmers []Farmer, conversations []Conversation, messages map[string][]Message) *MemoryRepository {
	repo := &MemoryRepository{
		yields:        make(map[string]Yield, len(yields)),
		posts:         posts,
		farmers:       make(map[string]Farmer, len(farmers)),
		conversations: make(map[string]Conversation, len(conversations)),
		messages:      messages,
	}
	for _, y := range yields {
		repo.yields[y.ID] = y
	}
	for _, f := range farmers {
		repo.farmers[f.ID] = f
	}
	for _, c := range conversations {
		repo.conversations[c.ID] = c
	}
	return repo
}

// NewSeededRepository creates a repository preloaded with the sample catalog
func NewSeededRepository() *MemoryRepository {
	return NewMemoryRepository(seedYields, seedPosts, seedFarmers, seedConversations, seedMessages)
}

// FindYieldByID retrieves a yield by ID
func (r *MemoryRepository) FindYieldByID(id string) (*Yield, error) {
	y, ok := r.yields[id]
	if !ok {
		return nil, fmt.Errorf("yield not found")
	}
	return &y, nil
}

// ListYields returns yields filtered by category and search term. An empty
// or "all" category matches everything; search matches title and
// description case-insensitively.
func (r *MemoryRepository) ListYields(category, search string) ([]Yield, error) {
	search = strings.ToLower(search)

	var out []Yield
	for _, y := range r.yields {
		if category != "" && category != "all" && y.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(y.Title), search) &&
			!strings.Contains(strings.ToLower(y.Description), search) {
			continue
		}
		out = append(out, y)
	}

	// Newest listings first
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ListPosts returns the feed, newest first
func (r *MemoryRepository) ListPosts() ([]Post, error) {
	out := make([]Post, len(r.posts))
	copy(out, r.posts)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// FindFarmerByID retrieves a farmer directory entry by ID
func (r *MemoryRepository) FindFarmerByID(id string) (*Farmer, error) {
	f, ok := r.farmers[id]
	if !ok {
		return nil, fmt.Errorf("farmer not found")
	}
	return &f, nil
}

// ListFarmers returns the farmer directory
func (r *MemoryRepository) ListFarmers() ([]Farmer, error) {
	out := make([]Farmer, 0, len(r.farmers))
	for _, f := range r.farmers {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListConversations returns the inbox, most recent first
func (r *MemoryRepository) ListConversations() ([]Conversation, error) {
	out := make([]Conversation, 0, len(r.conversations))
	for _, c := range r.conversations {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// FindConversationByID retrieves a conversation by ID
func (r *MemoryRepository) FindConversationByID(id string) (*Conversation, error) {
	c, ok := r.conversations[id]
	if !ok {
		return nil, fmt.Errorf("conversation not found")
	}
	return &c, nil
}

// ListMessages returns the messages of a conversation in order
func (r *MemoryRepository) ListMessages(conversationID string) ([]Message, error) {
	if _, ok := r.conversations[conversationID]; !ok {
		return nil, fmt.Errorf("conversation not found")
	}
	msgs := r.messages[conversationID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
