package catalog

import "time"

// Yield represents a sellable farm item listed in the catalog
type Yield struct {
	ID          string    `json:"id"`
	FarmerID    string    `json:"farmerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	OldPrice    float64   `json:"oldPrice,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Unit        string    `json:"unit"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Post represents a social-feed entry authored by a farmer
type Post struct {
	ID           string    `json:"id"`
	FarmerID     string    `json:"farmerId"`
	FarmerName   string    `json:"farmerName"`
	FarmerAvatar string    `json:"farmerAvatar"`
	Content      string    `json:"content"`
	Media        string    `json:"media"`
	IsVideo      bool      `json:"isVideo"`
	Likes        int       `json:"likes"`
	Comments     int       `json:"comments"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Farmer represents an entry in the farmer directory
type Farmer struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	FarmName     string  `json:"farmName"`
	Location     string  `json:"location"`
	Description  string  `json:"description"`
	ProfilePhoto string  `json:"profilePhoto"`
	Followers    int     `json:"followers"`
	Rating       float64 `json:"rating"`
}

// Message represents a single chat message
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// Conversation represents an inbox entry with its latest message
type Conversation struct {
	ID                string    `json:"id"`
	ParticipantID     string    `json:"participantId"`
	ParticipantName   string    `json:"participantName"`
	ParticipantAvatar string    `json:"participantAvatar"`
	LastMessage       string    `json:"lastMessage"`
	Timestamp         time.Time `json:"timestamp"`
	UnreadCount       int       `json:"unreadCount"`
}

// Repository defines read-only access to the catalog collaborator. The
// catalog is externally owned; this subsystem never writes to it.
type Repository interface {
	FindYieldByID(id string) (*Yield, error)
	ListYields(category, search string) ([]Yield, error)
	ListPosts() ([]Post, error)
	FindFarmerByID(id string) (*Farmer, error)
	ListFarmers() ([]Farmer, error)
	ListConversations() ([]Conversation, error)
	FindConversationByID(id string) (*Conversation, error)
	ListMessages(conversationID string) ([]Message, error)
}
