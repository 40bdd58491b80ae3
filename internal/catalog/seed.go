package catalog

import "time"

// Sample catalog mirroring the data set the client ships with. Externally
// owned in production; kept here so the service runs standalone.

var seedYields = []Yield{
	{
		ID:          "y1",
		FarmerID:    "f1",
		Title:       "Fresh Tomatoes",
		Description: "Vine-ripened tomatoes picked this morning",
		Price:       500,
		OldPrice:    650,
		Rating:      4.7,
		Unit:        "kg",
		Image:       "https://images.agrolink.example/yields/tomatoes.jpg",
		Category:    "vegetables",
		Available:   true,
		CreatedAt:   time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC),
	},
	{
		ID:          "y2",
		FarmerID:    "f1",
		Title:       "Sweet Corn",
		Description: "Golden sweet corn, harvested weekly",
		Price:       300,
		Rating:      4.4,
		Unit:        "dozen",
		Image:       "https://images.agrolink.example/yields/corn.jpg",
		Category:    "vegetables",
		Available:   true,
		CreatedAt:   time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:          "y3",
		FarmerID:    "f2",
		Title:       "Raw Honey",
		Description: "Unfiltered wildflower honey from our own hives",
		Price:       1000,
		Rating:      4.9,
		Unit:        "jar",
		Image:       "https://images.agrolink.example/yields/honey.jpg",
		Category:    "pantry",
		Available:   true,
		CreatedAt:   time.Date(2025, 5, 20, 14, 15, 0, 0, time.UTC),
	},
	{
		ID:          "y4",
		FarmerID:    "f2",
		Title:       "Free-Range Eggs",
		Description: "Pasture-raised eggs, collected daily",
		Price:       450,
		Unit:        "tray",
		Image:       "https://images.agrolink.example/yields/eggs.jpg",
		Category:    "dairy",
		Available:   false,
		CreatedAt:   time.Date(2025, 6, 1, 7, 45, 0, 0, time.UTC),
	},
	{
		ID:          "y5",
		FarmerID:    "f3",
		Title:       "Mangoes",
		Description: "Kent mangoes, tree-ripened and hand-packed",
		Price:       700,
		OldPrice:    800,
		Rating:      4.6,
		Unit:        "box",
		Image:       "https://images.agrolink.example/yields/mangoes.jpg",
		Category:    "fruits",
		Available:   true,
		CreatedAt:   time.Date(2025, 6, 7, 9, 10, 0, 0, time.UTC),
	},
}

var seedPosts = []Post{
	{
		ID:           "p1",
		FarmerID:     "f1",
		FarmerName:   "Amina Okafor",
		FarmerAvatar: "https://images.agrolink.example/avatars/amina.jpg",
		Content:      "First tomato harvest of the season is in. Come see us at the Saturday market!",
		Media:        "https://images.agrolink.example/posts/harvest.jpg",
		Likes:        124,
		Comments:     18,
		CreatedAt:    time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:           "p2",
		FarmerID:     "f2",
		FarmerName:   "Joseph Mwangi",
		FarmerAvatar: "https://images.agrolink.example/avatars/joseph.jpg",
		Content:      "A short tour of the apiary and how we extract honey without heating it.",
		Media:        "https://videos.agrolink.example/posts/apiary-tour.mp4",
		IsVideo:      true,
		Likes:        342,
		Comments:     56,
		CreatedAt:    time.Date(2025, 6, 4, 16, 30, 0, 0, time.UTC),
	},
	{
		ID:           "p3",
		FarmerID:     "f3",
		FarmerName:   "Grace Banda",
		FarmerAvatar: "https://images.agrolink.example/avatars/grace.jpg",
		Content:      "Mango season starts next week. Pre-orders open now.",
		Media:        "https://images.agrolink.example/posts/mango-grove.jpg",
		Likes:        89,
		Comments:     12,
		CreatedAt:    time.Date(2025, 6, 6, 11, 20, 0, 0, time.UTC),
	},
}

var seedFarmers = []Farmer{
	{
		ID:           "f1",
		UserID:       "u10",
		FarmName:     "Okafor Family Farm",
		Location:     "Nakuru",
		Description:  "Three generations growing vegetables without synthetic pesticides.",
		ProfilePhoto: "https://images.agrolink.example/farms/okafor.jpg",
		Followers:    2150,
		Rating:       4.7,
	},
	{
		ID:           "f2",
		UserID:       "u11",
		FarmName:     "Mwangi Apiaries",
		Location:     "Nyeri",
		Description:  "Honey, eggs and seasonal produce from the highlands.",
		ProfilePhoto: "https://images.agrolink.example/farms/mwangi.jpg",
		Followers:    3480,
		Rating:       4.9,
	},
	{
		ID:           "f3",
		UserID:       "u12",
		FarmName:     "Banda Orchards",
		Location:     "Malindi",
		Description:  "Tropical fruit orchard on the coast, family run since 1998.",
		ProfilePhoto: "https://images.agrolink.example/farms/banda.jpg",
		Followers:    1720,
		Rating:       4.6,
	},
}

var seedConversations = []Conversation{
	{
		ID:                "c1",
		ParticipantID:     "f1",
		ParticipantName:   "Amina Okafor",
		ParticipantAvatar: "https://images.agrolink.example/avatars/amina.jpg",
		LastMessage:       "Yes, the tomatoes will be at the stand until noon.",
		Timestamp:         time.Date(2025, 6, 7, 15, 42, 0, 0, time.UTC),
		UnreadCount:       1,
	},
	{
		ID:                "c2",
		ParticipantID:     "f2",
		ParticipantName:   "Joseph Mwangi",
		ParticipantAvatar: "https://images.agrolink.example/avatars/joseph.jpg",
		LastMessage:       "The next honey batch ships on Friday.",
		Timestamp:         time.Date(2025, 6, 6, 10, 5, 0, 0, time.UTC),
	},
}

var seedMessages = map[string][]Message{
	"c1": {
		{
			ID:         "m1",
			SenderID:   "me",
			ReceiverID: "f1",
			Content:    "Will you still have tomatoes this Saturday?",
			Timestamp:  time.Date(2025, 6, 7, 15, 40, 0, 0, time.UTC),
			Read:       true,
		},
		{
			ID:         "m2",
			SenderID:   "f1",
			ReceiverID: "me",
			Content:    "Yes, the tomatoes will be at the stand until noon.",
			Timestamp:  time.Date(2025, 6, 7, 15, 42, 0, 0, time.UTC),
		},
	},
	"c2": {
		{
			ID:         "m3",
			SenderID:   "f2",
			ReceiverID: "me",
			Content:    "The next honey batch ships on Friday.",
			Timestamp:  time.Date(2025, 6, 6, 10, 5, 0, 0, time.UTC),
			Read:       true,
		},
	},
}
