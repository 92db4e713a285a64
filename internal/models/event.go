package models

// UserRegisteredEvent is published to Kafka after a successful sign-up.
type UserRegisteredEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
}

// ArticlePublishedEvent is published to Kafka after a successful publish.
type ArticlePublishedEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	Slug      string `json:"slug"`
	AuthorID  string `json:"author_id"`
}
