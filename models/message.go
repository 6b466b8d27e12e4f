package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Text      *string            `bson:"text,omitempty" json:"text,omitempty"`
	Audio     *string            `bson:"audio,omitempty" json:"audio,omitempty"` // URI of the audio attachment
	Sender    string             `bson:"sender" json:"sender"`
	Receiver  string             `bson:"receiver" json:"receiver"`
	Reply     *Reply             `bson:"reply,omitempty" json:"reply,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Reply is a copy of the replied-to message taken at send time, not a reference to it.
type Reply struct {
	Text   string `bson:"text,omitempty" json:"text,omitempty"`
	Sender string `bson:"sender,omitempty" json:"sender,omitempty"`
}
