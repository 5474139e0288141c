package dashboard

import (
	"time"

	"go-orderboard/internal/features/widget"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultUserID is used until a real identity exists.
const DefaultUserID = "default-user"

const DefaultDateFilter = "all-time"

// Dashboard is one user's saved widget layout. There is at most one document
// per userId (unique index); saves overwrite it wholesale.
type Dashboard struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID     string             `json:"userId" bson:"userId"`
	Widgets    []widget.Widget    `json:"widgets" bson:"widgets"`
	DateFilter string             `json:"dateFilter" bson:"dateFilter"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}
