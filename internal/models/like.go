package models

import (
	"time"

	"github.com/google/uuid"
)

// Like relie une réalisation à un visiteur anonyme identifié par son adresse
// IP. L'unicité (blog_id, ip_address) est garantie par la base, pas par le
// code applicatif.
type Like struct {
	ID        uuid.UUID `db:"id" json:"id"`
	BlogID    uuid.UUID `db:"blog_id" json:"blogId"`
	IPAddress string    `db:"ip_address" json:"ipAddress"`
	UserAgent *string   `db:"user_agent" json:"userAgent,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
