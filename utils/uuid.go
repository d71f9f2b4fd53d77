package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a unique id attached to every incoming
// request for log correlation. Entity ids are database-assigned.
func GenerateRequestID() string {
	return uuid.New().String()
}
