package models

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID builds a short human-readable record id such as "VEH-3f9a01bc".
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}
