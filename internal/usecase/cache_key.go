package usecase

import (
	"fmt"

	"github.com/google/uuid"
)

func matchesCacheKey(resumeID uuid.UUID, topN int) string {
	return fmt.Sprintf("matches:%s:top%d", resumeID, topN)
}

func skillGapsCacheKey(resumeID uuid.UUID) string {
	return "gaps:" + resumeID.String()
}
