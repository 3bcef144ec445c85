package dto

import (
	"github.com/google/uuid"

	"resume-match/internal/domain/matching"
)

type SkillGapResponse struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type SkillGapReportResponse struct {
	ResumeID uuid.UUID          `json:"resume_id"`
	Gaps     []SkillGapResponse `json:"gaps"`
}

func NewSkillGapReportResponse(resumeID uuid.UUID, gaps []matching.SkillGap) SkillGapReportResponse {
	out := make([]SkillGapResponse, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, SkillGapResponse{Skill: g.Skill, Count: g.Count})
	}
	return SkillGapReportResponse{ResumeID: resumeID, Gaps: out}
}
