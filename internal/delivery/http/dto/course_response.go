package dto

import (
	"github.com/google/uuid"

	"resume-match/internal/domain/matching"
)

type CourseSuggestionResponse struct {
	Skill  string `json:"skill"`
	Course string `json:"course"`
}

type CourseRecommendationsResponse struct {
	ResumeID    uuid.UUID                  `json:"resume_id"`
	Suggestions []CourseSuggestionResponse `json:"suggestions"`
}

func NewCourseRecommendationsResponse(resumeID uuid.UUID, suggestions []matching.CourseSuggestion) CourseRecommendationsResponse {
	out := make([]CourseSuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, CourseSuggestionResponse{Skill: s.Skill, Course: s.Course})
	}
	return CourseRecommendationsResponse{ResumeID: resumeID, Suggestions: out}
}
