package handler

import (
	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/pkg/response"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type InsightsHandler struct {
	uc usecase.InsightsUsecase
}

func NewInsightsHandler(uc usecase.InsightsUsecase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

func (h *InsightsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:resume_id/skill-gaps", h.GetSkillGaps)
	r.Get("/:resume_id/course-recommendations", h.GetCourseRecommendations)
}

func (h *InsightsHandler) GetSkillGaps(c fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("resume_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	gaps, err := h.uc.SkillGapReport(c.Context(), resumeID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillGapReportResponse(resumeID, gaps))
}

func (h *InsightsHandler) GetCourseRecommendations(c fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("resume_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	suggestions, err := h.uc.CourseRecommendations(c.Context(), resumeID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCourseRecommendationsResponse(resumeID, suggestions))
}
