package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/app/models/dto"
	"github.com/alqalam/college-backend/internal/app/services"
	"github.com/alqalam/college-backend/internal/middleware"
)

// ProgramController handles program administration: stored aggregates and
// the draft sessions they are edited through.
type ProgramController struct {
	programService *services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService *services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

// ListPrograms retrieves all programs
// @Summary List programs
// @Description Retrieves all stored academic programs
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Program} "Programs retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/programs [get]
func (c *ProgramController) ListPrograms(ctx *gin.Context) {
	programs, err := c.programService.ListPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      programs,
		Timestamp: time.Now(),
	})
}

// GetProgram retrieves one program by key
// @Summary Get program
// @Description Retrieves one stored program by its key
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param programKey path string true "Program key"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/programs/{programKey} [get]
func (c *ProgramController) GetProgram(ctx *gin.Context) {
	program, err := c.programService.GetProgram(ctx, ctx.Param("programKey"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      program,
		Timestamp: time.Now(),
	})
}

// CreateProgram creates a new program
// @Summary Create program
// @Description Creates a new, mostly empty program aggregate
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProgramRequest true "Program information"
// @Success 201 {object} dto.APIResponse{data=models.Program} "Program created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Program already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/programs [post]
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	program, err := c.programService.CreateProgram(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      program,
		Timestamp: time.Now(),
	})
}

// DeleteProgram removes a program
// @Summary Delete program
// @Description Deletes a stored program by its key
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param programKey path string true "Program key"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Program deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/programs/{programKey} [delete]
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	if err := c.programService.DeleteProgram(ctx, ctx.Param("programKey")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Program deleted successfully"},
		Timestamp: time.Now(),
	})
}

// OpenDraft opens a draft editing session for a program
// @Summary Open draft
// @Description Loads a stored program into a fresh draft editing session
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param programKey path string true "Program key"
// @Success 201 {object} dto.APIResponse{data=dto.DraftResponse} "Draft opened successfully"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/programs/{programKey}/draft [post]
func (c *ProgramController) OpenDraft(ctx *gin.Context) {
	sess, err := c.programService.OpenDraft(ctx, ctx.Param("programKey"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.DraftResponse{SessionID: sess.ID, Program: sess.Snapshot()},
		Timestamp: time.Now(),
	})
}

// GetDraft reads the current state of a draft
// @Summary Get draft
// @Description Returns the current state of an open draft session
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId} [get]
func (c *ProgramController) GetDraft(ctx *gin.Context) {
	program, err := c.programService.GetDraft(ctx.Param("sessionId"))
	c.respondDraft(ctx, program, err)
}

// CommitDraft persists a draft over the stored program
// @Summary Commit draft
// @Description Saves the draft aggregate over the stored program row
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Draft committed successfully"
// @Failure 404 {object} dto.ErrorResponse "Draft session or program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/drafts/{sessionId}/commit [post]
func (c *ProgramController) CommitDraft(ctx *gin.Context) {
	program, err := c.programService.CommitDraft(ctx, ctx.Param("sessionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      program,
		Timestamp: time.Now(),
	})
}

// DiscardDraft drops a draft without saving
// @Summary Discard draft
// @Description Drops a draft session without touching storage
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Draft discarded"
// @Router /admin/drafts/{sessionId} [delete]
func (c *ProgramController) DiscardDraft(ctx *gin.Context) {
	c.programService.DiscardDraft(ctx.Param("sessionId"))

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Draft discarded"},
		Timestamp: time.Now(),
	})
}

// UpdateOverview patches the scalar fields of a draft
// @Summary Update draft overview
// @Description Patches the scalar fields of a draft; only supplied fields change
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.ProgramOverviewRequest true "Fields to patch"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/overview [put]
func (c *ProgramController) UpdateOverview(ctx *gin.Context) {
	var req dto.ProgramOverviewRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.UpdateOverview(ctx.Param("sessionId"), req)
	c.respondDraft(ctx, program, err)
}

// UpdateLists replaces the objective/outcome lists of a draft
// @Summary Update draft lists
// @Description Replaces the free-form objective and outcome lists of a draft
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.ProgramListsRequest true "Lists to replace"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/lists [put]
func (c *ProgramController) UpdateLists(ctx *gin.Context) {
	var req dto.ProgramListsRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.UpdateLists(ctx.Param("sessionId"), req)
	c.respondDraft(ctx, program, err)
}

// AddFacultyMember appends a faculty member to a draft
// @Summary Add faculty member
// @Description Appends a faculty member to the draft; blank names are ignored quietly
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.FacultyMemberRequest true "Faculty member"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/faculty-members [post]
func (c *ProgramController) AddFacultyMember(ctx *gin.Context) {
	var req dto.FacultyMemberRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.AddFacultyMember(ctx.Param("sessionId"), req)
	c.respondDraft(ctx, program, err)
}

// UpdateFacultyMember replaces one faculty member of a draft
// @Summary Update faculty member
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param memberId path string true "Faculty member id"
// @Param request body dto.FacultyMemberRequest true "Faculty member"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/faculty-members/{memberId} [put]
func (c *ProgramController) UpdateFacultyMember(ctx *gin.Context) {
	var req dto.FacultyMemberRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.UpdateFacultyMember(ctx.Param("sessionId"), ctx.Param("memberId"), req)
	c.respondDraft(ctx, program, err)
}

// RemoveFacultyMember deletes one faculty member from a draft
// @Summary Remove faculty member
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param memberId path string true "Faculty member id"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/faculty-members/{memberId} [delete]
func (c *ProgramController) RemoveFacultyMember(ctx *gin.Context) {
	program, err := c.programService.RemoveFacultyMember(ctx.Param("sessionId"), ctx.Param("memberId"))
	c.respondDraft(ctx, program, err)
}

// ReorderFacultyMembers moves a faculty member to a new position
// @Summary Reorder faculty members
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.ReorderRequest true "Move"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Index out of range"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/faculty-members/reorder [post]
func (c *ProgramController) ReorderFacultyMembers(ctx *gin.Context) {
	var req dto.ReorderRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.MoveFacultyMember(ctx.Param("sessionId"), req.FromIndex, req.ToIndex)
	c.respondDraft(ctx, program, err)
}

// AddAdmissionRequirement appends an admission requirement to a draft
// @Summary Add admission requirement
// @Description Appends an admission requirement; blank requirement text is ignored quietly
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.AdmissionRequirementRequest true "Admission requirement"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/admission-requirements [post]
func (c *ProgramController) AddAdmissionRequirement(ctx *gin.Context) {
	var req dto.AdmissionRequirementRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.AddAdmissionRequirement(ctx.Param("sessionId"), req)
	c.respondDraft(ctx, program, err)
}

// UpdateAdmissionRequirement replaces one admission requirement of a draft
// @Summary Update admission requirement
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param requirementId path string true "Requirement id"
// @Param request body dto.AdmissionRequirementRequest true "Admission requirement"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/admission-requirements/{requirementId} [put]
func (c *ProgramController) UpdateAdmissionRequirement(ctx *gin.Context) {
	var req dto.AdmissionRequirementRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.UpdateAdmissionRequirement(ctx.Param("sessionId"), ctx.Param("requirementId"), req)
	c.respondDraft(ctx, program, err)
}

// RemoveAdmissionRequirement deletes one admission requirement from a draft
// @Summary Remove admission requirement
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param requirementId path string true "Requirement id"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/admission-requirements/{requirementId} [delete]
func (c *ProgramController) RemoveAdmissionRequirement(ctx *gin.Context) {
	program, err := c.programService.RemoveAdmissionRequirement(ctx.Param("sessionId"), ctx.Param("requirementId"))
	c.respondDraft(ctx, program, err)
}

// ReorderAdmissionRequirements moves an admission requirement to a new position
// @Summary Reorder admission requirements
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.ReorderRequest true "Move"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Index out of range"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/admission-requirements/reorder [post]
func (c *ProgramController) ReorderAdmissionRequirements(ctx *gin.Context) {
	var req dto.ReorderRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.MoveAdmissionRequirement(ctx.Param("sessionId"), req.FromIndex, req.ToIndex)
	c.respondDraft(ctx, program, err)
}

// AddStatistic appends a statistic to a draft
// @Summary Add statistic
// @Description Appends a headline statistic; blank labels are ignored quietly
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.StatisticRequest true "Statistic"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/statistics [post]
func (c *ProgramController) AddStatistic(ctx *gin.Context) {
	var req dto.StatisticRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.AddStatistic(ctx.Param("sessionId"), req)
	c.respondDraft(ctx, program, err)
}

// UpdateStatistic replaces one statistic of a draft
// @Summary Update statistic
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param statisticId path string true "Statistic id"
// @Param request body dto.StatisticRequest true "Statistic"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/statistics/{statisticId} [put]
func (c *ProgramController) UpdateStatistic(ctx *gin.Context) {
	var req dto.StatisticRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.UpdateStatistic(ctx.Param("sessionId"), ctx.Param("statisticId"), req)
	c.respondDraft(ctx, program, err)
}

// RemoveStatistic deletes one statistic from a draft
// @Summary Remove statistic
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param statisticId path string true "Statistic id"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/statistics/{statisticId} [delete]
func (c *ProgramController) RemoveStatistic(ctx *gin.Context) {
	program, err := c.programService.RemoveStatistic(ctx.Param("sessionId"), ctx.Param("statisticId"))
	c.respondDraft(ctx, program, err)
}

// ReorderStatistics moves a statistic to a new position
// @Summary Reorder statistics
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.ReorderRequest true "Move"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Index out of range"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/statistics/reorder [post]
func (c *ProgramController) ReorderStatistics(ctx *gin.Context) {
	var req dto.ReorderRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.MoveStatistic(ctx.Param("sessionId"), req.FromIndex, req.ToIndex)
	c.respondDraft(ctx, program, err)
}

// AddCareerOpportunity appends a career opportunity to a draft
// @Summary Add career opportunity
// @Description Appends a career opportunity; blank titles are ignored quietly
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.CareerOpportunityRequest true "Career opportunity"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/career-opportunities [post]
func (c *ProgramController) AddCareerOpportunity(ctx *gin.Context) {
	var req dto.CareerOpportunityRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.AddCareerOpportunity(ctx.Param("sessionId"), req)
	c.respondDraft(ctx, program, err)
}

// UpdateCareerOpportunity replaces one career opportunity of a draft
// @Summary Update career opportunity
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param careerId path string true "Career opportunity id"
// @Param request body dto.CareerOpportunityRequest true "Career opportunity"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/career-opportunities/{careerId} [put]
func (c *ProgramController) UpdateCareerOpportunity(ctx *gin.Context) {
	var req dto.CareerOpportunityRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.UpdateCareerOpportunity(ctx.Param("sessionId"), ctx.Param("careerId"), req)
	c.respondDraft(ctx, program, err)
}

// RemoveCareerOpportunity deletes one career opportunity from a draft
// @Summary Remove career opportunity
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param careerId path string true "Career opportunity id"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/career-opportunities/{careerId} [delete]
func (c *ProgramController) RemoveCareerOpportunity(ctx *gin.Context) {
	program, err := c.programService.RemoveCareerOpportunity(ctx.Param("sessionId"), ctx.Param("careerId"))
	c.respondDraft(ctx, program, err)
}

// ReorderCareerOpportunities moves a career opportunity to a new position
// @Summary Reorder career opportunities
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.ReorderRequest true "Move"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Index out of range"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/career-opportunities/reorder [post]
func (c *ProgramController) ReorderCareerOpportunities(ctx *gin.Context) {
	var req dto.ReorderRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.MoveCareerOpportunity(ctx.Param("sessionId"), req.FromIndex, req.ToIndex)
	c.respondDraft(ctx, program, err)
}

// AddAcademicYear appends an academic year to a draft's study plan
// @Summary Add academic year
// @Description Appends an academic year; blank year names are ignored quietly
// @Tags curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.AcademicYearRequest true "Academic year"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/years [post]
func (c *ProgramController) AddAcademicYear(ctx *gin.Context) {
	var req dto.AcademicYearRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.AddAcademicYear(ctx.Param("sessionId"), req)
	c.respondDraft(ctx, program, err)
}

// UpdateAcademicYear renames one academic year of a draft
// @Summary Update academic year
// @Tags curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param yearNumber path int true "Year number (1-based)"
// @Param request body dto.AcademicYearRequest true "Academic year"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid year number"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/years/{yearNumber} [put]
func (c *ProgramController) UpdateAcademicYear(ctx *gin.Context) {
	yearNumber, ok := c.yearNumber(ctx)
	if !ok {
		return
	}
	var req dto.AcademicYearRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.UpdateAcademicYear(ctx.Param("sessionId"), yearNumber, req)
	c.respondDraft(ctx, program, err)
}

// RemoveAcademicYear deletes one academic year from a draft
// @Summary Remove academic year
// @Tags curriculum
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param yearNumber path int true "Year number (1-based)"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid year number"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/years/{yearNumber} [delete]
func (c *ProgramController) RemoveAcademicYear(ctx *gin.Context) {
	yearNumber, ok := c.yearNumber(ctx)
	if !ok {
		return
	}
	program, err := c.programService.RemoveAcademicYear(ctx.Param("sessionId"), yearNumber)
	c.respondDraft(ctx, program, err)
}

// ReorderAcademicYears moves an academic year to a new position
// @Summary Reorder academic years
// @Description Moves a year; year numbers are renumbered to match the new order
// @Tags curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param request body dto.ReorderRequest true "Move"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Index out of range"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/years/reorder [post]
func (c *ProgramController) ReorderAcademicYears(ctx *gin.Context) {
	var req dto.ReorderRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.MoveAcademicYear(ctx.Param("sessionId"), req.FromIndex, req.ToIndex)
	c.respondDraft(ctx, program, err)
}

// AddSubject appends a subject to one year of a draft
// @Summary Add subject
// @Description Appends a subject to a year; submissions missing the code or Arabic name are ignored quietly
// @Tags curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param yearNumber path int true "Year number (1-based)"
// @Param request body dto.CourseSubjectRequest true "Subject"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid year number"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/years/{yearNumber}/subjects [post]
func (c *ProgramController) AddSubject(ctx *gin.Context) {
	yearNumber, ok := c.yearNumber(ctx)
	if !ok {
		return
	}
	var req dto.CourseSubjectRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.AddSubject(ctx.Param("sessionId"), yearNumber, req)
	c.respondDraft(ctx, program, err)
}

// UpdateSubject replaces one subject inside one year of a draft
// @Summary Update subject
// @Tags curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param yearNumber path int true "Year number (1-based)"
// @Param subjectId path string true "Subject id"
// @Param request body dto.CourseSubjectRequest true "Subject"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid year number"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/years/{yearNumber}/subjects/{subjectId} [put]
func (c *ProgramController) UpdateSubject(ctx *gin.Context) {
	yearNumber, ok := c.yearNumber(ctx)
	if !ok {
		return
	}
	var req dto.CourseSubjectRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.UpdateSubject(ctx.Param("sessionId"), yearNumber, ctx.Param("subjectId"), req)
	c.respondDraft(ctx, program, err)
}

// RemoveSubject deletes one subject from one year of a draft
// @Summary Remove subject
// @Tags curriculum
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param yearNumber path int true "Year number (1-based)"
// @Param subjectId path string true "Subject id"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid year number"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/years/{yearNumber}/subjects/{subjectId} [delete]
func (c *ProgramController) RemoveSubject(ctx *gin.Context) {
	yearNumber, ok := c.yearNumber(ctx)
	if !ok {
		return
	}
	program, err := c.programService.RemoveSubject(ctx.Param("sessionId"), yearNumber, ctx.Param("subjectId"))
	c.respondDraft(ctx, program, err)
}

// ReorderSubjects moves a subject within one year of a draft
// @Summary Reorder subjects
// @Tags curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Draft session id"
// @Param yearNumber path int true "Year number (1-based)"
// @Param request body dto.ReorderRequest true "Move"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 400 {object} dto.ErrorResponse "Index out of range"
// @Failure 404 {object} dto.ErrorResponse "Draft session not found"
// @Router /admin/drafts/{sessionId}/years/{yearNumber}/subjects/reorder [post]
func (c *ProgramController) ReorderSubjects(ctx *gin.Context) {
	yearNumber, ok := c.yearNumber(ctx)
	if !ok {
		return
	}
	var req dto.ReorderRequest
	if !c.bind(ctx, &req) {
		return
	}
	program, err := c.programService.MoveSubject(ctx.Param("sessionId"), yearNumber, req.FromIndex, req.ToIndex)
	c.respondDraft(ctx, program, err)
}

// bind parses the JSON body, answering 400 itself on failure
func (c *ProgramController) bind(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// yearNumber parses the 1-based year number path parameter
func (c *ProgramController) yearNumber(ctx *gin.Context) (int, bool) {
	yearNumber, err := strconv.Atoi(ctx.Param("yearNumber"))
	if err != nil || yearNumber < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year number")
		errorDetail = errorDetail.WithDetails("Year number must be a positive integer")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return yearNumber, true
}

// respondDraft wraps the updated draft in the standard envelope
func (c *ProgramController) respondDraft(ctx *gin.Context, program models.Program, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.DraftResponse{SessionID: ctx.Param("sessionId"), Program: program},
		Timestamp: time.Now(),
	})
}
