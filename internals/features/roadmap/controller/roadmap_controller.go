package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"codetrain_backend/internals/features/roadmap/dto"
	"codetrain_backend/internals/features/roadmap/model"
	"codetrain_backend/internals/features/roadmap/service"
	helper "codetrain_backend/internals/helpers"
)

type RoadmapController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoadmapController(db *gorm.DB) *RoadmapController {
	return &RoadmapController{DB: db, Validate: validator.New()}
}

// POST /api/s/roadmap/subjects
func (ctrl *RoadmapController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	subject := req.ToModel()
	if err := ctrl.DB.Create(subject).Error; err != nil {
		log.Printf("[ERROR] Create roadmap subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject created", subject)
}

// PATCH /api/s/roadmap/subjects/:id
func (ctrl *RoadmapController) UpdateSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID format")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var subject model.RoadmapSubjectModel
	if err := ctrl.DB.Where("roadmap_subject_id = ?", id).First(&subject).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["roadmap_subject_title"] = *req.Title
	}
	if req.Position != nil {
		updates["roadmap_subject_position"] = *req.Position
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", subject)
	}

	if err := ctrl.DB.Model(&subject).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Update roadmap subject %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.JsonUpdated(c, "Subject updated", subject)
}

// DELETE /api/s/roadmap/subjects/:id  (soft delete, weeks kept)
func (ctrl *RoadmapController) DeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID format")
	}

	res := ctrl.DB.Where("roadmap_subject_id = ?", id).Delete(&model.RoadmapSubjectModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete roadmap subject %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonDeleted(c, "Subject deleted", nil)
}

// POST /api/s/roadmap/weeks
func (ctrl *RoadmapController) CreateWeek(c *fiber.Ctx) error {
	var req dto.CreateWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var subjectCount int64
	ctrl.DB.Model(&model.RoadmapSubjectModel{}).
		Where("roadmap_subject_id = ?", req.SubjectID).Count(&subjectCount)
	if subjectCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	week := req.ToModel()
	if err := ctrl.DB.Create(week).Error; err != nil {
		log.Printf("[ERROR] Create roadmap week: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create week")
	}
	return helper.JsonCreated(c, "Week created", week)
}

// PATCH /api/s/roadmap/weeks/:id
func (ctrl *RoadmapController) UpdateWeek(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid week ID format")
	}

	var req dto.UpdateWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var week model.RoadmapWeekModel
	if err := ctrl.DB.Where("roadmap_week_id = ?", id).First(&week).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Week not found")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["roadmap_week_title"] = *req.Title
	}
	if req.Position != nil {
		updates["roadmap_week_position"] = *req.Position
	}
	if req.Topics != nil {
		updates["roadmap_week_topics"] = *req.Topics
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", week)
	}

	if err := ctrl.DB.Model(&week).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Update roadmap week %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update week")
	}
	return helper.JsonUpdated(c, "Week updated", week)
}

// DELETE /api/s/roadmap/weeks/:id
func (ctrl *RoadmapController) DeleteWeek(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid week ID format")
	}

	res := ctrl.DB.Where("roadmap_week_id = ?", id).Delete(&model.RoadmapWeekModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete roadmap week %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete week")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Week not found")
	}
	return helper.JsonDeleted(c, "Week deleted", nil)
}

// PATCH /api/s/roadmap/weeks/:id/completion: mark a week taught for a gen
func (ctrl *RoadmapController) MarkWeekCompletion(c *fiber.Ctx) error {
	weekID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid week ID format")
	}

	var req dto.MarkCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	markedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var weekCount int64
	ctrl.DB.Model(&model.RoadmapWeekModel{}).
		Where("roadmap_week_id = ?", weekID).Count(&weekCount)
	if weekCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Week not found")
	}

	completion := model.WeekCompletionModel{
		WeekCompletionGen:       req.Gen,
		WeekCompletionWeekID:    weekID,
		WeekCompletionCompleted: req.Completed,
		WeekCompletionMarkedBy:  markedBy,
	}
	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "week_completion_gen"}, {Name: "week_completion_week_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"week_completion_completed": req.Completed,
			"week_completion_marked_by": markedBy,
		}),
	}).Create(&completion).Error
	if err != nil {
		log.Printf("[ERROR] Mark week completion %s gen=%s: %v", weekID, req.Gen, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark completion")
	}
	return helper.JsonUpdated(c, "Week completion updated", completion)
}

// GET /api/u/roadmap/me: the student's unlocked slice of the roadmap
func (ctrl *RoadmapController) GetMyRoadmap(c *fiber.Ctx) error {
	gen := helper.GetUserGenFromToken(c)
	if gen == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Your account has no cohort assigned")
	}
	return ctrl.roadmapForGen(c, gen)
}

// GET /api/s/roadmap?gen=: staff view of a cohort's unlocked roadmap
func (ctrl *RoadmapController) GetRoadmapForGen(c *fiber.Ctx) error {
	gen := c.Query("gen")
	if gen == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "gen query parameter is required")
	}
	return ctrl.roadmapForGen(c, gen)
}

func (ctrl *RoadmapController) roadmapForGen(c *fiber.Ctx, gen string) error {
	var subjects []model.RoadmapSubjectModel
	if err := ctrl.DB.Where("roadmap_subject_gen = ?", gen).Find(&subjects).Error; err != nil {
		log.Printf("[ERROR] Load roadmap subjects gen=%s: %v", gen, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load roadmap")
	}
	if len(subjects) == 0 {
		return helper.JsonOK(c, "", []dto.SubjectResponse{})
	}

	subjectIDs := make([]uuid.UUID, 0, len(subjects))
	for _, s := range subjects {
		subjectIDs = append(subjectIDs, s.RoadmapSubjectID)
	}

	var weeks []model.RoadmapWeekModel
	if err := ctrl.DB.Where("roadmap_week_subject_id IN ?", subjectIDs).Find(&weeks).Error; err != nil {
		log.Printf("[ERROR] Load roadmap weeks gen=%s: %v", gen, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load roadmap")
	}

	var completions []model.WeekCompletionModel
	if err := ctrl.DB.Where("week_completion_gen = ? AND week_completion_completed = ?", gen, true).
		Find(&completions).Error; err != nil {
		log.Printf("[ERROR] Load week completions gen=%s: %v", gen, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load roadmap")
	}
	completed := make(map[uuid.UUID]bool, len(completions))
	for _, cm := range completions {
		completed[cm.WeekCompletionWeekID] = true
	}

	order := service.BuildOrder(subjects, weeks)
	unlocked := service.UnlockedWeeks(order, completed)
	unlockedSet := make(map[uuid.UUID]bool, len(unlocked))
	for _, k := range unlocked {
		unlockedSet[k.WeekID] = true
	}

	unlockedWeekIDs := make([]uuid.UUID, 0, len(unlocked))
	for _, k := range unlocked {
		unlockedWeekIDs = append(unlockedWeekIDs, k.WeekID)
	}
	var materials []model.MaterialModel
	if len(unlockedWeekIDs) > 0 {
		if err := ctrl.DB.Where("material_week_id IN ?", unlockedWeekIDs).Find(&materials).Error; err != nil {
			log.Printf("[ERROR] Load materials gen=%s: %v", gen, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load roadmap")
		}
	}
	materialsByWeek := make(map[uuid.UUID][]dto.MaterialResponse)
	for i := range materials {
		m := &materials[i]
		materialsByWeek[m.MaterialWeekID] = append(materialsByWeek[m.MaterialWeekID], dto.ToMaterialResponse(m))
	}

	weekByID := make(map[uuid.UUID]*model.RoadmapWeekModel, len(weeks))
	for i := range weeks {
		weekByID[weeks[i].RoadmapWeekID] = &weeks[i]
	}

	// BuildOrder already sorted subjects in place
	out := make([]dto.SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		sr := dto.SubjectResponse{
			SubjectID: s.RoadmapSubjectID,
			Title:     s.RoadmapSubjectTitle,
			Position:  s.RoadmapSubjectPosition,
			Gen:       s.RoadmapSubjectGen,
		}
		for _, k := range unlocked {
			if k.SubjectID != s.RoadmapSubjectID {
				continue
			}
			w := weekByID[k.WeekID]
			if w == nil {
				continue
			}
			mats := materialsByWeek[w.RoadmapWeekID]
			if mats == nil {
				mats = []dto.MaterialResponse{}
			}
			sr.Weeks = append(sr.Weeks, dto.WeekResponse{
				WeekID:    w.RoadmapWeekID,
				SubjectID: w.RoadmapWeekSubjectID,
				Title:     w.RoadmapWeekTitle,
				Position:  w.RoadmapWeekPosition,
				Topics:    w.RoadmapWeekTopics,
				Completed: completed[w.RoadmapWeekID],
				Materials: mats,
			})
		}
		if len(sr.Weeks) > 0 {
			out = append(out, sr)
		}
	}
	return helper.JsonOK(c, "", out)
}
