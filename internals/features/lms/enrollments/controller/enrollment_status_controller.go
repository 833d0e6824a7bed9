// file: internals/features/lms/enrollments/controller/enrollment_status_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	certModel "kursusku_backend/internals/features/lms/certificates/model"
	catalogModel "kursusku_backend/internals/features/lms/catalog/model"
	enrollDto "kursusku_backend/internals/features/lms/enrollments/dto"
	enrollModel "kursusku_backend/internals/features/lms/enrollments/model"
	progressModel "kursusku_backend/internals/features/lms/progress/model"
	helper "kursusku_backend/internals/helpers"
)

type EnrollmentStatusController struct {
	DB *gorm.DB
}

func NewEnrollmentStatusController(db *gorm.DB) *EnrollmentStatusController {
	return &EnrollmentStatusController{DB: db}
}

// 🟢 GET /api/u/formations/:id/enrollment-status
// Ringkasan posisi user dalam satu formation: status enrollment, agregat progress,
// status per modul, dan sertifikat kalau sudah terbit.
func (ctrl *EnrollmentStatusController) GetStatus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	formationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID formation tidak valid")
	}

	// Pastikan formation-nya ada dulu
	var formation catalogModel.FormationModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("formation_id = ?", formationID).
		First(&formation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Formation tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data formation")
	}

	var enrollment enrollModel.EnrollmentModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("enrollment_user_id = ? AND enrollment_formation_id = ?", userID, formationID).
		First(&enrollment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Belum terdaftar: cukup flag saja, tanpa detail progress
			return helper.Success(c, "Status enrollment berhasil diambil", enrollDto.EnrollmentStatusResponse{
				Enrolled: false,
			})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data enrollment")
	}

	resp := enrollDto.EnrollmentStatusResponse{
		Enrolled:   true,
		Status:     string(enrollment.EnrollmentStatus),
		EnrolledAt: &enrollment.EnrollmentEnrolledAt,
	}

	// Agregat progress (kalau belum ada baris, tampilkan nol)
	var userProgress progressModel.UserProgressModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("user_progress_user_id = ? AND user_progress_formation_id = ?", userID, formationID).
		First(&userProgress).Error
	switch {
	case err == nil:
		resp.Progress = &enrollDto.ProgressSummary{
			CompletedModules: userProgress.UserProgressCompletedModules,
			TotalModules:     userProgress.UserProgressTotalModules,
			ProgressPercent:  userProgress.UserProgressPercent,
		}
	case err == gorm.ErrRecordNotFound:
		var total int64
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&catalogModel.FormationModuleModel{}).
			Where("formation_module_formation_id = ?", formationID).
			Count(&total).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung modul")
		}
		resp.Progress = &enrollDto.ProgressSummary{TotalModules: int(total)}
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data progress")
	}

	// Status per modul, diurutkan sesuai urutan kurikulum
	var modules []catalogModel.FormationModuleModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("formation_module_formation_id = ?", formationID).
		Order("formation_module_order ASC").
		Find(&modules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar modul")
	}

	var items []progressModel.ItemProgressModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("item_progress_user_id = ? AND item_progress_formation_id = ?", userID, formationID).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil progress modul")
	}

	statusByModule := make(map[uuid.UUID]progressModel.ItemProgressStatus, len(items))
	for _, it := range items {
		statusByModule[it.ItemProgressModuleID] = it.ItemProgressStatus
	}

	resp.ModuleStatuses = make([]enrollDto.ModuleStatus, 0, len(modules))
	for _, m := range modules {
		status := progressModel.ItemProgressNotStarted
		if s, ok := statusByModule[m.FormationModuleID]; ok {
			status = s
		}
		resp.ModuleStatuses = append(resp.ModuleStatuses, enrollDto.ModuleStatus{
			ModuleID:  m.FormationModuleID,
			Title:     m.FormationModuleTitle,
			Type:      string(m.FormationModuleType),
			Order:     m.FormationModuleOrder,
			Status:    string(status),
			Completed: status.CountsAsCompleted(),
		})
	}

	// Sertifikat (opsional)
	var cert certModel.CertificateModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("certificate_user_id = ? AND certificate_formation_id = ?", userID, formationID).
		First(&cert).Error
	switch {
	case err == nil:
		resp.Certificate = &enrollDto.CertificateSummary{
			CertificateNumber: cert.CertificateNumber,
			IssuedAt:          cert.CertificateIssuedAt,
		}
	case err == gorm.ErrRecordNotFound:
		// belum ada sertifikat, biarkan nil
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data sertifikat")
	}

	return helper.Success(c, "Status enrollment berhasil diambil", resp)
}
