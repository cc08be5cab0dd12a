package repository

import (
	"time"

	"github.com/yltimon/Yosemite-Voluteer/models"
)

// ReportRepository bundles what the applications report needs.
type ReportRepository struct {
	AppRepo ApplicationRepository
}

func (r *ReportRepository) GetApplicationsForReport() (*models.ApplicationsReportData, error) {
	apps, err := r.AppRepo.GetAllApplications()
	if err != nil {
		return nil, err
	}
	return &models.ApplicationsReportData{
		GeneratedAt:  time.Now().Format("02-Jan-2006 15:04"),
		Applications: apps,
		Total:        len(apps),
	}, nil
}
