package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/yltimon/Yosemite-Voluteer/repository"
	"github.com/yltimon/Yosemite-Voluteer/utils"
)

type ReportHandler struct {
	Repo     *repository.ReportRepository
	SavePath string
}

// ApplicationsPDF generates the applications report on demand, keeps a copy
// under the save directory, and streams the PDF back. This is an admin tool,
// so failures are plain 500s rather than rendered pages.
func (h *ReportHandler) ApplicationsPDF(w http.ResponseWriter, r *http.Request) {
	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pdfBytes, err := utils.GenerateApplicationsReportPDF(h.Repo)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("applications_%d.pdf", time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)
	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if utils.R2Configured() {
		url, err := utils.UploadReportToR2(pdfBytes, filename)
		if err != nil {
			log.Printf("error uploading report to R2: %v", err)
		} else {
			w.Header().Set("X-Report-URL", url)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(pdfBytes)
}
