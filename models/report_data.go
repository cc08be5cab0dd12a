package models

// ApplicationsReportData feeds the HTML template behind the admin PDF export.
type ApplicationsReportData struct {
	GeneratedAt  string
	Applications []*Application
	Total        int
}
