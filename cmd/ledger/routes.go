package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	deleteadvance "garment-ledger/http-server/advances/delete"
	getadvances "garment-ledger/http-server/advances/get"
	saveadvance "garment-ledger/http-server/advances/save"
	updateadvance "garment-ledger/http-server/advances/update"
	"garment-ledger/http-server/auth"
	deleteentries "garment-ledger/http-server/entries/delete"
	getentries "garment-ledger/http-server/entries/get"
	importentries "garment-ledger/http-server/entries/import"
	saveentries "garment-ledger/http-server/entries/save"
	updateentries "garment-ledger/http-server/entries/update"
	generate_excel "garment-ledger/http-server/generate-report/generate-excel"
	ioreport "garment-ledger/http-server/io-report/get"
	deleteprofile "garment-ledger/http-server/profiles/delete"
	getprofiles "garment-ledger/http-server/profiles/get"
	saveprofile "garment-ledger/http-server/profiles/save"
	updateprofile "garment-ledger/http-server/profiles/update"
	weeklyreport "garment-ledger/http-server/weekly-report/get"
	"garment-ledger/internal/config"
	"garment-ledger/internal/service/report"
	"garment-ledger/internal/session"
	"garment-ledger/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, sessions *session.Manager, excelService *report.ExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Post("/api/login", auth.Login(log, sessions))
	router.Post("/api/logout", auth.Logout(log, sessions))

	router.Group(func(r chi.Router) {
		r.Use(sessions.Require)

		// Piece-rate entries, grouped per worker inside the selected week
		r.Post("/api/entries", saveentries.SaveEntriesOperation(log, storage))
		r.Get("/api/entries", getentries.GetEntriesGrouped(log, storage))
		r.Put("/api/entries/{id}", updateentries.UpdateEntryOperation(log, storage))
		r.Delete("/api/entries/{id}", deleteentries.DeleteEntryOperation(log, storage))
		r.Delete("/api/entries/worker/{name}", deleteentries.DeleteWorkerEntries(log, storage))
		r.Delete("/api/entries", deleteentries.DeleteAllEntriesOperation(log, storage))
		r.Post("/api/entries/import", importentries.ImportLegacyEntries(log, storage))

		// Reports
		r.Get("/api/report/weekly", weeklyreport.GetWeeklyReport(log, storage))
		r.Get("/api/report/io", ioreport.GetIOReport(log, storage))
		r.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, excelService))

		// Standing advance book
		r.Get("/api/advances", getadvances.GetAdvances(log, storage))
		r.Post("/api/advances", saveadvance.SaveAdvanceOperation(log, storage))
		r.Put("/api/advances/{id}", updateadvance.UpdateAdvanceOperation(log, storage))
		r.Delete("/api/advances/{id}", deleteadvance.DeleteAdvanceOperation(log, storage))

		// Labour profiles with settled-week history
		r.Get("/api/profiles", getprofiles.GetProfiles(log, storage))
		r.Post("/api/profiles", saveprofile.SaveProfileOperation(log, storage))
		r.Put("/api/profiles/{id}", updateprofile.UpdateProfileOperation(log, storage))
		r.Delete("/api/profiles/{id}", deleteprofile.DeleteProfileOperation(log, storage))
		r.Get("/api/profiles/{id}/salary-history", getprofiles.GetSalaryHistory(log, storage))
		r.Post("/api/profiles/{id}/salary-history", saveprofile.SaveSalaryHistoryOperation(log, storage))
	})

	return router
}
