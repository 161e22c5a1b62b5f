package main

import (
	"fmt"
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/config"
	appHTTP "github.com/workpulse/workpulse-backend-go/internal/handler/http"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/clock"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/cron"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
	payperiodService "github.com/workpulse/workpulse-backend-go/internal/service/payperiod"
	rosterService "github.com/workpulse/workpulse-backend-go/internal/service/roster"
	timeoffService "github.com/workpulse/workpulse-backend-go/internal/service/timeoff"
	timesheetService "github.com/workpulse/workpulse-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	clk, err := clock.New(cfg.Payroll.Timezone)
	if err != nil {
		fmt.Println("Error loading payroll timezone:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, database.PoolConfig{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	timeOffRepo := postgresql.NewTimeOffRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	monthFactRepo := postgresql.NewMonthFactRepository(db)
	payPeriodRepo := postgresql.NewPayPeriodRepository(db)

	rosterSvc := rosterService.NewRosterService(clk, sessionRepo, timeOffRepo, scheduleRepo)
	timesheetSvc := timesheetService.NewTimesheetService(clk, monthFactRepo, sessionRepo)
	payPeriodSvc := payperiodService.NewService(clk)
	allowanceSvc := timeoffService.NewAllowanceService(clk, timeOffRepo, cfg.Payroll.MakeUpCapHours)

	scheduler := cron.NewScheduler()
	cron.NewRollupJobs(clk, userRepo, monthFactRepo, timesheetSvc).RegisterJobs(scheduler)
	cron.NewPayrollJobs(clk, userRepo, payPeriodRepo, payPeriodSvc, timesheetSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	rosterHandler := appHTTP.NewRosterHandler(rosterSvc, userRepo)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc, clk)
	payPeriodHandler := appHTTP.NewPayPeriodHandler(payPeriodSvc, payPeriodRepo, clk)
	timeOffHandler := appHTTP.NewTimeOffHandler(allowanceSvc)

	router := appHTTP.NewRouter(rosterHandler, timesheetHandler, payPeriodHandler, timeOffHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
