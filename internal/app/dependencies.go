package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendwell/spendwell/internal/event_bus"
	"github.com/spendwell/spendwell/internal/utils"
	"github.com/spendwell/spendwell/pkg/budget"
	"github.com/spendwell/spendwell/pkg/category"
	"github.com/spendwell/spendwell/pkg/changefeed"
	"github.com/spendwell/spendwell/pkg/dashboard"
	"github.com/spendwell/spendwell/pkg/expense"
	"github.com/spendwell/spendwell/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	UserService user.Service
	UserHandler *user.Handler

	CategoryRepo    category.Repo
	CategoryHandler *category.Handler

	ExpenseRepo    expense.Repo
	ExpenseService *expense.ServiceImpl
	ExpenseHandler *expense.Handler

	BudgetRepo    budget.Repo
	BudgetService *budget.ServiceImpl
	BudgetHandler *budget.Handler

	DashboardService    *dashboard.ServiceImpl
	CsvOverviewRenderer *dashboard.CsvOverviewRendererImpl
	DashboardHandler    *dashboard.Handler

	Broadcaster       *changefeed.Broadcaster
	ChangefeedHandler *changefeed.ChangefeedHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.CategoryRepo = category.NewCategoryRepo(db)
	deps.CategoryHandler = category.NewHandler(deps.CategoryRepo)

	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.ExpenseService = expense.NewExpenseService(deps.ExpenseRepo, deps.EventBus)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.BudgetRepo = budget.NewBudgetRepo(db)
	deps.BudgetService = budget.NewBudgetService(deps.BudgetRepo, deps.EventBus)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService, deps.Clock)

	deps.DashboardService = dashboard.NewDashboardService(deps.ExpenseRepo, deps.BudgetRepo, deps.Clock)
	deps.CsvOverviewRenderer = dashboard.NewCsvOverviewRenderer()
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService, deps.CsvOverviewRenderer)

	deps.Broadcaster = changefeed.NewBroadcaster(deps.EventBus)
	deps.ChangefeedHandler = changefeed.NewChangefeedHandler(deps.Broadcaster)

	return deps
}
