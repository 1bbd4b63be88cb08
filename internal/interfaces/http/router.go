package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockypocky/sp-api/internal/application/auth"
	"github.com/stockypocky/sp-api/internal/application/shopping"
	stockapp "github.com/stockypocky/sp-api/internal/application/stock"
	"github.com/stockypocky/sp-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	CategoryUC     *usecase.CategoryUseCase
	ItemUC         *usecase.ItemUseCase
	MemoUC         *usecase.MemoUseCase
	ShoppingListUC *usecase.ShoppingListUseCase
	StockUC        *stockapp.AdjustUseCase
	RecordUC       *shopping.RecordUseCase
	SpendingUC     *shopping.SpendingUseCase
	JWTSecret      string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (signup y login públicos; logout requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Items (incluye stock e historial por item)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.StockUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Get("/:id/stock", itemHandler.GetStock)
	items.Put("/:id/stock", itemHandler.UpdateStock)
	items.Get("/:id/stock-history", itemHandler.ListStockHistory)
	items.Post("/:id/stock-history", itemHandler.CreateStockHistory)

	// Stocks (vista global + alta)
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", stockHandler.List)
	stocks.Post("/", stockHandler.Create)

	// Memos
	memos := protected.Group("/memos")
	memoHandler := NewMemoHandler(deps.MemoUC)
	memos.Post("/", memoHandler.Create)
	memos.Get("/", memoHandler.List)
	memos.Get("/:id", memoHandler.GetByID)
	memos.Put("/:id", memoHandler.Update)
	memos.Delete("/:id", memoHandler.Delete)

	// Shopping list
	shoppingList := protected.Group("/shopping-list")
	shoppingListHandler := NewShoppingListHandler(deps.ShoppingListUC)
	shoppingList.Post("/", shoppingListHandler.Create)
	shoppingList.Get("/", shoppingListHandler.List)
	shoppingList.Put("/:id", shoppingListHandler.UpdateChecked)
	shoppingList.Delete("/:id", shoppingListHandler.Delete)

	// Shopping records (los summaries van antes de :id para que no los capture el wildcard)
	records := protected.Group("/shopping-records")
	recordHandler := NewShoppingRecordHandler(deps.RecordUC, deps.SpendingUC)
	records.Get("/summary/monthly", recordHandler.MonthlySummary)
	records.Get("/summary/items", recordHandler.ItemSummary)
	records.Get("/summary/categories", recordHandler.CategorySummary)
	records.Post("/", recordHandler.Create)
	records.Get("/", recordHandler.List)
	records.Get("/:id", recordHandler.GetByID)
	records.Put("/:id", recordHandler.Update)
	records.Delete("/:id", recordHandler.Delete)
}
