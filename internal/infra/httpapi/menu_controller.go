package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cafe_menu_service/internal/app"
	"cafe_menu_service/internal/domain/menu"
	"cafe_menu_service/internal/domain/schedule"
	idb "cafe_menu_service/internal/infra/database"
)

// MenuController exposes the public menu/serving endpoints and the
// admin editing endpoints.
type MenuController struct {
	menus   *app.MenuService
	serving *app.ServingService
	logger  *logrus.Entry
}

func NewMenuController(menus *app.MenuService, serving *app.ServingService, logger *logrus.Entry) *MenuController {
	return &MenuController{
		menus:   menus,
		serving: serving,
		logger:  logger,
	}
}

func (c *MenuController) RegisterRoutes(router *gin.Engine, adminKey string) {
	api := router.Group("/api")
	api.Use(RequestID())
	{
		api.GET("/menu/:date", c.getMenu)
		api.GET("/serving", c.getServing)

		admin := api.Group("/admin")
		admin.Use(RequireAdminKey(adminKey))
		{
			admin.GET("/menus", c.listMenus)
			admin.POST("/menu", c.saveMenu)
			admin.PUT("/menu/:date", c.updateMenu)
			admin.DELETE("/menu/:date", c.deleteMenu)
			admin.POST("/menu/:date/slots/:key/foods", c.addFood)
		}
	}
}

// getMenu returns the stored menu for the date. When none exists it
// synthesizes the day-type default (empty on Sunday, the four-slot
// template otherwise) without persisting it.
func (c *MenuController) getMenu(ctx *gin.Context) {
	date := ctx.Param("date")
	if err := menu.ValidateDate(date); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	rec, err := c.menus.FindByDate(ctx.Request.Context(), date)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	if rec != nil {
		ctx.JSON(http.StatusOK, rec)
		return
	}

	menuDate, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": app.DefaultSlots(schedule.DayTypeOf(menuDate)),
	})
}

// getServing reports the active and next serving slot, evaluated at
// the ?at timestamp (RFC3339) or at the current server time.
func (c *MenuController) getServing(ctx *gin.Context) {
	at := time.Now()
	if atParam := ctx.Query("at"); atParam != "" {
		parsed, err := time.Parse(time.RFC3339, atParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'at' timestamp, must be RFC3339"})
			return
		}
		at = parsed.In(time.Local)
	}

	res := c.serving.Resolve(at)
	response := gin.H{"active": nil, "next": nil}
	if res.Active != "" {
		response["active"] = res.Active
	}
	if res.Next != nil {
		response["next"] = gin.H{
			"key":       res.Next.Key,
			"time":      res.Next.Time,
			"day":       res.Next.Day,
			"humanTime": res.Next.HumanTime(),
		}
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *MenuController) listMenus(ctx *gin.Context) {
	records, err := c.menus.ListAll(ctx.Request.Context())
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"menus": records})
}

type saveMenuRequest struct {
	Date  string      `json:"date"`
	Slots []menu.Slot `json:"slots"`
}

func (c *MenuController) saveMenu(ctx *gin.Context) {
	var req saveMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Date and slots are required"})
		return
	}

	rec, err := c.menus.Upsert(ctx.Request.Context(), req.Date, req.Slots)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Menu saved successfully", "menu": rec})
}

type updateMenuRequest struct {
	Slots []menu.Slot `json:"slots"`
}

func (c *MenuController) updateMenu(ctx *gin.Context) {
	var req updateMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Slots are required"})
		return
	}

	rec, err := c.menus.Update(ctx.Request.Context(), ctx.Param("date"), req.Slots)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Menu updated successfully", "menu": rec})
}

func (c *MenuController) deleteMenu(ctx *gin.Context) {
	date := ctx.Param("date")
	if err := c.menus.Delete(ctx.Request.Context(), date); err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Menu for " + date + " deleted"})
}

func (c *MenuController) addFood(ctx *gin.Context) {
	var food menu.FoodItem
	if err := ctx.ShouldBindJSON(&food); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Food item is required"})
		return
	}

	rec, err := c.menus.AddFoodToSlot(ctx.Request.Context(), ctx.Param("date"), menu.SlotKey(ctx.Param("key")), food)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Food added successfully", "menu": rec})
}

// respondError maps service errors to HTTP responses. Validation
// failures surface the violated rule; storage faults surface a generic
// message plus a retry flag so clients know whether backing off and
// retrying is safe.
func (c *MenuController) respondError(ctx *gin.Context, err error) {
	var validationErr *menu.ValidationError
	var storageErr *idb.StorageError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
	case errors.Is(err, app.ErrMenuNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Menu for date not found"})
	case errors.Is(err, app.ErrSlotNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Slot not found in menu"})
	case errors.As(err, &storageErr):
		c.logger.WithError(err).Error("Storage fault")
		if storageErr.Retryable() {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database error. Please try again.", "retry": true})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error.", "retry": false})
	default:
		c.logger.WithError(err).Error("Unhandled error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
