package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"price-tracker/internal/alerts"
	"price-tracker/internal/catalog"
	"price-tracker/internal/config"
	"price-tracker/internal/feed"
	"price-tracker/internal/logger"
	"price-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type APIHandler struct {
	db     *gorm.DB
	engine *alerts.Engine
	hub    *feed.Hub
	cfg    *config.Config
	log    zerolog.Logger
}

func SetupRoutes(r *gin.RouterGroup, db *gorm.DB, engine *alerts.Engine, hub *feed.Hub, cfg *config.Config) *APIHandler {
	handler := &APIHandler{
		db:     db,
		engine: engine,
		hub:    hub,
		cfg:    cfg,
		log:    logger.WithComponent("api"),
	}

	alertGroup := r.Group("/alerts")
	{
		alertGroup.GET("", handler.ListAlerts)
		alertGroup.POST("", handler.CreateAlert)
		alertGroup.GET("/:id", handler.GetAlert)
		alertGroup.PUT("/:id/toggle", handler.ToggleAlert)
		alertGroup.DELETE("/:id", handler.DeleteAlert)

		// Evaluation triggers: manual admin call and cron webhook
		alertGroup.POST("/check", handler.CheckAlerts)
		alertGroup.POST("/trigger-check", handler.TriggerCheckWebhook)
	}

	productGroup := r.Group("/products")
	{
		productGroup.GET("", handler.ListProducts)
		productGroup.POST("", handler.CreateProduct)
		productGroup.GET("/:id", handler.GetProduct)
		productGroup.GET("/:id/prices", handler.GetPriceHistory)
		productGroup.GET("/:id/prices/export", handler.ExportPriceHistory)
	}

	retailerGroup := r.Group("/retailers")
	{
		retailerGroup.GET("", handler.ListRetailers)
		retailerGroup.POST("", handler.CreateRetailer)
	}

	// Price observations are append-only
	r.POST("/prices", handler.RecordPrice)

	// Static curated catalog for the companion client
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/products", handler.CatalogProducts)
		catalogGroup.GET("/products/:id", handler.CatalogProduct)
		catalogGroup.GET("/categories", handler.CatalogCategories)
	}

	return handler
}

// ---- Alert CRUD ----

func (h *APIHandler) ListAlerts(c *gin.Context) {
	q := h.db.Model(&models.PriceAlert{})

	if productID := c.Query("product_id"); productID != "" {
		q = q.Where("product_id = ?", productID)
	}
	isActive := c.DefaultQuery("is_active", "true")
	if isActive != "" {
		q = q.Where("is_active = ?", isActive == "true")
	}

	var alertList []models.PriceAlert
	if err := q.Order("id ASC").Find(&alertList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alertList)
}

type createAlertRequest struct {
	ProductID   uint     `json:"product_id" binding:"required"`
	Condition   string   `json:"condition"`
	TargetPrice *float64 `json:"target_price"`
	IsActive    *bool    `json:"is_active"`
}

func (h *APIHandler) CreateAlert(c *gin.Context) {
	var req createAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Condition == "" {
		req.Condition = models.ConditionBelow
	}
	if req.Condition != models.ConditionBelow && req.Condition != models.ConditionAbove {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid condition: %s", req.Condition)})
		return
	}

	var product models.Product
	if err := h.db.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	alert := models.PriceAlert{
		ProductID:   req.ProductID,
		Condition:   req.Condition,
		TargetPrice: req.TargetPrice,
		IsActive:    true,
	}
	if req.IsActive != nil {
		alert.IsActive = *req.IsActive
	}

	if err := h.db.Create(&alert).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (h *APIHandler) GetAlert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	var alert models.PriceAlert
	if err := h.db.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (h *APIHandler) ToggleAlert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	var alert models.PriceAlert
	if err := h.db.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	alert.IsActive = !alert.IsActive
	if err := h.db.Save(&alert).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": alert.ID, "is_active": alert.IsActive})
}

func (h *APIHandler) DeleteAlert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	var alert models.PriceAlert
	if err := h.db.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := h.db.Delete(&alert).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert deleted"})
}

// ---- Evaluation triggers ----

// CheckAlerts manually runs the alert batch (admin use).
func (h *APIHandler) CheckAlerts(c *gin.Context) {
	triggered, err := h.engine.CheckAlerts(time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checked": true, "triggered": triggered})
}

// TriggerCheckWebhook is the endpoint cron jobs call (GitHub Actions,
// cron-job.org, the bundled scheduler). Authenticated with the
// X-Cron-Secret header; while the configured secret is still the shipped
// placeholder the check is skipped.
func (h *APIHandler) TriggerCheckWebhook(c *gin.Context) {
	if h.cfg.CronSecret != config.DefaultCronSecret {
		if c.GetHeader("X-Cron-Secret") != h.cfg.CronSecret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid cron secret"})
			return
		}
	}

	now := time.Now().UTC()
	checkType := c.DefaultQuery("check_type", "price_drops")
	results := gin.H{
		"type":      checkType,
		"timestamp": now.Format(time.RFC3339),
	}

	switch checkType {
	case "price_drops":
		triggered, err := h.engine.CheckAlerts(now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results["alerts_triggered"] = len(triggered)
		results["alert_ids"] = triggered

	case "restocks":
		restocked, err := h.engine.DetectRestocks(now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results["restocked_items"] = len(restocked)
		results["items"] = restocked

	case "summary":
		summary, err := h.engine.GenerateSummary(now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results["summary"] = summary

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown check_type: %s", checkType)})
		return
	}

	c.JSON(http.StatusOK, results)
}

// ---- Products ----

func (h *APIHandler) ListProducts(c *gin.Context) {
	q := h.db.Model(&models.Product{})
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if c.DefaultQuery("is_active", "true") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var productList []models.Product
	if err := q.Order("id ASC").Find(&productList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, productList)
}

type createProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SourceURL   string `json:"source_url"`
}

func (h *APIHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SourceURL:   req.SourceURL,
		IsActive:    true,
	}
	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *APIHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *APIHandler) GetPriceHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	var prices []models.Price
	if err := h.db.Preload("Retailer").Where("product_id = ?", id).
		Order("scraped_at DESC").Limit(limit).Find(&prices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prices)
}

// ExportPriceHistory writes a product's observations to an .xlsx workbook.
func (h *APIHandler) ExportPriceHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var prices []models.Price
	if err := h.db.Preload("Retailer").Where("product_id = ?", id).
		Order("scraped_at ASC").Find(&prices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Prices"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"Scraped At", "Retailer", "Price", "Currency", "Condition", "Listing URL"}
	for i, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hdr)
	}
	for row, p := range prices {
		values := []interface{}{
			p.ScrapedAt.Format(time.RFC3339), p.Retailer.Name,
			p.Price, p.Currency, p.Condition, p.ListingURL,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=product_%d_prices.xlsx", id))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		h.log.Error().Err(err).Msg("failed to stream xlsx export")
	}
}

// ---- Retailers ----

func (h *APIHandler) ListRetailers(c *gin.Context) {
	var retailers []models.Retailer
	if err := h.db.Order("id ASC").Find(&retailers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, retailers)
}

type createRetailerRequest struct {
	Name    string `json:"name" binding:"required"`
	BaseURL string `json:"base_url"`
}

func (h *APIHandler) CreateRetailer(c *gin.Context) {
	var req createRetailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	retailer := models.Retailer{Name: req.Name, BaseURL: req.BaseURL}
	if err := h.db.Create(&retailer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, retailer)
}

// ---- Price observations ----

type recordPriceRequest struct {
	ProductID    uint     `json:"product_id" binding:"required"`
	RetailerID   uint     `json:"retailer_id" binding:"required"`
	Price        *float64 `json:"price" binding:"required"`
	Currency     string   `json:"currency"`
	Condition    string   `json:"condition"`
	ListingURL   string   `json:"listing_url"`
	ListingTitle string   `json:"listing_title"`
}

// RecordPrice appends one observation and pushes it to feed subscribers.
func (h *APIHandler) RecordPrice(c *gin.Context) {
	var req recordPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := h.db.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	var retailer models.Retailer
	if err := h.db.First(&retailer, req.RetailerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Retailer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	price := models.Price{
		ProductID:    req.ProductID,
		RetailerID:   req.RetailerID,
		Price:        *req.Price,
		Currency:     currency,
		Condition:    req.Condition,
		ListingURL:   req.ListingURL,
		ListingTitle: req.ListingTitle,
		ScrapedAt:    time.Now().UTC(),
	}
	if err := h.db.Create(&price).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(&price)
	}
	c.JSON(http.StatusOK, price)
}

// ---- Static catalog ----

func (h *APIHandler) CatalogProducts(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Products(c.Query("category")))
}

func (h *APIHandler) CatalogProduct(c *gin.Context) {
	product := catalog.ProductByID(c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *APIHandler) CatalogCategories(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Categories())
}
