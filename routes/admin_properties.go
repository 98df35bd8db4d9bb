package routes

import (
	"encoding/json"
	"fmt"
	"himalayan-estate-server/models"
	"himalayan-estate-server/services"
	"himalayan-estate-server/storage"
	"himalayan-estate-server/utils"
	"log"
	"strings"
	"time"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// GET /api/admin/properties
func AdminListProperties(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	limit := ctx.URLParamIntDefault("limit", 25)
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	status := ctx.URLParamDefault("status", "")
	search := strings.TrimSpace(ctx.URLParamDefault("search", ""))
	createdFrom := ctx.URLParamDefault("created_from", "")
	createdTo := ctx.URLParamDefault("created_to", "")

	q := storage.DB.Model(&models.Property{})
	if status != "" && status != "all" {
		if !services.ValidStatus(status) {
			utils.CreateError(iris.StatusBadRequest, "Bad Request",
				fmt.Sprintf("unknown status %q", status), ctx)
			return
		}
		q = q.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(title) LIKE ? OR lower(description) LIKE ? OR lower(location) LIKE ?", like, like, like)
	}
	if createdFrom != "" {
		if t, err := time.Parse(time.RFC3339, createdFrom); err == nil {
			q = q.Where("created_at >= ?", t)
		}
	}
	if createdTo != "" {
		if t, err := time.Parse(time.RFC3339, createdTo); err == nil {
			q = q.Where("created_at <= ?", t)
		}
	}

	var total int64
	q.Count(&total)

	var props []models.Property
	if err := q.Preload("Interests").Offset((page - 1) * limit).Limit(limit).Order("created_at DESC").Find(&props).Error; err != nil {
		log.Println("failed to list properties for admin:", err)
		utils.CreateInternalServerError(ctx)
		return
	}
	if props == nil {
		props = []models.Property{}
	}

	utils.JSONPage(ctx, "data", props, page, limit, total)
}

// GET /api/admin/properties/{id}
func AdminGetProperty(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid property id", ctx)
		return
	}

	property := getPropertyWithInterests(id, ctx)
	if property == nil {
		return
	}

	ctx.JSON(iris.Map{"success": true, "property": property})
}

// PATCH /api/admin/properties/{id}/status
// The only endpoint that moves a listing through its lifecycle. It accepts
// the status field alone; everything else goes through AdminEditProperty.
func AdminUpdatePropertyStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid property id", ctx)
		return
	}

	var body struct {
		Status string `json:"status"`
		Note   string `json:"note"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.Status == "" {
		utils.CreateError(iris.StatusUnprocessableEntity, "Validation Error", "status is required", ctx)
		return
	}
	if !services.ValidStatus(body.Status) {
		utils.CreateError(iris.StatusUnprocessableEntity, "Validation Error",
			fmt.Sprintf("unknown status %q", body.Status), ctx)
		return
	}

	var property models.Property
	propertyExists := storage.DB.Find(&property, id)
	if propertyExists.Error != nil {
		log.Println("failed to fetch property:", propertyExists.Error)
		utils.CreateInternalServerError(ctx)
		return
	}
	if propertyExists.RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	if !services.CanTransition(property.Status, body.Status) {
		utils.CreateError(iris.StatusUnprocessableEntity, "Validation Error",
			fmt.Sprintf("cannot transition from %s to %s", property.Status, body.Status), ctx)
		return
	}

	// Repeating the current status is an idempotent no-op.
	if property.Status == body.Status && body.Note == "" {
		ctx.JSON(iris.Map{"success": true, "property": &property})
		return
	}

	before := property
	property.Status = body.Status
	if body.Note != "" {
		property.ReviewNotes = body.Note
	}
	if err := storage.DB.Save(&property).Error; err != nil {
		log.Println("failed to update property status:", err)
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "property.status_update", "property", property.ID, before, property)

	ctx.JSON(iris.Map{"success": true, "property": &property})
}

// PATCH /api/admin/properties/{id}
// Permissive edit of listing content. Seller identity, lifecycle status and
// buyer interests are deliberately unreachable from here.
func AdminEditProperty(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid property id", ctx)
		return
	}

	var property models.Property
	propertyExists := storage.DB.Find(&property, id)
	if propertyExists.Error != nil {
		log.Println("failed to fetch property:", propertyExists.Error)
		utils.CreateInternalServerError(ctx)
		return
	}
	if propertyExists.RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	var input EditPropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	before := property

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Location != nil {
		property.Location = *input.Location
	}
	if input.LandSize != nil {
		property.LandSize = *input.LandSize
	}
	if input.LandSizeUnit != nil {
		property.LandSizeUnit = *input.LandSizeUnit
	}
	if input.AskingPrice != nil {
		property.AskingPrice = *input.AskingPrice
	}
	if input.Images != nil {
		imagesJSON, _ := json.Marshal(input.Images)
		property.Images = datatypes.JSON(imagesJSON)
	}
	if input.YoutubeVideo != nil {
		property.YoutubeVideo = *input.YoutubeVideo
	}

	// The merged record must still be a valid listing.
	if property.Title == "" || property.Description == "" || property.Location == "" {
		utils.CreateError(iris.StatusUnprocessableEntity, "Validation Error",
			"title, description and location must be non-empty", ctx)
		return
	}

	if err := storage.DB.Save(&property).Error; err != nil {
		log.Println("failed to edit property:", err)
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "property.edit", "property", property.ID, before, property)

	ctx.JSON(iris.Map{"success": true, "property": &property})
}

// DELETE /api/admin/properties/{id}
func AdminDeleteProperty(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid property id", ctx)
		return
	}

	var property models.Property
	propertyExists := storage.DB.Find(&property, id)
	if propertyExists.Error != nil {
		log.Println("failed to fetch property:", propertyExists.Error)
		utils.CreateInternalServerError(ctx)
		return
	}
	if propertyExists.RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	if err := storage.DB.Select(clause.Associations).Delete(&property).Error; err != nil {
		log.Println("failed to delete property:", err)
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "property.delete", "property", property.ID, property, nil)

	ctx.JSON(iris.Map{"success": true, "message": "Property deleted successfully"})
}

type EditPropertyInput struct {
	Title        *string  `json:"title" validate:"omitempty,max=256"`
	Description  *string  `json:"description"`
	Location     *string  `json:"location" validate:"omitempty,max=256"`
	LandSize     *float64 `json:"landSize" validate:"omitempty,gt=0"`
	LandSizeUnit *string  `json:"landSizeUnit" validate:"omitempty,oneof=sqft sqm acres hectares"`
	AskingPrice  *float64 `json:"askingPrice" validate:"omitempty,gt=0"`
	Images       []string `json:"images" validate:"omitempty,min=1,dive,url"`
	YoutubeVideo *string  `json:"youtubeVideo" validate:"omitempty,url"`
}
