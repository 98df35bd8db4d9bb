package routes

import (
	"encoding/json"
	"himalayan-estate-server/models"
	"himalayan-estate-server/services"
	"himalayan-estate-server/storage"
	"himalayan-estate-server/utils"
	"log"
	"time"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func CreateProperty(ctx iris.Context) {
	var input CreatePropertyInput

	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	imagesJSON, _ := json.Marshal(input.Images)

	unit := input.LandSizeUnit
	if unit == "" {
		unit = "sqft"
	}

	property := models.Property{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		LandSize:     input.LandSize,
		LandSizeUnit: unit,
		AskingPrice:  input.AskingPrice,
		Images:       datatypes.JSON(imagesJSON),
		YoutubeVideo: input.YoutubeVideo,
		Status:       services.StatusPending,
		Seller: models.Seller{
			Name:    input.Seller.Name,
			Phone:   input.Seller.Phone,
			Email:   input.Seller.Email,
			Details: input.Seller.Details,
		},
	}

	result := storage.DB.Create(&property)
	if result.Error != nil {
		log.Println("failed to create property:", result.Error)
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "property": &property})
}

func GetProperty(ctx iris.Context) {
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

func ListProperties(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	limit := ctx.URLParamIntDefault("limit", 50)
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	filters := services.ListingFilters{
		Location: ctx.URLParamDefault("location", ""),
		MinPrice: ctx.URLParamFloat64Default("minPrice", 0),
		MaxPrice: ctx.URLParamFloat64Default("maxPrice", 0),
		MinSize:  ctx.URLParamFloat64Default("minSize", 0),
		MaxSize:  ctx.URLParamFloat64Default("maxSize", 0),
	}

	// Public browsing only ever sees approved listings. The status is
	// pinned here, never taken from the caller.
	q := storage.DB.Model(&models.Property{}).Where("status = ?", services.StatusApproved)
	q = services.ApplyListingFilters(q, filters)

	var total int64
	q.Count(&total)

	var properties []PropertySummary
	if err := q.Offset((page - 1) * limit).Limit(limit).Order("created_at DESC").Find(&properties).Error; err != nil {
		log.Println("failed to list properties:", err)
		utils.CreateInternalServerError(ctx)
		return
	}
	if properties == nil {
		properties = []PropertySummary{}
	}

	utils.JSONPage(ctx, "properties", properties, page, limit, total)
}

func getPropertyWithInterests(id uint, ctx iris.Context) *models.Property {
	var property models.Property
	propertyExists := storage.DB.Preload("Interests", func(db *gorm.DB) *gorm.DB {
		return db.Order("interests.created_at ASC")
	}).Find(&property, id)

	if propertyExists.Error != nil {
		log.Println("failed to fetch property:", propertyExists.Error)
		utils.CreateInternalServerError(ctx)
		return nil
	}

	if propertyExists.RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return nil
	}

	return &property
}

// PropertySummary is the public projection of a listing: seller contact and
// buyer interests stay private to the admin surface.
type PropertySummary struct {
	ID           uint           `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Location     string         `json:"location"`
	LandSize     float64        `json:"landSize"`
	LandSizeUnit string         `json:"landSizeUnit"`
	AskingPrice  float64        `json:"askingPrice"`
	Images       datatypes.JSON `json:"images"`
	YoutubeVideo string         `json:"youtubeVideo"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type SellerInput struct {
	Name    string `json:"name" validate:"required,max=128"`
	Phone   string `json:"phone" validate:"required,max=32"`
	Email   string `json:"email" validate:"required,email"`
	Details string `json:"details" validate:"max=2048"`
}

type CreatePropertyInput struct {
	Title        string      `json:"title" validate:"required,max=256"`
	Description  string      `json:"description" validate:"required"`
	Location     string      `json:"location" validate:"required,max=256"`
	LandSize     float64     `json:"landSize" validate:"required,gt=0"`
	LandSizeUnit string      `json:"landSizeUnit" validate:"omitempty,oneof=sqft sqm acres hectares"`
	AskingPrice  float64     `json:"askingPrice" validate:"required,gt=0"`
	Images       []string    `json:"images" validate:"required,min=1,dive,url"`
	YoutubeVideo string      `json:"youtubeVideo" validate:"omitempty,url"`
	Seller       SellerInput `json:"seller" validate:"required"`
}
