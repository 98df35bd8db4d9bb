package routes

import (
	"himalayan-estate-server/models"
	"himalayan-estate-server/storage"
	"himalayan-estate-server/utils"
	"log"

	"github.com/kataras/iris/v12"
)

// POST /api/contact — public contact form, not tied to a listing
func SubmitContact(ctx iris.Context) {
	var input ContactInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	message := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := storage.DB.Create(&message).Error; err != nil {
		log.Println("failed to store contact message:", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "message": "Contact request submitted successfully"})
}

// GET /api/admin/contacts
func AdminListContacts(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	limit := ctx.URLParamIntDefault("limit", 25)
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	var total int64
	storage.DB.Model(&models.ContactMessage{}).Count(&total)

	var messages []models.ContactMessage
	if err := storage.DB.Offset((page - 1) * limit).Limit(limit).Order("created_at DESC").Find(&messages).Error; err != nil {
		log.Println("failed to list contact messages:", err)
		utils.CreateInternalServerError(ctx)
		return
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}

	utils.JSONPage(ctx, "data", messages, page, limit, total)
}

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=128"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=32"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=4096"`
}
