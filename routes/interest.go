package routes

import (
	"himalayan-estate-server/models"
	"himalayan-estate-server/storage"
	"himalayan-estate-server/utils"
	"log"
	"time"

	"github.com/kataras/iris/v12"
)

// SubmitInterest appends a buyer inquiry to a listing. The path is public
// and unrestricted by status; the same buyer may submit any number of
// times, each call adding a new entry.
func SubmitInterest(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid property id", ctx)
		return
	}

	var input SubmitInterestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
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

	interest := models.Interest{
		PropertyID: property.ID,
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		Message:    input.Message,
	}

	// A plain INSERT per submission: two concurrent submissions are two
	// rows, neither can overwrite the other.
	if err := storage.DB.Create(&interest).Error; err != nil {
		log.Println("failed to record interest:", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.DB.Model(&property).UpdateColumn("updated_at", time.Now())

	ctx.JSON(iris.Map{"success": true, "message": "Interest submitted successfully"})
}

type SubmitInterestInput struct {
	Name    string `json:"name" validate:"required,max=128"`
	Phone   string `json:"phone" validate:"required,max=32"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"max=2048"`
}
