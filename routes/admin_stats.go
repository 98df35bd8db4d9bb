package routes

import (
	"himalayan-estate-server/models"
	"himalayan-estate-server/services"
	"himalayan-estate-server/storage"
	"time"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/stats
func AdminStats(ctx iris.Context) {
	counts := iris.Map{}
	for _, status := range services.Statuses {
		var n int64
		storage.DB.Model(&models.Property{}).Where("status = ?", status).Count(&n)
		counts[status] = n
	}

	since7 := time.Now().AddDate(0, 0, -7)
	since30 := time.Now().AddDate(0, 0, -30)
	var interests7, interests30 int64
	storage.DB.Model(&models.Interest{}).Where("created_at >= ?", since7).Count(&interests7)
	storage.DB.Model(&models.Interest{}).Where("created_at >= ?", since30).Count(&interests30)

	var contacts int64
	storage.DB.Model(&models.ContactMessage{}).Count(&contacts)

	ctx.JSON(iris.Map{
		"success": true,
		"data": iris.Map{
			"properties":        counts,
			"new_interests_7d":  interests7,
			"new_interests_30d": interests30,
			"contact_messages":  contacts,
		},
	})
}

// GET /api/admin/activity
func AdminActivity(ctx iris.Context) {
	var logs []models.AuditLog
	storage.DB.Order("created_at DESC").Limit(100).Find(&logs)
	ctx.JSON(iris.Map{"success": true, "data": logs})
}
