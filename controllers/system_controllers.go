package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/utils"
)

type SystemController struct {
	DB *gorm.DB
}

func NewSystemController(db *gorm.DB) *SystemController {
	return &SystemController{DB: db}
}

// CollectionExists reports whether a named collection is backed by a real
// table. An unknown name is an ordinary false, not an error.
func (sc *SystemController) CollectionExists(c *gin.Context) {
	name := c.Param("collection_name")
	utils.RespondData(c, http.StatusOK, gin.H{
		"collection": name,
		"exists":     sc.DB.Migrator().HasTable(name),
	})
}
