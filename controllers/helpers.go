package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dinehub/franchise-admin/listing"
	"github.com/dinehub/franchise-admin/utils"
)

// criteriaFromQuery reads the list-view query parameters shared by every
// collection endpoint. Unparseable values degrade to "no restriction".
func criteriaFromQuery(c *gin.Context) listing.Criteria {
	crit := listing.Criteria{
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		SessionType:   c.Query("type"),
		GuestType:     c.Query("guest_type"),
		Department:    c.Query("department"),
	}
	if raw := c.Query("franchise_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			crit.FranchiseID = uint(id)
		}
	}
	if from, ok := utils.ParseDate(c.Query("date_from")); ok {
		crit.DateFrom = &from
	}
	if to, ok := utils.ParseDate(c.Query("date_to")); ok {
		crit.DateTo = &to
	}
	return crit
}

func sortParams(c *gin.Context) (string, string) {
	return c.Query("sort"), c.Query("direction")
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
