package masterdata

import (
	"go_vms/internal/httpx"
	"go_vms/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetHandler handles GET /api/master-data/:table. Only the fixed set of
// lookup tables is addressable; active rows only, ordered by name.
func GetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		table := c.Param("table")

		var names []string
		var err error

		switch table {
		case "visitor_category_master":
			err = db.Model(&model.VisitorCategory{}).
				Where("status = ?", "A").
				Order("category_name").
				Pluck("category_name", &names).Error
		case "purpose_master":
			err = db.Model(&model.Purpose{}).
				Where("status = ?", "A").
				Order("purpose_name").
				Pluck("purpose_name", &names).Error
		case "id_master":
			err = db.Model(&model.IDType{}).
				Where("status = ?", "A").
				Order("id_type_name").
				Pluck("id_type_name", &names).Error
		default:
			httpx.FailErr(c, httpx.ErrParamIllegal("invalid table name"))
			return
		}

		if err != nil {
			httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch master data", err))
			return
		}

		httpx.OK(c, names)
	}
}
