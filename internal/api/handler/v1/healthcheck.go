package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/api/handler/v1/response"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type SystemHandler struct {
	db *gorm.DB
}

func NewSystemHandler(db *gorm.DB) *SystemHandler {
	return &SystemHandler{
		db: db,
	}
}

// HandleDBTest godoc
// @Summary      Database connectivity probe
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  response.Err
// @Router       /api/test [get]
func (h *SystemHandler) HandleDBTest(ctx *gin.Context) {
	var result int
	if err := h.db.WithContext(ctx.Request.Context()).Raw("SELECT 1 + 1").Scan(&result).Error; err != nil {
		err = fmt.Errorf("v1.HandleDBTest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Database connected!", "result": result})
}
