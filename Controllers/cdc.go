package Controllers

import (
	"net/http"
	"strconv"

	"CDCPlatform/Models"

	"github.com/gin-gonic/gin"
)

func FetchCDCs(c *gin.Context) {
	var cdcs []Models.CDC
	query := Models.DB.Model(&Models.CDC{}).Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&cdcs).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cdcs": cdcs})
}

func FetchCDCDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var cdc Models.CDC
	if err := Models.DB.First(&cdc, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "CDC not found"})
		return
	}

	admin, err := Models.GetUserByID(cdc.AdminID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"cdc": cdc})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cdc": cdc, "admin": admin})
}

// ReviewCDC approves or rejects a submitted CDC.
func ReviewCDC(c *gin.Context) {
	var input struct {
		ID     uint   `json:"id" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := Models.CDCExists(input.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check CDC"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "CDC not found"})
		return
	}

	if err := Models.ReviewCDC(input.ID, input.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "CDC " + input.Status})
}
