package Controllers

import (
	"net/http"
	"time"

	"CDCPlatform/Models"
	"CDCPlatform/Utils/Token"

	"github.com/gin-gonic/gin"
)

type ChildInput struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
}

func CreateChild(c *gin.Context) {
	var input ChildInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Gender != "Boy" && input.Gender != "Girl" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gender must be Boy or Girl"})
		return
	}

	parent_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	child := Models.Child{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		ParentID:    parent_id,
	}
	if err := child.ComputeAge(time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.DB.Create(&child).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child added successfully", "child": child})
}

func FetchChildren(c *gin.Context) {
	parent_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var children []Models.Child
	if err := Models.DB.Model(&Models.Child{}).Where("parent_id = ?", parent_id).Find(&children).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	for index := range children {
		if err := children[index].ComputeAge(now); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"children": children})
}

func UpdateChild(c *gin.Context) {
	var input struct {
		ID uint `json:"id" binding:"required"`
		ChildInput
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parent_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	child, err := Models.GetChildForParent(input.ID, parent_id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		return
	}

	child.FirstName = input.FirstName
	child.LastName = input.LastName
	child.DateOfBirth = input.DateOfBirth
	if input.Gender != "" {
		if input.Gender != "Boy" && input.Gender != "Girl" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gender must be Boy or Girl"})
			return
		}
		child.Gender = input.Gender
	}
	if err := child.ComputeAge(time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.DB.Save(&child).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child updated successfully", "child": child})
}

func DeleteChild(c *gin.Context) {
	var input struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parent_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if _, err := Models.GetChildForParent(input.ID, parent_id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		return
	}

	if err := Models.DB.Delete(&Models.Child{}, input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child removed successfully"})
}
