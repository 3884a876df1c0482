package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"CDCPlatform/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

// ExportBookingsTable writes the bookings in a date range to a spreadsheet
// for the marketing team.
func ExportBookingsTable(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var bookings []Models.Booking

	if input.DateFrom != "" && input.DateTo != "" {
		if err := Models.DB.Model(&Models.Booking{}).
			Where("DATE(created_at) BETWEEN ? AND ?", input.DateFrom, input.DateTo).
			Find(&bookings).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		if err := Models.DB.Model(&Models.Booking{}).Find(&bookings).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	childNames := map[uint]string{}
	for _, booking := range bookings {
		if _, ok := childNames[booking.ChildID]; ok {
			continue
		}
		var child Models.Child
		if err := Models.DB.First(&child, booking.ChildID).Error; err == nil {
			childNames[booking.ChildID] = child.FirstName + " " + child.LastName
		}
	}

	headers := map[string]string{
		"A1": "Date",
		"B1": "Child",
		"C1": "Order ID",
		"D1": "Amount",
		"E1": "Status",
	}
	file := excelize.NewFile()
	sheet := "Bookings"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(bookings); i++ {
		appendRowBooking(sheet, file, i, bookings, childNames)
	}
	var filename string = "./Bookings.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowBooking(sheet string, file *excelize.File, index int, rows []Models.Booking, childNames map[uint]string) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].CreatedAt.Format("2006-01-02"))
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), childNames[rows[index].ChildID])
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].OrderID)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Amount)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Status)
	return file
}
