package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"foodathome/database"
	"foodathome/middleware"
	"foodathome/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 订单导出处理器
type ExportHandler struct{}

// NewExportHandler 创建订单导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// loadMenuOrders 加载归属当前厨师的菜单及其全部订单
func (h *ExportHandler) loadMenuOrders(c *gin.Context) (*models.Menu, []models.Order, bool) {
	chefID := middleware.GetCurrentChefID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return nil, nil, false
	}

	var menu models.Menu
	if err := database.DB.Where("id = ? AND chef_id = ?", id, chefID).First(&menu).Error; err != nil {
		NotFound(c, "菜单不存在")
		return nil, nil, false
	}

	var orders []models.Order
	if err := database.DB.Where("menu_code = ?", menu.Code).
		Order("created_at ASC").Find(&orders).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询订单失败"))
		return nil, nil, false
	}

	return &menu, orders, true
}

// formatOrderItems 把订单行项目拼成单列文本，如 "Coke ×2, Bread ×3"
func formatOrderItems(items models.OrderItems) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s ×%d", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

// ExportCSV 导出订单为 CSV
// @Summary 导出菜单订单为 CSV
// @Description 导出指定菜单下的全部订单为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param id path int true "菜单ID"
// @Success 200 {file} file "CSV 文件"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "菜单不存在"
// @Router /api/v1/menus/{id}/orders/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	menu, orders, ok := h.loadMenuOrders(c)
	if !ok {
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "下单人", "菜品", "总价", "下单时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 写入数据
	for _, order := range orders {
		row := []string{
			fmt.Sprintf("%d", order.ID),
			order.Orderer,
			formatOrderItems(order.Items),
			fmt.Sprintf("%.2f", order.Total),
			order.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 设置响应头
	filename := fmt.Sprintf("orders_%s.csv", menu.Code)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出订单为 Excel
// @Summary 导出菜单订单为 Excel
// @Description 导出指定菜单下的全部订单为 xlsx 文件，含合计行
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "菜单ID"
// @Success 200 {file} file "Excel 文件"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "菜单不存在"
// @Router /api/v1/menus/{id}/orders/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	menu, orders, ok := h.loadMenuOrders(c)
	if !ok {
		return
	}

	// 创建 Excel 文件
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "订单"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"EA580C"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 40)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 20)

	// 写入表头
	headers := []string{"ID", "下单人", "菜品", "总价", "下单时间"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	var totalAmount float64
	for i, order := range orders {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), order.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), order.Orderer)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), formatOrderItems(order.Items))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), order.Total)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), order.CreatedAt.Format("2006-01-02 15:04:05"))

		// 设置数据样式
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), dataStyle)
		totalAmount += order.Total
	}

	// 添加汇总行
	summaryRow := len(orders) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), totalAmount)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("共 %d 单", len(orders)))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("E%d", summaryRow), summaryStyle)

	// 设置响应头
	filename := fmt.Sprintf("orders_%s.xlsx", menu.Code)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	// 写入响应
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
