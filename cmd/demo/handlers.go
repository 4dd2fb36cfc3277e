package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	admin "github.com/tomopy03/gorm-admin"
	"github.com/tomopy03/gorm-admin/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func registerRoutes(engine *gin.Engine, site *admin.Admin, db *gorm.DB) {
	group := engine.Group("/admin")
	group.GET("/views", listViews(site))
	group.GET("/:identity/fields", listFields(site))
	group.GET("/:identity", listRows(site, db))
}

func listViews(site *admin.Admin) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]gin.H, 0)
		for _, view := range site.Views() {
			out = append(out, gin.H{
				"identity": view.Identity(),
				"label":    view.Label(),
				"pk":       view.PrimaryKey(),
			})
		}
		c.JSON(http.StatusOK, gin.H{"views": out})
	}
}

func listFields(site *admin.Admin) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, ok := site.View(c.Param("identity"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
			return
		}
		out := make([]gin.H, 0, len(view.Fields()))
		for _, field := range view.Fields() {
			out = append(out, gin.H{"type": field.TypeName(), "field": field})
		}
		c.JSON(http.StatusOK, gin.H{"fields": out})
	}
}

// listRows compiles the UI's where/order_by descriptors through the view
// and executes them on the demo's own session.
func listRows(site *admin.Admin, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, ok := site.View(c.Param("identity"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
			return
		}

		var where query.Where
		if raw := c.Query("where"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &where); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "where must be a JSON object"})
				return
			}
		}
		expr, err := view.BuildWhere(where)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
		if pageSize < 1 || pageSize > 100 {
			pageSize = 20
		}

		filtered := func() *gorm.DB {
			tx := db.Model(view.Model())
			if expr != nil {
				tx = tx.Clauses(clause.Where{Exprs: []clause.Expression{expr}})
			}
			return tx
		}

		var total int64
		if err := filtered().Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		tx := filtered()
		if columns := view.BuildOrder(c.QueryArray("order_by")); len(columns) > 0 {
			tx = tx.Clauses(clause.OrderBy{Columns: columns})
		}

		rows := make([]map[string]any, 0, pageSize)
		if err := tx.Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":     rows,
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		})
	}
}
