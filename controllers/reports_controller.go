package controllers

import (
	"net/http"
	"time"

	"github.com/afriblend/afriblend-backend/store"
	"github.com/gin-gonic/gin"
)

// GET /admin/reports?period=all|today|yesterday|week|month|year|custom&from=&to=
func GetSalesReport(orders *store.Orders, products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		window, err := store.ResolveReportRange(c.Query("period"), c.Query("from"), c.Query("to"), time.Now().UTC())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, store.BuildSalesReport(orders.All(), products.All(), window))
	}
}

// GET /admin/stats
func GetDashboardStats(orders *store.Orders, products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.BuildDashboardStats(orders.All(), products.All()))
	}
}
