package controllers

import (
	"net/http"

	"github.com/afriblend/afriblend-backend/cart"
	"github.com/afriblend/afriblend-backend/dto"
	"github.com/afriblend/afriblend-backend/store"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// The storefront identifies its cart with the X-Cart-Token header. A
// missing or unknown token gets a fresh cart; the token to use from
// then on is echoed back on every response.
const cartTokenHeader = "X-Cart-Token"

func sessionCart(c *gin.Context, sessions *cart.Sessions) *cart.Cart {
	basket, token := sessions.Get(c.GetHeader(cartTokenHeader))
	c.Header(cartTokenHeader, token)
	return basket
}

func cartView(basket *cart.Cart) gin.H {
	return gin.H{
		"items":     basket.Items(),
		"total":     basket.Total(),
		"itemCount": basket.ItemCount(),
	}
}

// GET /cart
func GetCart(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(sessionCart(c, sessions)))
	}
}

// POST /cart/items
func AddCartItem(sessions *cart.Sessions, products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.AddCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		productID, err := bson.ObjectIDFromHex(body.ProductId)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		product, err := products.ByID(productID)
		if err != nil || !product.Visible() {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		basket := sessionCart(c, sessions)
		basket.Add(product, body.Size, body.Color)
		c.JSON(http.StatusOK, cartView(basket))
	}
}

// PUT /cart/items
func UpdateCartItem(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		productID, err := bson.ObjectIDFromHex(body.ProductId)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		basket := sessionCart(c, sessions)
		basket.SetQuantity(productID, body.Size, body.Color, body.Quantity)
		c.JSON(http.StatusOK, cartView(basket))
	}
}

// DELETE /cart/items
func RemoveCartItem(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.AddCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		productID, err := bson.ObjectIDFromHex(body.ProductId)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		basket := sessionCart(c, sessions)
		basket.Remove(productID, body.Size, body.Color)
		c.JSON(http.StatusOK, cartView(basket))
	}
}

// DELETE /cart
func ClearCart(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		basket := sessionCart(c, sessions)
		basket.Clear()
		c.JSON(http.StatusOK, cartView(basket))
	}
}
