package controllers

import (
	"net/http"

	"github.com/afriblend/afriblend-backend/models"
	"github.com/afriblend/afriblend-backend/store"
	"github.com/gin-gonic/gin"
)

// The site content documents (settings, FAQs, contact info, our-story,
// notification banner) are singletons. Reads are public; writes replace
// the whole document. The router gates site-identity edits to the
// Developer role; the notification banner is editable by any admin.

func GetSettings(settings *store.Singleton[models.StoreSettings]) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, settings.Get())
	}
}

func UpdateSettings(settings *store.Singleton[models.StoreSettings]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.StoreSettings
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := settings.Update(c.Request.Context(), body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func GetFaqs(faqs *store.Singleton[models.FaqList]) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, faqs.Get())
	}
}

func UpdateFaqs(faqs *store.Singleton[models.FaqList]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.FaqList
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := faqs.Update(c.Request.Context(), body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func GetContactInfo(contact *store.Singleton[models.ContactInfo]) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, contact.Get())
	}
}

func UpdateContactInfo(contact *store.Singleton[models.ContactInfo]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.ContactInfo
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := contact.Update(c.Request.Context(), body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func GetOurStory(story *store.Singleton[models.OurStoryContent]) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, story.Get())
	}
}

func UpdateOurStory(story *store.Singleton[models.OurStoryContent]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.OurStoryContent
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := story.Update(c.Request.Context(), body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func GetNotification(notification *store.Singleton[models.Notification]) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, notification.Get())
	}
}

func UpdateNotification(notification *store.Singleton[models.Notification]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.Notification
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := notification.Update(c.Request.Context(), body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
