package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type ChatMessage struct {
	Message string `json:"message" binding:"required"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}

var chatbotHTTP = &http.Client{Timeout: 10 * time.Second}

// ChatbotMessage forwards the user's message to the external chatbot
// service and relays its reply. Without a configured service the booking
// hint is returned so the widget stays usable.
func ChatbotMessage(c *gin.Context) {
	var msg ChatMessage
	if err := c.BindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	url := os.Getenv("CHATBOT_URL")
	if url == "" {
		c.JSON(http.StatusOK, ChatReply{
			Reply: "Please select a doctor and an available slot from the booking form to schedule your appointment.",
		})
		return
	}

	body, _ := json.Marshal(msg)
	resp, err := chatbotHTTP.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Chatbot service unavailable"})
		return
	}
	defer resp.Body.Close()

	var reply ChatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Chatbot service returned an invalid response"})
		return
	}
	c.JSON(http.StatusOK, reply)
}
