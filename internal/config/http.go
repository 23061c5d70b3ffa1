package config

import (
	"os"
	"strconv"
)

type HttpConfig struct {
	Port     int
	ClientID string
}

func NewHttpConfig() *HttpConfig {
	port, err := strconv.Atoi(os.Getenv("HTTP_PORT"))
	if err != nil {
		port = 8082
	}
	clientID := os.Getenv("CLIENT_ID")
	if clientID == "" {
		clientID = "default"
	}
	return &HttpConfig{
		Port:     port,
		ClientID: clientID,
	}
}
