package config

import (
	"os"
	"strconv"
	"time"
)

type JudgeConfig struct {
	BaseUrl        string
	RequestTimeout time.Duration
}

func NewJudgeConfig() *JudgeConfig {
	baseUrl := os.Getenv("JUDGE_BASE_URL")
	if baseUrl == "" {
		baseUrl = "http://localhost:5052"
	}
	timeoutSec, err := strconv.Atoi(os.Getenv("JUDGE_REQUEST_TIMEOUT_SEC"))
	if err != nil {
		timeoutSec = 30
	}
	return &JudgeConfig{
		BaseUrl:        baseUrl,
		RequestTimeout: time.Duration(timeoutSec) * time.Second,
	}
}
