package service

import (
	"time"

	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
)

func init() {
	retryConfig = utils.RetryConfig{
		InitialDelay: time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
}
