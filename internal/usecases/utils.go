package usecases

import (
	"github.com/volatiletech/null/v8"
)

func nullFromString(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

func roundMoney(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
