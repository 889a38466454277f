package router

import (
	"net/url"
	"strconv"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func urlEscape(s string) string {
	return url.QueryEscape(s)
}
