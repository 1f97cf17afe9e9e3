package utils

import (
	"strconv"
	"time"
)

func MustAtoi(integer string) int {
	ret, err := strconv.Atoi(integer)
	if err != nil {
		panic(err)
	}

	return ret
}

/*
SecondsOrDefault 将以秒为单位的整数字符串转换为 time.Duration，空字符串时返回 def。
*/
func SecondsOrDefault(seconds string, def time.Duration) time.Duration {
	if len(seconds) == 0 {
		return def
	}

	return time.Duration(MustAtoi(seconds)) * time.Second
}
