package utils

import "github.com/pkg/errors"

/*
WrapError 为 err 附加上下文信息，err 为 nil 时返回 nil。

被包装的错误仍可通过 errors.Is / errors.As / errors.Cause 取得。
*/
func WrapError(err error, msg string) error {
	return errors.Wrap(err, msg)
}

func WrapErrorf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
