package users

import "errors"

// ErrUserNotFound возвращается, когда сотрудника нет в таблице
var ErrUserNotFound = errors.New("users.repository: user not found")
