package state

import "errors"

var (
	// ErrEncode возвращается, когда состояние не удалось сериализовать
	ErrEncode = errors.New("state.repository: failed to encode state")

	// ErrSave возвращается при ошибке записи в хранилище
	ErrSave = errors.New("state.repository: failed to save state")

	// ErrClear возвращается при ошибке удаления состояния
	ErrClear = errors.New("state.repository: failed to clear state")
)
