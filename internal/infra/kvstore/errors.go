package kvstore

import "errors"

var (
	// ErrNotFound возвращается, когда ключ отсутствует в хранилище
	ErrNotFound = errors.New("kvstore: key not found")

	// ErrInvalidKey возвращается для пустых ключей и ключей с разделителями пути
	ErrInvalidKey = errors.New("kvstore: invalid key")

	// ErrRead возвращается при ошибке чтения значения
	ErrRead = errors.New("kvstore: read failed")

	// ErrWrite возвращается при ошибке записи или удаления значения
	ErrWrite = errors.New("kvstore: write failed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kvstore: failed to build query")
)
