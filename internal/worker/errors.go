package worker

import "errors"

// ErrInvalidSchedule возвращается при некорректном cron выражении
var ErrInvalidSchedule = errors.New("worker: invalid schedule")
