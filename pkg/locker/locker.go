// Package locker сериализует операции над одним ключом (водитель, маршрут).
package locker

import "errors"

var ErrNotAcquired = errors.New("lock not acquired")

// Unlock освобождает захваченный ключ. Повторный вызов безопасен.
type Unlock func()
