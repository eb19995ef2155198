// Package slotlock реализует advisory-блокировки по ключу слота (дата + время).
//
// Блокировка сериализует конкурирующие попытки бронирования одного и того же
// временного слота: пока одна транзакция находится между перепроверкой
// доступности и созданием записи, остальные ждут. Для разных ключей блокировки
// полностью независимы.
package slotlock

import (
	"fmt"
	"sync"
	"time"
)

// keyDateFormat формат даты в ключе блокировки
const keyDateFormat = "2006-01-02"

// Key строит ключ блокировки для слота (дата, время начала)
// Ключ намеренно не включает мастера и услугу: это грубая, но простая точка
// сериализации (см. комментарий к LockManager)
func Key(date time.Time, startTime fmt.Stringer) string {
	return date.Format(keyDateFormat) + "T" + startTime.String()
}

// LockManager таблица advisory-блокировок, защищенная собственным мьютексом.
// Записи создаются при первом Acquire и удаляются, когда последний держатель
// освобождает ключ, поэтому размер таблицы ограничен количеством бронирований
// в полете, а не количеством слотов за всю историю.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*slotLock
}

type slotLock struct {
	mu   sync.Mutex
	refs int
}

// NewLockManager создает новый менеджер блокировок
func NewLockManager() *LockManager {
	return &LockManager{
		locks: make(map[string]*slotLock),
	}
}

// Acquire захватывает эксклюзивную блокировку по ключу и возвращает функцию
// освобождения. Вызов блокируется, пока ключ удерживается другой горутиной.
//
// Функция освобождения обязана быть вызвана ровно один раз на каждом пути
// выхода (успех, ошибка валидации, ошибка БД) — используйте defer сразу после
// Acquire.
func (m *LockManager) Acquire(key string) (release func()) {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &slotLock{}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			m.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(m.locks, key)
			}
			m.mu.Unlock()
		})
	}
}

// Len возвращает текущее количество ключей в таблице (для метрик и тестов)
func (m *LockManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
