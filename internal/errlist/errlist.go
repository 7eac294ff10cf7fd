package errlist

import "sync"

// List is the application-wide, ordered list of errors shown as
// dismissible alerts. Views read it and remove entries by position; only
// the application pushes.
type List struct {
	mu     sync.RWMutex
	errors []string
}

func New() *List {
	return &List{errors: make([]string, 0)}
}

func (l *List) Push(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

// Errors returns a snapshot in insertion order
func (l *List) Errors() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]string, len(l.errors))
	copy(result, l.errors)
	return result
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.errors)
}

// RemoveAt drops the error at index, reporting whether it existed
func (l *List) RemoveAt(index int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.errors) {
		return false
	}
	l.errors = append(l.errors[:index], l.errors[index+1:]...)
	return true
}
