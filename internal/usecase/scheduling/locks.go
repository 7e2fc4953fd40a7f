package scheduling

import "sync"

// WorkerLocks serializa o caminho de escrita de agendamento por worker:
// revalidação + insert nunca rodam em paralelo para o mesmo worker,
// enquanto workers distintos seguem em paralelo.
type WorkerLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewWorkerLocks() *WorkerLocks {
	return &WorkerLocks{
		locks: make(map[uint]*sync.Mutex),
	}
}

func (l *WorkerLocks) ForWorker(workerID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[workerID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[workerID] = m
	}
	return m
}
